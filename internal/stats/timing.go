package stats

import (
	"math"
	"sync/atomic"
)

// minUnset is the sentinel for a Timing that has not observed a sample yet.
const minUnset = math.MaxUint64

// Timing accumulates a latency aggregate: sample count, total, min and max,
// all in milliseconds. Every field is an independent atomic; the average is
// derived on read as total/count so rounding drift never compounds.
type Timing struct {
	count   atomic.Uint64
	totalMS atomic.Uint64
	minMS   atomic.Uint64
	maxMS   atomic.Uint64
}

func newTiming() *Timing {
	t := &Timing{}
	t.minMS.Store(minUnset)
	return t
}

// Observe records one sample. Counters are fetch-and-add; the extrema are
// CAS retry loops that swap only when the candidate is strictly better, so
// any number of concurrent writers converge on the same result regardless
// of arrival order.
func (t *Timing) Observe(ms uint64) {
	t.count.Add(1)
	t.totalMS.Add(ms)

	for {
		cur := t.minMS.Load()
		if ms >= cur {
			break
		}
		if t.minMS.CompareAndSwap(cur, ms) {
			break
		}
	}
	for {
		cur := t.maxMS.Load()
		if ms <= cur {
			break
		}
		if t.maxMS.CompareAndSwap(cur, ms) {
			break
		}
	}
}

// Count returns the number of observed samples.
func (t *Timing) Count() uint64 { return t.count.Load() }

// TotalMS returns the accumulated total in milliseconds.
func (t *Timing) TotalMS() uint64 { return t.totalMS.Load() }

// MinMS returns the smallest observed sample, or 0 before the first sample.
func (t *Timing) MinMS() uint64 {
	v := t.minMS.Load()
	if v == minUnset {
		return 0
	}
	return v
}

// MaxMS returns the largest observed sample, or 0 before the first sample.
func (t *Timing) MaxMS() uint64 { return t.maxMS.Load() }

// AvgMS returns the derived average in milliseconds, 0 when no samples
// have been observed.
func (t *Timing) AvgMS() float64 {
	n := t.count.Load()
	if n == 0 {
		return 0
	}
	return float64(t.totalMS.Load()) / float64(n)
}

// TimingView is a plain-value read of a Timing at one point in time.
type TimingView struct {
	Count   uint64
	TotalMS uint64
	MinMS   uint64
	MaxMS   uint64
	AvgMS   float64
}

// View loads all fields. Each load is individually atomic; the view as a
// whole is weakly consistent with concurrent writers.
func (t *Timing) View() TimingView {
	return TimingView{
		Count:   t.Count(),
		TotalMS: t.TotalMS(),
		MinMS:   t.MinMS(),
		MaxMS:   t.MaxMS(),
		AvgMS:   t.AvgMS(),
	}
}

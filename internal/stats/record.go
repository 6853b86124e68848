package stats

import (
	"fmt"
	"sync/atomic"

	"TrafficScope/internal/model"
)

// numStatusBuckets covers the 1xx..5xx response classes.
const numStatusBuckets = 5

// Record is the mutable counter set for one entity. All mutation goes
// through independent per-field atomics; there is no record-wide lock, so
// a concurrent reader may observe one field ahead of another but never a
// torn single field.
type Record struct {
	requests atomic.Uint64
	bytesIn  atomic.Uint64
	bytesOut atomic.Uint64
	statuses [numStatusBuckets]atomic.Uint64

	requestTime  *Timing
	upstreamTime *Timing

	// up holds the last-known liveness for upstream records. The up/down
	// policy is owned by the caller; new records start up.
	up atomic.Bool
}

// NewRecord returns a zeroed record ready for concurrent use.
func NewRecord() *Record {
	r := &Record{
		requestTime:  newTiming(),
		upstreamTime: newTiming(),
	}
	r.up.Store(true)
	return r
}

// statusBucket maps an HTTP status code to its bucket index, or -1 for
// codes outside 100..599.
func statusBucket(code int) int {
	if code < 100 || code > 599 {
		return -1
	}
	return code/100 - 1
}

// Apply folds one completed-request event into the record. A status code
// outside 100..599 is a malformed-input soft error: nothing is counted and
// model.ErrMalformedInput is returned, so one bad event cannot skew the
// bucket/request invariant.
func (r *Record) Apply(ev model.Event) error {
	bucket := statusBucket(ev.StatusCode)
	if bucket < 0 {
		return fmt.Errorf("status code %d outside 100..599: %w", ev.StatusCode, model.ErrMalformedInput)
	}

	r.requests.Add(1)
	r.bytesIn.Add(ev.BytesIn)
	r.bytesOut.Add(ev.BytesOut)
	r.statuses[bucket].Add(1)
	r.requestTime.Observe(ev.RequestTimeMS)
	if ev.Key.Kind == model.KindUpstreamServer {
		r.upstreamTime.Observe(ev.UpstreamTimeMS)
	}
	return nil
}

// SetUp stores the caller-decided liveness.
func (r *Record) SetUp(up bool) { r.up.Store(up) }

// Requests returns the request total.
func (r *Record) Requests() uint64 { return r.requests.Load() }

// BytesIn returns the received byte total.
func (r *Record) BytesIn() uint64 { return r.bytesIn.Load() }

// BytesOut returns the sent byte total.
func (r *Record) BytesOut() uint64 { return r.bytesOut.Load() }

// StatusCount returns the counter for one bucket (0 => 1xx .. 4 => 5xx).
func (r *Record) StatusCount(bucket int) uint64 { return r.statuses[bucket].Load() }

// RequestTime exposes the total-request-latency aggregate.
func (r *Record) RequestTime() *Timing { return r.requestTime }

// UpstreamTime exposes the backend-latency aggregate (upstream records only).
func (r *Record) UpstreamTime() *Timing { return r.upstreamTime }

// Up reports the last-known liveness.
func (r *Record) Up() bool { return r.up.Load() }

// RecordView is a plain-value snapshot of one record, safe to hold after the
// store has moved on. Field-level weak consistency applies (see Apply).
type RecordView struct {
	Requests     uint64
	BytesIn      uint64
	BytesOut     uint64
	Statuses     [numStatusBuckets]uint64
	RequestTime  TimingView
	UpstreamTime TimingView
	Up           bool
}

// View loads every field of the record once.
func (r *Record) View() RecordView {
	v := RecordView{
		Requests:     r.requests.Load(),
		BytesIn:      r.bytesIn.Load(),
		BytesOut:     r.bytesOut.Load(),
		RequestTime:  r.requestTime.View(),
		UpstreamTime: r.upstreamTime.View(),
		Up:           r.up.Load(),
	}
	for i := range r.statuses {
		v.Statuses[i] = r.statuses[i].Load()
	}
	return v
}

package stats

import (
	"fmt"
	"sync/atomic"

	"TrafficScope/internal/model"
)

// Cache status classes as reported by the proxy's $upstream_cache_status.
const (
	CacheMiss        = "MISS"
	CacheBypass      = "BYPASS"
	CacheExpired     = "EXPIRED"
	CacheStale       = "STALE"
	CacheUpdating    = "UPDATING"
	CacheRevalidated = "REVALIDATED"
	CacheHit         = "HIT"
	CacheScarce      = "SCARCE"
)

// CacheZoneStats accumulates cache status counters for one cache zone.
// Same atomic update discipline as Record.
type CacheZoneStats struct {
	miss        atomic.Uint64
	bypass      atomic.Uint64
	expired     atomic.Uint64
	stale       atomic.Uint64
	updating    atomic.Uint64
	revalidated atomic.Uint64
	hit         atomic.Uint64
	scarce      atomic.Uint64
}

// Observe counts one request's cache status. Unknown statuses are a
// malformed-input soft error.
func (c *CacheZoneStats) Observe(status string) error {
	switch status {
	case CacheMiss:
		c.miss.Add(1)
	case CacheBypass:
		c.bypass.Add(1)
	case CacheExpired:
		c.expired.Add(1)
	case CacheStale:
		c.stale.Add(1)
	case CacheUpdating:
		c.updating.Add(1)
	case CacheRevalidated:
		c.revalidated.Add(1)
	case CacheHit:
		c.hit.Add(1)
	case CacheScarce:
		c.scarce.Add(1)
	default:
		return fmt.Errorf("unknown cache status %q: %w", status, model.ErrMalformedInput)
	}
	return nil
}

// CacheView is a point-in-time read of a cache zone's counters, keyed by
// the lower-case status label used in the output document.
type CacheView struct {
	Counts   map[string]uint64
	Total    uint64
	HitRatio float64
}

// View loads all counters and derives the hit ratio (0 when no requests).
func (c *CacheZoneStats) View() CacheView {
	counts := map[string]uint64{
		"miss":        c.miss.Load(),
		"bypass":      c.bypass.Load(),
		"expired":     c.expired.Load(),
		"stale":       c.stale.Load(),
		"updating":    c.updating.Load(),
		"revalidated": c.revalidated.Load(),
		"hit":         c.hit.Load(),
		"scarce":      c.scarce.Load(),
	}
	var total uint64
	for _, v := range counts {
		total += v
	}
	v := CacheView{Counts: counts, Total: total}
	if total > 0 {
		v.HitRatio = float64(counts["hit"]) / float64(total)
	}
	return v
}

// Package collector exposes the statistics core to the host integration
// layer: zone configuration, event recording, and snapshot rendering.
// The collector is an explicit handle passed through every entry point;
// there is no package-level singleton.
package collector

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"TrafficScope/internal/format"
	"TrafficScope/internal/model"
	"TrafficScope/internal/registry"
	"TrafficScope/internal/stats"
)

// Version is reported in the info metric.
const Version = "0.1.0"

const (
	// maxNameLen bounds identifier strings (zone names, upstream group
	// names, server addresses). Longer names are truncated with
	// truncMarker rather than rejected, so the rest of the event still
	// counts.
	maxNameLen  = 256
	truncMarker = "..."
)

// Collector owns one zone's registry store plus the collector-wide
// supplements: connection gauges, cache-zone counters and the soft-error
// counter. All methods are safe for concurrent use.
type Collector struct {
	store atomic.Pointer[registry.Store]

	formatter *format.Formatter

	// Connection gauges and totals, set by the host's connection hook.
	connActive   atomic.Uint64
	connReading  atomic.Uint64
	connWriting  atomic.Uint64
	connWaiting  atomic.Uint64
	connAccepted atomic.Uint64
	connHandled  atomic.Uint64

	// Cache zones are config-cardinality, not request-cardinality, so a
	// plain mutex-guarded map is enough here.
	cacheMu    sync.RWMutex
	cacheZones map[string]*stats.CacheZoneStats

	softErrors atomic.Uint64
}

// New returns an unconfigured collector. Every recording operation fails
// with model.ErrNotInitialized until ConfigureZone has been called.
func New() *Collector {
	return &Collector{
		formatter:  format.NewFormatter(),
		cacheZones: make(map[string]*stats.CacheZoneStats),
	}
}

// truncateName bounds an identifier, keeping a reserved marker so truncated
// names cannot collide silently with a legitimate short name.
func truncateName(name string) string {
	if len(name) <= maxNameLen {
		return name
	}
	return name[:maxNameLen-len(truncMarker)] + truncMarker
}

// ConfigureZone performs the one-time setup of the statistics zone: the
// byte budget is translated to a fixed record capacity and the backing
// store is created Active. Reconfiguring in place is not supported; tear
// the collector down and create a new one (statistics are lost, by design).
func (c *Collector) ConfigureZone(name string, sizeBytes uint64, numShards uint32) error {
	store, err := registry.New(truncateName(name), sizeBytes, numShards)
	if err != nil {
		return err
	}
	if !c.store.CompareAndSwap(nil, store) {
		return fmt.Errorf("zone already configured; reconfiguration requires teardown and recreation")
	}
	return nil
}

// apply resolves the record for key and folds the event in. Capacity and
// shutdown failures drop the event for that key only; malformed input is
// counted as a soft error.
func (c *Collector) apply(key model.EntityKey, ev model.Event) error {
	store := c.store.Load()
	if store == nil {
		return model.ErrNotInitialized
	}
	if err := store.BeginOp(); err != nil {
		return err
	}
	defer store.EndOp()

	rec, err := store.GetOrCreate(key)
	if err != nil {
		return err
	}
	if err := rec.Apply(ev); err != nil {
		if errors.Is(err, model.ErrMalformedInput) {
			c.softErrors.Add(1)
		}
		return err
	}
	return nil
}

// RecordZoneEvent applies one completed request to a server zone.
func (c *Collector) RecordZoneEvent(zone string, statusCode int, bytesIn, bytesOut, requestTimeMS uint64) error {
	key := model.ServerZoneKey(truncateName(zone))
	return c.apply(key, model.Event{
		Key:           key,
		StatusCode:    statusCode,
		BytesIn:       bytesIn,
		BytesOut:      bytesOut,
		RequestTimeMS: requestTimeMS,
	})
}

// RecordUpstreamEvent applies one completed request to an upstream server.
func (c *Collector) RecordUpstreamEvent(group, address string, statusCode int, bytesIn, bytesOut, requestTimeMS, upstreamTimeMS uint64) error {
	key := model.UpstreamServerKey(truncateName(group), truncateName(address))
	return c.apply(key, model.Event{
		Key:            key,
		StatusCode:     statusCode,
		BytesIn:        bytesIn,
		BytesOut:       bytesOut,
		RequestTimeMS:  requestTimeMS,
		UpstreamTimeMS: upstreamTimeMS,
	})
}

// SetUpstreamStatus stores the caller-decided liveness for an upstream
// server. The up/down policy lives with the caller, which is the only
// party holding connection-level failure information.
func (c *Collector) SetUpstreamStatus(group, address string, up bool) error {
	store := c.store.Load()
	if store == nil {
		return model.ErrNotInitialized
	}
	if err := store.BeginOp(); err != nil {
		return err
	}
	defer store.EndOp()

	rec, err := store.GetOrCreate(model.UpstreamServerKey(truncateName(group), truncateName(address)))
	if err != nil {
		return err
	}
	rec.SetUp(up)
	return nil
}

// RecordCacheEvent counts one request's cache status for a cache zone.
func (c *Collector) RecordCacheEvent(zone, cacheStatus string) error {
	if c.store.Load() == nil {
		return model.ErrNotInitialized
	}
	zone = truncateName(zone)

	c.cacheMu.RLock()
	cz, ok := c.cacheZones[zone]
	c.cacheMu.RUnlock()
	if !ok {
		c.cacheMu.Lock()
		cz, ok = c.cacheZones[zone]
		if !ok {
			cz = &stats.CacheZoneStats{}
			c.cacheZones[zone] = cz
		}
		c.cacheMu.Unlock()
	}

	if err := cz.Observe(strings.ToUpper(cacheStatus)); err != nil {
		c.softErrors.Add(1)
		return err
	}
	return nil
}

// SetConnections updates the current connection gauges.
func (c *Collector) SetConnections(active, reading, writing, waiting uint64) {
	c.connActive.Store(active)
	c.connReading.Store(reading)
	c.connWriting.Store(writing)
	c.connWaiting.Store(waiting)
}

// AddAccepted adds to the accepted-connections total.
func (c *Collector) AddAccepted(n uint64) { c.connAccepted.Add(n) }

// AddHandled adds to the handled-connections total.
func (c *Collector) AddHandled(n uint64) { c.connHandled.Add(n) }

// ZoneView returns a point-in-time view of one server zone's record.
// The second return is false when the zone has never recorded an event.
func (c *Collector) ZoneView(zone string) (stats.RecordView, bool) {
	store := c.store.Load()
	if store == nil {
		return stats.RecordView{}, false
	}
	var view stats.RecordView
	var found bool
	want := model.ServerZoneKey(truncateName(zone))
	store.Range(func(key model.EntityKey, rec *stats.Record) bool {
		if key == want {
			view = rec.View()
			found = true
			return false
		}
		return true
	})
	return view, found
}

// SoftErrors returns the number of events dropped for malformed input.
func (c *Collector) SoftErrors() uint64 { return c.softErrors.Load() }

// Store exposes the underlying registry store, nil before ConfigureZone.
func (c *Collector) Store() *registry.Store { return c.store.Load() }

func (c *Collector) connectionsView() format.ConnectionsView {
	return format.ConnectionsView{
		Active:   c.connActive.Load(),
		Reading:  c.connReading.Load(),
		Writing:  c.connWriting.Load(),
		Waiting:  c.connWaiting.Load(),
		Accepted: c.connAccepted.Load(),
		Handled:  c.connHandled.Load(),
	}
}

func (c *Collector) cacheViews() map[string]stats.CacheView {
	c.cacheMu.RLock()
	defer c.cacheMu.RUnlock()
	views := make(map[string]stats.CacheView, len(c.cacheZones))
	for name, cz := range c.cacheZones {
		views[name] = cz.View()
	}
	return views
}

// WriteSnapshot streams the full metrics document to w.
func (c *Collector) WriteSnapshot(w io.Writer) error {
	store := c.store.Load()
	if store == nil {
		return model.ErrNotInitialized
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}

	if err := c.formatter.WriteInfo(w, hostname, Version); err != nil {
		return err
	}
	if err := c.formatter.WriteConnections(w, c.connectionsView()); err != nil {
		return err
	}
	if err := c.formatter.WriteZones(w, store); err != nil {
		return err
	}
	if err := c.formatter.WriteCaches(w, c.cacheViews()); err != nil {
		return err
	}
	return c.formatter.WriteSoftErrors(w, c.softErrors.Load())
}

// RenderSnapshot returns the full metrics document as a string.
func (c *Collector) RenderSnapshot() (string, error) {
	var b strings.Builder
	if err := c.WriteSnapshot(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Shutdown drains the store and releases its backing storage. Callers must
// stop their event workers first; Shutdown fails while operations are still
// in flight.
func (c *Collector) Shutdown() error {
	store := c.store.Load()
	if store == nil {
		return model.ErrNotInitialized
	}
	store.Drain()
	return store.Destroy()
}

package collector

import (
	"errors"
	"strings"
	"testing"

	"TrafficScope/internal/model"
	"TrafficScope/internal/registry"
)

func newConfigured(t *testing.T, capacity uint64) *Collector {
	t.Helper()
	c := New()
	if err := c.ConfigureZone("main", capacity*registry.RecordFootprint, 8); err != nil {
		t.Fatalf("ConfigureZone failed: %v", err)
	}
	return c
}

func TestCollector_NotInitialized(t *testing.T) {
	c := New()

	if err := c.RecordZoneEvent("example.com", 200, 1, 1, 1); !errors.Is(err, model.ErrNotInitialized) {
		t.Errorf("RecordZoneEvent: err = %v, want ErrNotInitialized", err)
	}
	if err := c.SetUpstreamStatus("backend", "10.0.0.1:80", true); !errors.Is(err, model.ErrNotInitialized) {
		t.Errorf("SetUpstreamStatus: err = %v, want ErrNotInitialized", err)
	}
	if err := c.RecordCacheEvent("static", "HIT"); !errors.Is(err, model.ErrNotInitialized) {
		t.Errorf("RecordCacheEvent: err = %v, want ErrNotInitialized", err)
	}
	if _, err := c.RenderSnapshot(); !errors.Is(err, model.ErrNotInitialized) {
		t.Errorf("RenderSnapshot: err = %v, want ErrNotInitialized", err)
	}
	if err := c.Shutdown(); !errors.Is(err, model.ErrNotInitialized) {
		t.Errorf("Shutdown: err = %v, want ErrNotInitialized", err)
	}
}

func TestCollector_DoubleConfigure(t *testing.T) {
	c := newConfigured(t, 8)
	if err := c.ConfigureZone("other", 8*registry.RecordFootprint, 8); err == nil {
		t.Error("second ConfigureZone should fail")
	}
}

// End to end: configure, record one request, render, check the document.
func TestCollector_RoundTrip(t *testing.T) {
	c := newConfigured(t, 2)

	if err := c.RecordZoneEvent("example.com", 200, 100, 2000, 125); err != nil {
		t.Fatalf("RecordZoneEvent failed: %v", err)
	}

	out, err := c.RenderSnapshot()
	if err != nil {
		t.Fatalf("RenderSnapshot failed: %v", err)
	}

	for _, want := range []string{
		`trafficscope_server_responses_total{zone="example.com",status="2xx"} 1`,
		`trafficscope_server_bytes_total{zone="example.com",direction="in"} 100`,
		`trafficscope_server_bytes_total{zone="example.com",direction="out"} 2000`,
		`trafficscope_server_request_seconds{zone="example.com",type="avg"} 0.125000`,
		`trafficscope_info{hostname=`,
		`trafficscope_collector_soft_errors_total 0`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("snapshot missing %q\n---\n%s", want, out)
		}
	}
}

func TestCollector_MalformedEventCounted(t *testing.T) {
	c := newConfigured(t, 4)

	if err := c.RecordZoneEvent("example.com", 999, 1, 1, 1); !errors.Is(err, model.ErrMalformedInput) {
		t.Fatalf("err = %v, want ErrMalformedInput", err)
	}
	if got := c.SoftErrors(); got != 1 {
		t.Errorf("SoftErrors = %d, want 1", got)
	}

	// The bad event must leave no trace in the record itself.
	out, err := c.RenderSnapshot()
	if err != nil {
		t.Fatalf("RenderSnapshot failed: %v", err)
	}
	if !strings.Contains(out, `trafficscope_server_requests_total{zone="example.com"} 0`) {
		t.Errorf("malformed event leaked into counters:\n%s", out)
	}
	if !strings.Contains(out, "trafficscope_collector_soft_errors_total 1") {
		t.Errorf("soft error counter not rendered:\n%s", out)
	}
}

func TestCollector_CapacityExceeded(t *testing.T) {
	c := newConfigured(t, 2)

	if err := c.RecordZoneEvent("a.example", 200, 1, 1, 1); err != nil {
		t.Fatalf("first event failed: %v", err)
	}
	if err := c.RecordZoneEvent("b.example", 200, 1, 1, 1); err != nil {
		t.Fatalf("second event failed: %v", err)
	}
	if err := c.RecordZoneEvent("c.example", 200, 1, 1, 1); !errors.Is(err, model.ErrCapacityExceeded) {
		t.Errorf("err = %v, want ErrCapacityExceeded", err)
	}
	// Known keys keep working after the rejection.
	if err := c.RecordZoneEvent("a.example", 200, 1, 1, 1); err != nil {
		t.Errorf("event for known key after rejection failed: %v", err)
	}
}

func TestCollector_NameTruncation(t *testing.T) {
	c := newConfigured(t, 4)

	long := strings.Repeat("z", maxNameLen+50)
	if err := c.RecordZoneEvent(long, 200, 1, 1, 1); err != nil {
		t.Fatalf("RecordZoneEvent failed: %v", err)
	}
	// A second event with the same over-long name lands on the same record.
	if err := c.RecordZoneEvent(long, 200, 1, 1, 1); err != nil {
		t.Fatalf("RecordZoneEvent failed: %v", err)
	}

	wantZone := strings.Repeat("z", maxNameLen-len(truncMarker)) + truncMarker
	out, err := c.RenderSnapshot()
	if err != nil {
		t.Fatalf("RenderSnapshot failed: %v", err)
	}
	if !strings.Contains(out, `trafficscope_server_requests_total{zone="`+wantZone+`"} 2`) {
		t.Errorf("truncated zone not aggregated:\n%s", out)
	}
	if c.Store().Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Store().Len())
	}
}

func TestCollector_UpstreamStatus(t *testing.T) {
	c := newConfigured(t, 4)

	if err := c.RecordUpstreamEvent("backend", "10.0.0.1:80", 200, 10, 20, 30, 25); err != nil {
		t.Fatalf("RecordUpstreamEvent failed: %v", err)
	}
	if err := c.SetUpstreamStatus("backend", "10.0.0.1:80", false); err != nil {
		t.Fatalf("SetUpstreamStatus failed: %v", err)
	}

	out, err := c.RenderSnapshot()
	if err != nil {
		t.Fatalf("RenderSnapshot failed: %v", err)
	}
	for _, want := range []string{
		`trafficscope_upstream_requests_total{upstream="backend",server="10.0.0.1:80"} 1`,
		`trafficscope_upstream_response_seconds{upstream="backend",server="10.0.0.1:80",type="avg"} 0.025000`,
		`trafficscope_upstream_server_up{upstream="backend",server="10.0.0.1:80"} 0`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("snapshot missing %q\n---\n%s", want, out)
		}
	}
}

func TestCollector_ConnectionsAndCache(t *testing.T) {
	c := newConfigured(t, 4)

	c.SetConnections(5, 1, 2, 2)
	c.AddAccepted(100)
	c.AddHandled(99)

	for _, status := range []string{"HIT", "HIT", "miss", "EXPIRED"} {
		if err := c.RecordCacheEvent("static", status); err != nil {
			t.Fatalf("RecordCacheEvent(%q) failed: %v", status, err)
		}
	}
	if err := c.RecordCacheEvent("static", "BOGUS"); !errors.Is(err, model.ErrMalformedInput) {
		t.Errorf("unknown cache status: err = %v, want ErrMalformedInput", err)
	}

	out, err := c.RenderSnapshot()
	if err != nil {
		t.Fatalf("RenderSnapshot failed: %v", err)
	}
	for _, want := range []string{
		`trafficscope_connections{state="active"} 5`,
		`trafficscope_connections_total{state="accepted"} 100`,
		`trafficscope_connections_total{state="handled"} 99`,
		`trafficscope_cache_requests_total{zone="static",status="hit"} 2`,
		`trafficscope_cache_requests_total{zone="static",status="miss"} 1`,
		`trafficscope_cache_requests_total{zone="static",status="expired"} 1`,
		`trafficscope_cache_hit_ratio{zone="static"} 0.500000`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("snapshot missing %q\n---\n%s", want, out)
		}
	}
}

func TestCollector_Shutdown(t *testing.T) {
	c := newConfigured(t, 4)
	if err := c.RecordZoneEvent("example.com", 200, 1, 1, 1); err != nil {
		t.Fatalf("RecordZoneEvent failed: %v", err)
	}

	if err := c.Shutdown(); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if err := c.RecordZoneEvent("example.com", 200, 1, 1, 1); !errors.Is(err, model.ErrShuttingDown) {
		t.Errorf("event after shutdown: err = %v, want ErrShuttingDown", err)
	}
	if err := c.Shutdown(); err == nil {
		t.Error("second Shutdown should fail")
	}
}

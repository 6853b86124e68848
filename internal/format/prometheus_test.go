package format

import (
	"strings"
	"testing"

	"TrafficScope/internal/model"
	"TrafficScope/internal/registry"
	"TrafficScope/internal/stats"
)

func mustApply(t *testing.T, s *registry.Store, ev model.Event) {
	t.Helper()
	rec, err := s.GetOrCreate(ev.Key)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if err := rec.Apply(ev); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
}

func TestWriteZones_RoundTrip(t *testing.T) {
	s, err := registry.New("main", 2*registry.RecordFootprint, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	key := model.ServerZoneKey("example.com")
	mustApply(t, s, model.Event{
		Key:           key,
		StatusCode:    200,
		BytesIn:       100,
		BytesOut:      2000,
		RequestTimeMS: 125,
	})

	var b strings.Builder
	if err := NewFormatter().WriteZones(&b, s); err != nil {
		t.Fatalf("WriteZones failed: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		`trafficscope_server_requests_total{zone="example.com"} 1`,
		`trafficscope_server_responses_total{zone="example.com",status="2xx"} 1`,
		`trafficscope_server_responses_total{zone="example.com",status="5xx"} 0`,
		`trafficscope_server_bytes_total{zone="example.com",direction="in"} 100`,
		`trafficscope_server_bytes_total{zone="example.com",direction="out"} 2000`,
		`trafficscope_server_request_seconds{zone="example.com",type="avg"} 0.125000`,
		`trafficscope_server_request_seconds{zone="example.com",type="min"} 0.125000`,
		`trafficscope_server_request_seconds{zone="example.com",type="max"} 0.125000`,
		"# HELP trafficscope_server_requests_total",
		"# TYPE trafficscope_server_requests_total counter",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n---\n%s", want, out)
		}
	}
}

func TestWriteZones_Upstreams(t *testing.T) {
	s, err := registry.New("main", 16*registry.RecordFootprint, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	key := model.UpstreamServerKey("backend", "10.0.0.1:80")
	mustApply(t, s, model.Event{
		Key:            key,
		StatusCode:     502,
		BytesIn:        50,
		BytesOut:       500,
		RequestTimeMS:  200,
		UpstreamTimeMS: 150,
	})
	rec, err := s.GetOrCreate(key)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	rec.SetUp(false)

	var b strings.Builder
	if err := NewFormatter().WriteZones(&b, s); err != nil {
		t.Fatalf("WriteZones failed: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		`trafficscope_upstream_requests_total{upstream="backend",server="10.0.0.1:80"} 1`,
		`trafficscope_upstream_responses_total{upstream="backend",server="10.0.0.1:80",status="5xx"} 1`,
		`trafficscope_upstream_bytes_total{upstream="backend",server="10.0.0.1:80",direction="in"} 50`,
		`trafficscope_upstream_request_seconds{upstream="backend",server="10.0.0.1:80",type="max"} 0.200000`,
		`trafficscope_upstream_response_seconds{upstream="backend",server="10.0.0.1:80",type="avg"} 0.150000`,
		`trafficscope_upstream_server_up{upstream="backend",server="10.0.0.1:80"} 0`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n---\n%s", want, out)
		}
	}
}

// Timing families must render 0 for empty aggregates, never error or omit.
func TestWriteZones_ZeroCountTiming(t *testing.T) {
	s, err := registry.New("main", 4*registry.RecordFootprint, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// Liveness pushed before any traffic: record exists, timing empty.
	key := model.UpstreamServerKey("backend", "10.0.0.2:80")
	if _, err := s.GetOrCreate(key); err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}

	var b strings.Builder
	if err := NewFormatter().WriteZones(&b, s); err != nil {
		t.Fatalf("WriteZones failed: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		`trafficscope_upstream_request_seconds{upstream="backend",server="10.0.0.2:80",type="avg"} 0.000000`,
		`trafficscope_upstream_request_seconds{upstream="backend",server="10.0.0.2:80",type="min"} 0.000000`,
		`trafficscope_upstream_request_seconds{upstream="backend",server="10.0.0.2:80",type="max"} 0.000000`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n---\n%s", want, out)
		}
	}
}

// Two renders of identical record values must produce identical documents,
// regardless of insertion order.
func TestWriteZones_Deterministic(t *testing.T) {
	build := func(order []string) string {
		s, err := registry.New("main", 16*registry.RecordFootprint, 4)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		for _, zone := range order {
			mustApply(t, s, model.Event{
				Key:           model.ServerZoneKey(zone),
				StatusCode:    200,
				BytesIn:       1,
				BytesOut:      1,
				RequestTimeMS: 5,
			})
		}
		var b strings.Builder
		if err := NewFormatter().WriteZones(&b, s); err != nil {
			t.Fatalf("WriteZones failed: %v", err)
		}
		return b.String()
	}

	a := build([]string{"alpha.example", "beta.example", "gamma.example"})
	b := build([]string{"gamma.example", "alpha.example", "beta.example"})
	if a != b {
		t.Error("documents for identical record values differ with insertion order")
	}
}

func TestWriteCachesAndConnections(t *testing.T) {
	f := NewFormatter()

	cz := &stats.CacheZoneStats{}
	cz.Observe(stats.CacheHit)
	cz.Observe(stats.CacheMiss)

	var b strings.Builder
	if err := f.WriteCaches(&b, map[string]stats.CacheView{"static": cz.View()}); err != nil {
		t.Fatalf("WriteCaches failed: %v", err)
	}
	if err := f.WriteConnections(&b, ConnectionsView{Active: 3, Accepted: 10, Handled: 9}); err != nil {
		t.Fatalf("WriteConnections failed: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		`trafficscope_cache_requests_total{zone="static",status="hit"} 1`,
		`trafficscope_cache_requests_total{zone="static",status="miss"} 1`,
		`trafficscope_cache_hit_ratio{zone="static"} 0.500000`,
		`trafficscope_connections{state="active"} 3`,
		`trafficscope_connections_total{state="accepted"} 10`,
		`trafficscope_connections_total{state="handled"} 9`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n---\n%s", want, out)
		}
	}
}

func TestLabelEscaping(t *testing.T) {
	s, err := registry.New("main", 4*registry.RecordFootprint, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	mustApply(t, s, model.Event{
		Key:           model.ServerZoneKey(`weird"zone`),
		StatusCode:    200,
		RequestTimeMS: 1,
	})

	var b strings.Builder
	if err := NewFormatter().WriteZones(&b, s); err != nil {
		t.Fatalf("WriteZones failed: %v", err)
	}
	if !strings.Contains(b.String(), `zone="weird\"zone"`) {
		t.Errorf("quote in label value not escaped:\n%s", b.String())
	}
}

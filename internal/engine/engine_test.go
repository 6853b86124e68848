package engine

import (
	"strings"
	"testing"

	v1 "TrafficScope/api/gen/v1"
	"TrafficScope/internal/collector"
	"TrafficScope/internal/config"
	"TrafficScope/internal/registry"
)

func newTestEngine(t *testing.T, workers int) (*Engine, *collector.Collector) {
	t.Helper()
	col := collector.New()
	if err := col.ConfigureZone("main", 64*registry.RecordFootprint, 8); err != nil {
		t.Fatalf("ConfigureZone failed: %v", err)
	}
	cfg := &config.Config{}
	cfg.Collector.NumWorkers = workers
	cfg.Collector.SizeOfEventChannel = 256
	e, err := NewEngine(cfg, col)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return e, col
}

func TestEngine_ProcessesZoneAndUpstreamEvents(t *testing.T) {
	e, col := newTestEngine(t, 4)
	e.StartWorkers()

	in := e.InputChannel()
	const perKind = 100
	for i := 0; i < perKind; i++ {
		in <- &v1.TrafficEvent{
			Zone:          "web",
			StatusCode:    200,
			BytesIn:       10,
			BytesOut:      20,
			RequestTimeMs: 5,
		}
		in <- &v1.TrafficEvent{
			Upstream:       "backend",
			Server:         "10.0.0.1:80",
			StatusCode:     502,
			BytesIn:        1,
			BytesOut:       2,
			RequestTimeMs:  7,
			UpstreamTimeMs: 6,
		}
	}
	e.Stop()

	out, err := col.RenderSnapshot()
	if err != nil {
		t.Fatalf("RenderSnapshot failed: %v", err)
	}
	for _, want := range []string{
		`trafficscope_server_requests_total{zone="web"} 100`,
		`trafficscope_server_bytes_total{zone="web",direction="out"} 2000`,
		`trafficscope_upstream_responses_total{upstream="backend",server="10.0.0.1:80",status="5xx"} 100`,
		`trafficscope_upstream_response_seconds{upstream="backend",server="10.0.0.1:80",type="avg"} 0.006000`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("snapshot missing %q\n---\n%s", want, out)
		}
	}
}

// A malformed event must be counted as a soft error without stalling the pool.
func TestEngine_MalformedEventDoesNotStall(t *testing.T) {
	e, col := newTestEngine(t, 2)
	e.StartWorkers()

	in := e.InputChannel()
	in <- &v1.TrafficEvent{Zone: "web", StatusCode: 999, RequestTimeMs: 1}
	in <- &v1.TrafficEvent{Zone: "web", StatusCode: 200, RequestTimeMs: 1}
	e.Stop()

	if got := col.SoftErrors(); got != 1 {
		t.Errorf("SoftErrors = %d, want 1", got)
	}
	view, ok := col.ZoneView("web")
	if !ok {
		t.Fatal("zone web not found")
	}
	if view.Requests != 1 {
		t.Errorf("Requests = %d, want 1", view.Requests)
	}
}

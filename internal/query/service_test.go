package query

import (
	"context"
	"strings"
	"testing"

	v1 "TrafficScope/api/gen/v1"
	"TrafficScope/internal/collector"
	"TrafficScope/internal/registry"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestService(t *testing.T) (*Service, *collector.Collector) {
	t.Helper()
	col := collector.New()
	if err := col.ConfigureZone("main", 16*registry.RecordFootprint, 8); err != nil {
		t.Fatalf("ConfigureZone failed: %v", err)
	}
	return NewService(col), col
}

func TestService_HealthCheck(t *testing.T) {
	s, _ := newTestService(t)
	resp, err := s.HealthCheck(context.Background(), &v1.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("HealthCheck failed: %v", err)
	}
	if resp.GetStatus() != "ok" {
		t.Errorf("status = %q, want ok", resp.GetStatus())
	}
}

func TestService_RenderMetrics(t *testing.T) {
	s, col := newTestService(t)
	if err := col.RecordZoneEvent("web", 200, 10, 20, 5); err != nil {
		t.Fatalf("RecordZoneEvent failed: %v", err)
	}

	resp, err := s.RenderMetrics(context.Background(), &v1.RenderMetricsRequest{})
	if err != nil {
		t.Fatalf("RenderMetrics failed: %v", err)
	}
	if !strings.Contains(resp.GetText(), `trafficscope_server_requests_total{zone="web"} 1`) {
		t.Errorf("metrics text missing zone line:\n%s", resp.GetText())
	}
}

func TestService_RenderMetrics_Unconfigured(t *testing.T) {
	s := NewService(collector.New())
	_, err := s.RenderMetrics(context.Background(), &v1.RenderMetricsRequest{})
	if status.Code(err) != codes.FailedPrecondition {
		t.Errorf("code = %v, want FailedPrecondition", status.Code(err))
	}
}

func TestService_GetZoneStats(t *testing.T) {
	s, col := newTestService(t)
	if err := col.RecordZoneEvent("web", 200, 100, 2000, 125); err != nil {
		t.Fatalf("RecordZoneEvent failed: %v", err)
	}
	if err := col.RecordZoneEvent("web", 503, 5, 50, 75); err != nil {
		t.Fatalf("RecordZoneEvent failed: %v", err)
	}

	resp, err := s.GetZoneStats(context.Background(), &v1.GetZoneStatsRequest{Zone: "web"})
	if err != nil {
		t.Fatalf("GetZoneStats failed: %v", err)
	}
	if resp.GetRequests() != 2 || resp.GetStatus_2Xx() != 1 || resp.GetStatus_5Xx() != 1 {
		t.Errorf("unexpected counts: %+v", resp)
	}
	if resp.GetBytesIn() != 105 || resp.GetBytesOut() != 2050 {
		t.Errorf("unexpected byte totals: %+v", resp)
	}
	if resp.GetRequestTimeAvgMs() != 100 || resp.GetRequestTimeMinMs() != 75 || resp.GetRequestTimeMaxMs() != 125 {
		t.Errorf("unexpected timing: %+v", resp)
	}
}

func TestService_GetZoneStats_NotFound(t *testing.T) {
	s, _ := newTestService(t)
	_, err := s.GetZoneStats(context.Background(), &v1.GetZoneStatsRequest{Zone: "nope"})
	if status.Code(err) != codes.NotFound {
		t.Errorf("code = %v, want NotFound", status.Code(err))
	}
}

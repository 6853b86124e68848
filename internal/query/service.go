// Package query serves live statistics over gRPC.
package query

import (
	"context"
	"errors"
	"log"

	v1 "TrafficScope/api/gen/v1"
	"TrafficScope/internal/collector"
	"TrafficScope/internal/model"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service implements v1.QueryServiceServer over a running collector.
type Service struct {
	v1.UnimplementedQueryServiceServer
	collector *collector.Collector
}

// NewService creates a query service bound to col.
func NewService(col *collector.Collector) *Service {
	return &Service{collector: col}
}

func (s *Service) HealthCheck(ctx context.Context, req *v1.HealthCheckRequest) (*v1.HealthCheckResponse, error) {
	log.Println("Received HealthCheck request")
	return &v1.HealthCheckResponse{Status: "ok"}, nil
}

func (s *Service) RenderMetrics(ctx context.Context, req *v1.RenderMetricsRequest) (*v1.RenderMetricsResponse, error) {
	text, err := s.collector.RenderSnapshot()
	if err != nil {
		if errors.Is(err, model.ErrNotInitialized) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &v1.RenderMetricsResponse{Text: text}, nil
}

func (s *Service) GetZoneStats(ctx context.Context, req *v1.GetZoneStatsRequest) (*v1.GetZoneStatsResponse, error) {
	view, ok := s.collector.ZoneView(req.GetZone())
	if !ok {
		return nil, status.Errorf(codes.NotFound, "zone %q not found", req.GetZone())
	}
	return &v1.GetZoneStatsResponse{
		Zone:             req.GetZone(),
		Requests:         view.Requests,
		BytesIn:          view.BytesIn,
		BytesOut:         view.BytesOut,
		Status_1Xx:       view.Statuses[0],
		Status_2Xx:       view.Statuses[1],
		Status_3Xx:       view.Statuses[2],
		Status_4Xx:       view.Statuses[3],
		Status_5Xx:       view.Statuses[4],
		RequestTimeAvgMs: view.RequestTime.AvgMS,
		RequestTimeMinMs: view.RequestTime.MinMS,
		RequestTimeMaxMs: view.RequestTime.MaxMS,
	}, nil
}

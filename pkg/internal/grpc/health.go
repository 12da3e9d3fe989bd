package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	health "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// HealthService reports serving as long as the process is up; orchestration
// probes hit this instead of the HTTP surface.
type HealthService struct {
	health.UnimplementedHealthServer
}

func RegisterHealth(srv *grpc.Server) {
	health.RegisterHealthServer(srv, &HealthService{})
}

func (v *HealthService) Check(ctx context.Context, in *health.HealthCheckRequest) (*health.HealthCheckResponse, error) {
	return &health.HealthCheckResponse{
		Status: health.HealthCheckResponse_SERVING,
	}, nil
}

func (v *HealthService) Watch(in *health.HealthCheckRequest, stream health.Health_WatchServer) error {
	for {
		if err := stream.Send(&health.HealthCheckResponse{
			Status: health.HealthCheckResponse_SERVING,
		}); err != nil {
			return status.Error(codes.Canceled, "stream closed")
		}
		select {
		case <-stream.Context().Done():
			return nil
		case <-time.After(10 * time.Second):
		}
	}
}

// Package grpc exposes the standard gRPC health service so orchestrators can
// probe the API process without speaking HTTP.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/service"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the name under which the API reports its own health in
// addition to the server-wide "" entry.
const ServiceName = "gotweet.API"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server
	logger   *logger.Logger
}

// NewHandler constructs a [Handler]. Both health entries start as
// NOT_SERVING until [Handler.MarkServing] is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// MarkServing reports the API as ready.
func (h *Handler) MarkServing() {
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// MarkNotServing reports the API as draining. Watchers are notified.
func (h *Handler) MarkNotServing() {
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
}

func (h *Handler) setStatus(st healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", st)
	h.health.SetServingStatus(ServiceName, st)
	h.logger.Info().Str("status", st.String()).Msg("gRPC health status changed")
}

// UnaryLogging logs every unary call with its method, code and duration,
// and puts a trace-scoped logger into the handler context.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	l := h.logger.WithTraceID(uuid.NewString())
	ctx = l.WithContext(ctx)

	start := time.Now()
	resp, err := next(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

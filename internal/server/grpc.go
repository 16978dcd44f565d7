package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-tweet/internal/config"
	healthHandler "github.com/MKhiriev/go-tweet/internal/handler/grpc"
	"github.com/MKhiriev/go-tweet/internal/logger"

	"google.golang.org/grpc"
)

// grpcServer hosts the health service. The listener is opened eagerly so a
// taken port fails NewServer instead of surfacing later.
type grpcServer struct {
	health   *healthHandler.Handler
	server   *grpc.Server
	listener net.Listener
	logger   *logger.Logger
}

func newGRPCServer(health *healthHandler.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(grpc.UnaryInterceptor(health.UnaryLogging))
	health.Register(server)

	return &grpcServer{
		health:   health,
		server:   server,
		listener: listener,
		logger:   logger,
	}, nil
}

func (g *grpcServer) name() string {
	return "grpc"
}

func (g *grpcServer) serve() error {
	g.health.MarkServing()
	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("gRPC server listening")

	err := g.server.Serve(g.listener)
	if err == nil || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return fmt.Errorf("gRPC server on %s: %w", g.listener.Addr(), err)
}

// shutdown reports NOT_SERVING before the listener closes.
func (g *grpcServer) shutdown() {
	g.health.MarkNotServing()
	g.server.GracefulStop()
}

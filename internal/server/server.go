package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-tweet/internal/config"
	"github.com/MKhiriev/go-tweet/internal/handler"
	"github.com/MKhiriev/go-tweet/internal/logger"
)

type server struct {
	transports []transport
	logger     *logger.Logger
}

// NewServer creates a transport for every handler that has an address.
// The gRPC listener is bound here, so a busy port is reported immediately.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.transports = append(s.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		s.transports = append(s.transports, grpcSrv)
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT and then shuts every
// started server down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	for _, t := range s.transports {
		t.shutdown()
	}
}

// run serves until ctx is done or any transport stops on its own. In the
// second case the remaining transports are shut down and the cause returned.
func (s *server) run(ctx context.Context) error {
	if len(s.transports) == 0 {
		return errNoServersAreCreated
	}

	stopped := make(chan error, len(s.transports))
	for _, t := range s.transports {
		s.logger.Info().Str("transport", t.name()).Msg("launching server")
		go func() {
			err := t.serve()
			if err == nil {
				err = fmt.Errorf("%w: %s", errTransportStopped, t.name())
			}
			stopped <- err
		}()
	}

	var cause error
	select {
	case <-ctx.Done():
	case cause = <-stopped:
	}

	s.Shutdown()
	if cause != nil {
		return cause
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

package handler

import (
	"github.com/MKhiriev/go-tweet/internal/config"
	"github.com/MKhiriev/go-tweet/internal/handler/grpc"
	"github.com/MKhiriev/go-tweet/internal/handler/http"
	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/service"
	"github.com/MKhiriev/go-tweet/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler for every transport that has an address.
// rateLimiter may be nil.
func NewHandlers(services *service.Services, rateLimiter store.RateLimiter, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, rateLimiter, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

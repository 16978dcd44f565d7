package http

import (
	"net/netip"

	"github.com/MKhiriev/go-tweet/internal/config"
	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/service"
	"github.com/MKhiriev/go-tweet/internal/store"
)

type Handler struct {
	services *service.Services

	// rateLimiter is nil when Redis is not configured.
	rateLimiter store.RateLimiter

	cfg config.Server

	// trustedProxies may set the client address through forwarded headers.
	trustedProxies []netip.Prefix

	logger *logger.Logger
}

func NewHandler(services *service.Services, rateLimiter store.RateLimiter, cfg config.Server, logger *logger.Logger) *Handler {
	trustedProxies, err := cfg.TrustedProxyPrefixes()
	if err != nil {
		logger.Warn().Err(err).Msg("ignoring trusted proxies, forwarded headers will not be used")
		trustedProxies = nil
	}

	logger.Info().Int("trusted_proxies", len(trustedProxies)).Msg("http handler created")
	return &Handler{
		services:       services,
		rateLimiter:    rateLimiter,
		cfg:            cfg,
		trustedProxies: trustedProxies,
		logger:         logger,
	}
}

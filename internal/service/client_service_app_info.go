package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-tweet/internal/adapter"
	"github.com/MKhiriev/go-tweet/internal/logger"
)

type clientAppInfoService struct {
	api    adapter.TweetAPI
	logger *logger.Logger
}

func NewClientAppInfoService(api adapter.TweetAPI, logger *logger.Logger) ClientAppInfoService {
	return &clientAppInfoService{api: api, logger: logger}
}

func (s *clientAppInfoService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.api.Version(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientAppInfoService.ServerVersion").Msg("error requesting server version")
		return "", mapAdapterError(err)
	}

	return strings.TrimSpace(version), nil
}

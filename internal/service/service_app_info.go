package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-tweet/internal/config"
	"github.com/MKhiriev/go-tweet/internal/logger"
)

// appInfoService answers GET /api/version.
type appInfoService struct {
	appVersion string
}

// NewAppInfoService fails when no version was configured or stamped into
// the binary.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("app info service created")
	return &appInfoService{appVersion: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.appVersion
}

package service

import (
	"github.com/MKhiriev/go-tweet/internal/config"
	"github.com/MKhiriev/go-tweet/internal/events"
	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/search"
	"github.com/MKhiriev/go-tweet/internal/store"
)

type Services struct {
	AuthService    AuthService
	TweetService   TweetService
	AppInfoService AppInfoService
}

// NewServices wires the server-side services. index may be nil when search
// is not configured; emitter receives tweet events.
func NewServices(storages *store.Storages, index search.TweetIndex, emitter events.Emitter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	tweetService := NewTweetEventsService(emitter).
		Wrap(NewTweetService(storages.TweetRepository, index, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.SessionStorage, cfg.App, logger),
		TweetService:   tweetService,
		AppInfoService: appInfoService,
	}, nil
}

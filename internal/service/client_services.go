package service

import (
	"github.com/MKhiriev/go-tweet/internal/adapter"
	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/store"
)

type ClientServices struct {
	Session      ClientSession
	AuthService  ClientAuthService
	TweetService ClientTweetService
	AppInfo      ClientAppInfoService
}

func NewClientServices(localStore *store.ClientStorages, api adapter.TweetAPI, logger *logger.Logger) *ClientServices {
	session := NewClientSession(localStore.SettingsRepository, api, logger)

	return &ClientServices{
		Session:      session,
		AuthService:  NewClientAuthService(api, session, logger),
		TweetService: NewClientTweetService(api, logger),
		AppInfo:      NewClientAppInfoService(api, logger),
	}
}

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tweet/internal/adapter"
	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/models"
)

type clientAuthService struct {
	api     adapter.TweetAPI
	session ClientSession
	logger  *logger.Logger
}

func NewClientAuthService(api adapter.TweetAPI, session ClientSession, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{api: api, session: session, logger: logger}
}

func (a *clientAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.PublicUser, error) {
	auth, err := a.api.Signup(ctx, req)
	if err != nil {
		return models.PublicUser{}, mapAdapterError(err)
	}

	return a.persist(ctx, auth)
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error) {
	auth, err := a.api.Login(ctx, req)
	if err != nil {
		return models.PublicUser{}, mapAdapterError(err)
	}

	return a.persist(ctx, auth)
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("server logout failed, clearing local session anyway")
	}

	return a.session.Clear(ctx)
}

func (a *clientAuthService) persist(ctx context.Context, auth models.AuthResponse) (models.PublicUser, error) {
	if err := a.session.SaveAuth(ctx, auth); err != nil {
		return models.PublicUser{}, fmt.Errorf("signed in but failed to save session: %w", err)
	}
	return auth.User, nil
}

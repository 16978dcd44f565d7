package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-tweet/internal/adapter"
	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/store"
	"github.com/MKhiriev/go-tweet/models"
)

type clientSession struct {
	settings store.SettingsRepository
	api      adapter.TweetAPI

	mu   sync.RWMutex
	user *models.PublicUser

	logger *logger.Logger
}

func NewClientSession(settings store.SettingsRepository, api adapter.TweetAPI, logger *logger.Logger) ClientSession {
	return &clientSession{settings: settings, api: api, logger: logger}
}

func (s *clientSession) Restore(ctx context.Context) (models.PublicUser, bool, error) {
	token, err := s.settings.Get(ctx, models.SettingToken)
	if errors.Is(err, store.ErrSettingNotFound) {
		return models.PublicUser{}, false, nil
	}
	if err != nil {
		return models.PublicUser{}, false, fmt.Errorf("error reading token: %w", err)
	}

	rawUser, err := s.settings.Get(ctx, models.SettingUser)
	if errors.Is(err, store.ErrSettingNotFound) {
		return models.PublicUser{}, false, nil
	}
	if err != nil {
		return models.PublicUser{}, false, fmt.Errorf("error reading user: %w", err)
	}

	var user models.PublicUser
	if err = json.Unmarshal([]byte(rawUser), &user); err != nil || user.ID == "" {
		s.logger.Warn().Err(err).Msg("stored user is corrupt, dropping session")
		return models.PublicUser{}, false, s.Clear(ctx)
	}

	s.api.SetToken(token)
	s.setUser(&user)

	return user, true, nil
}

func (s *clientSession) SaveAuth(ctx context.Context, auth models.AuthResponse) error {
	rawUser, err := json.Marshal(auth.User)
	if err != nil {
		return fmt.Errorf("error encoding user: %w", err)
	}

	if err = s.settings.Set(ctx, models.SettingToken, auth.Token); err != nil {
		return fmt.Errorf("error saving token: %w", err)
	}
	if err = s.settings.Set(ctx, models.SettingUser, string(rawUser)); err != nil {
		return fmt.Errorf("error saving user: %w", err)
	}

	s.api.SetToken(auth.Token)
	user := auth.User
	s.setUser(&user)

	return nil
}

func (s *clientSession) Clear(ctx context.Context) error {
	s.api.SetToken("")
	s.setUser(nil)

	if err := s.settings.Delete(ctx, models.SettingToken, models.SettingUser); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	return nil
}

func (s *clientSession) User() (models.PublicUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.PublicUser{}, false
	}
	return *s.user, true
}

func (s *clientSession) Theme(ctx context.Context) models.Theme {
	value, err := s.settings.Get(ctx, models.SettingTheme)
	if err != nil && !errors.Is(err, store.ErrSettingNotFound) {
		s.logger.Warn().Err(err).Msg("failed to read theme")
	}
	return models.ParseTheme(value)
}

func (s *clientSession) SetTheme(ctx context.Context, theme models.Theme) error {
	return s.settings.Set(ctx, models.SettingTheme, string(theme))
}

func (s *clientSession) setUser(user *models.PublicUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

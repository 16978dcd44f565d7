package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/service"
)

// UI is the interactive part of the client.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) *App {
	return &App{
		services: services,
		ui:       ui,
		logger:   logger,
	}
}

// Run restores the saved session, if any, and hands control to the UI.
// A session that cannot be read is discarded rather than blocking startup.
func (a *App) Run(ctx context.Context) error {
	user, ok, err := a.services.Session.Restore(ctx)
	switch {
	case err != nil:
		a.logger.Err(err).Msg("error restoring session, starting signed out")
		if clearErr := a.services.Session.Clear(ctx); clearErr != nil {
			return fmt.Errorf("error clearing session: %w", clearErr)
		}
	case ok:
		a.logger.Info().Str("user_id", user.ID).Msg("session restored")
	default:
		a.logger.Info().Msg("no saved session")
	}

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}

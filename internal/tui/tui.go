// Package tui is the terminal user interface of the go-tweet client.
package tui

import (
	"context"

	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/service"
	"github.com/MKhiriev/go-tweet/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.BuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.BuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the timeline when a session is already restored and the auth
// screen otherwise. It blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.buildInfo, t.logger)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tweet/internal/config"
	"github.com/MKhiriev/go-tweet/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// SettingsRepository keeps the session token, user and theme in sqlite.
	SettingsRepository SettingsRepository

	db *DB
}

// NewClientStorages opens the sqlite settings database named by
// cfg.SettingsDSN, creating and migrating it when necessary.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.SettingsDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		SettingsRepository: NewSettingsRepository(db, logger),
		db:                 db,
	}, nil
}

func (s *ClientStorages) Close() error {
	return s.db.Close()
}

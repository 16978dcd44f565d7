package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tweet/internal/logger"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

// Get returns the stored value or [ErrSettingNotFound].
func (s *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.DB.QueryRowContext(ctx, getSetting, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "settingsRepository.Get").
			Str("key", key).
			Msg("failed to read setting")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *settingsRepository) Set(ctx context.Context, key, value string) error {
	if _, err := s.DB.ExecContext(ctx, upsertSetting, key, value); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "settingsRepository.Set").
			Str("key", key).
			Msg("failed to save setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete removes the given keys in a single transaction. Missing keys are
// ignored.
func (s *settingsRepository) Delete(ctx context.Context, keys ...string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, key := range keys {
		if _, err = tx.ExecContext(ctx, deleteSetting, key); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return tx.Commit()
}

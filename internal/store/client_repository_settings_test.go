package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-tweet/internal/config"
	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettingsRepo(t *testing.T) SettingsRepository {
	t.Helper()
	db, err := NewConnectSQLite(context.Background(), ":memory:", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSettingsRepository(db, logger.Nop())
}

func TestSettingsRepository_GetMissing(t *testing.T) {
	repo := newTestSettingsRepo(t)

	_, err := repo.Get(context.Background(), models.SettingToken)
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestSettingsRepository_SetOverwrites(t *testing.T) {
	repo := newTestSettingsRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, models.SettingTheme, "light"))
	require.NoError(t, repo.Set(ctx, models.SettingTheme, "dark"))

	value, err := repo.Get(ctx, models.SettingTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", value)
}

func TestSettingsRepository_Delete(t *testing.T) {
	repo := newTestSettingsRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, models.SettingToken, "jwt"))
	require.NoError(t, repo.Set(ctx, models.SettingUser, `{"id":"u-1"}`))
	require.NoError(t, repo.Set(ctx, models.SettingTheme, "dark"))

	require.NoError(t, repo.Delete(ctx, models.SettingToken, models.SettingUser, "never-stored"))

	_, err := repo.Get(ctx, models.SettingToken)
	assert.ErrorIs(t, err, ErrSettingNotFound)
	_, err = repo.Get(ctx, models.SettingUser)
	assert.ErrorIs(t, err, ErrSettingNotFound)

	theme, err := repo.Get(ctx, models.SettingTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestNewClientStorages_PersistsToFile(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "settings.db")
	cfg := config.ClientStorage{SettingsDSN: dsn}
	ctx := context.Background()

	storages, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, storages.SettingsRepository.Set(ctx, models.SettingToken, "persisted"))
	require.NoError(t, storages.Close())

	reopened, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	value, err := reopened.SettingsRepository.Get(ctx, models.SettingToken)
	require.NoError(t, err)
	assert.Equal(t, "persisted", value)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getSetting = `
		SELECT value
		FROM settings
		WHERE key = ?;`

	upsertSetting = `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE
		SET value = excluded.value,
		    updated_at = excluded.updated_at;`

	deleteSetting = `
		DELETE FROM settings
		WHERE key = ?;`
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

// loadDotEnv copies the variables of the given dotenv files into the
// process environment. Variables that are already set win over the file,
// and a missing file is skipped.
func loadDotEnv(filenames ...string) error {
	for _, name := range filenames {
		err := godotenv.Load(name)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return fmt.Errorf("error loading %s: %w", name, err)
	}

	return nil
}

// parseEnv fills cfg from the `env`/`envPrefix` tags of [StructuredConfig].
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

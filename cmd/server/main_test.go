package main

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-tweet/internal/config"
	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_StorageErrorIsReturned(t *testing.T) {
	cfg := &config.StructuredConfig{
		Storage: config.Storage{DB: config.DB{DSN: "host=127.0.0.1 port=not-a-port dbname=tweets"}},
		Server:  config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second},
	}

	err := run(cfg, logger.Nop())

	require.Error(t, err)
	assert.ErrorContains(t, err, "error creating storages")
}

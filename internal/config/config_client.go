package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the tweet API.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// SettingsDSN is the sqlite file that keeps the session and theme.
	SettingsDSN string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	// LogFile is where the client writes its logs.
	LogFile string
	// LogLevel is shared with the server (APP_LOG_LEVEL).
	LogLevel string
}

// GetClientConfig builds and validates the client view of the merged
// configuration. Server-only requirements are not enforced here.
func GetClientConfig() (*ClientConfig, error) {
	return loadClientConfig(os.Args[1:])
}

func loadClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      cfg.Client.ServerURL,
			RequestTimeout: cfg.Client.RequestTimeout,
		},
		Storage: ClientStorage{
			SettingsDSN: cfg.Client.SettingsDSN,
		},
		LogFile:  cfg.Client.LogFile,
		LogLevel: cfg.App.LogLevel,
	}

	return clientCfg, clientCfg.validate()
}

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates missing listen addresses or timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty database DSN on the server
	// or an empty settings DSN on the client.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing token parameters or an
	// out-of-range bcrypt cost.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates an empty server URL or zero timeout
	// in the client configuration.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a missing or non-positive listen port).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid database settings
	// (for example, an empty host, user, or database name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)

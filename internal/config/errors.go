package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid. All of them are fatal at
// startup.
var (
	// ErrInvalidAdapterConfigs indicates invalid remote source settings
	// (for example, missing address while sync is enabled).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid cache settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid locale settings
	// (for example, a default locale that is not a BCP 47 tag).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid polling settings
	// (for example, a negative interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP surface settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

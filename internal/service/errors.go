package service

import "errors"

var (
	// ErrRemoteSyncDisabled is returned by reconcile when the configuration
	// turned the remote source off.
	ErrRemoteSyncDisabled = errors.New("remote sync is disabled")

	// ErrTransientFetch wraps remote read failures. The next trigger retries.
	ErrTransientFetch = errors.New("remote fetch failed")

	// ErrCacheRead marks persisted state that could not be read or decoded.
	// It is logged and the state is treated as absent.
	ErrCacheRead = errors.New("cache read failed")

	// ErrCacheWrite marks a failed write of the table or version.
	ErrCacheWrite = errors.New("cache write failed")

	// ErrEmptyDocument is returned when the remote document is absent or is
	// not a JSON object.
	ErrEmptyDocument = errors.New("translations document is empty")

	// ErrReshape is returned when the remote document yields no languages.
	ErrReshape = errors.New("translations document has no languages")

	// ErrLocaleNotAvailable is returned by SetLocale for a locale missing from
	// the current table.
	ErrLocaleNotAvailable = errors.New("locale is not available")

	// ErrAlreadyBootstrapped is returned when Bootstrap is called again.
	ErrAlreadyBootstrapped = errors.New("bootstrap already ran")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

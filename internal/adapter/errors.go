package adapter

import "errors"

var (
	ErrInvalidRemoteAddress = errors.New("invalid remote address")
	ErrBadRequest           = errors.New("bad request")
	ErrUnauthorized         = errors.New("client unauthorized")
	ErrForbidden            = errors.New("access forbidden")
	ErrNotFound             = errors.New("not found")
	ErrUnavailable          = errors.New("remote unavailable")

	ErrStreamCancelled = errors.New("stream cancelled by remote")
	ErrAuthRevoked     = errors.New("stream auth revoked")
)

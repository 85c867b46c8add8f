package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-locale-sync/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrLocaleNotAvailable:  http.StatusUnprocessableEntity,
	service.ErrRemoteSyncDisabled:  http.StatusConflict,
	service.ErrAlreadyBootstrapped: http.StatusConflict,

	service.ErrTransientFetch: http.StatusBadGateway,
	service.ErrEmptyDocument:  http.StatusBadGateway,
	service.ErrReshape:        http.StatusBadGateway,

	service.ErrCacheWrite: http.StatusInternalServerError,
	service.ErrCacheRead:  http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

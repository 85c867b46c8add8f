package handler

import (
	"github.com/MKhiriev/go-locale-sync/internal/config"
	"github.com/MKhiriev/go-locale-sync/internal/handler/http"
	"github.com/MKhiriev/go-locale-sync/internal/logger"
	"github.com/MKhiriev/go-locale-sync/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.ClientServer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}

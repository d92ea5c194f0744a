package handler

import (
	"github.com/MKhiriev/go-sign-gate/internal/config"
	"github.com/MKhiriev/go-sign-gate/internal/handler/http"
	"github.com/MKhiriev/go-sign-gate/internal/logger"
	"github.com/MKhiriev/go-sign-gate/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions http.SessionManager, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, sessions, cfg, logger),
	}, nil
}

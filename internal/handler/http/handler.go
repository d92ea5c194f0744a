package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-sign-gate/internal/config"
	"github.com/MKhiriev/go-sign-gate/internal/logger"
	"github.com/MKhiriev/go-sign-gate/internal/service"
)

// SessionManager keeps the signed-in username on the client between
// requests.
type SessionManager interface {
	Establish(w http.ResponseWriter, username string) error
	Username(r *http.Request) (string, bool)
	Terminate(w http.ResponseWriter)
}

type Handler struct {
	services *service.Services
	sessions SessionManager

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions SessionManager, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		sessions:       sessions,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

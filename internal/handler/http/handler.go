package http

import (
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// allowedOrigin is sent as Access-Control-Allow-Origin.
	allowedOrigin string

	// requestTimeout bounds every request when non-zero.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigin:  cfg.AllowedOrigin,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

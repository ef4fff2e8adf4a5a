package http

import (
	"github.com/MKhiriev/go-cipher-drop/internal/config"
	"github.com/MKhiriev/go-cipher-drop/internal/logger"
	"github.com/MKhiriev/go-cipher-drop/internal/service"
	"golang.org/x/time/rate"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	// limiter is nil when rate limiting is off.
	limiter *rate.Limiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		limiter:  newLimiter(cfg.RateLimit, cfg.RateBurst),
		logger:   logger,
	}
}

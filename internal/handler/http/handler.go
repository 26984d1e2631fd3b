package http

import (
	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/internal/utils"
)

type traceIDGenerator interface {
	Generate() string
}

type Handler struct {
	services *service.Services

	stages         []Stage
	allowedOrigins []string
	limiters       *ClientLimiters
	traceIDs       traceIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		stages:         []Stage{withErrorGuard, withAccessLog},
		allowedOrigins: cfg.AllowedOrigins,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}

	if cfg.RateLimitRPS > 0 {
		h.limiters = NewClientLimiters(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	logger.Info().
		Strs("cors_origins", cfg.AllowedOrigins).
		Float64("rate_limit_rps", cfg.RateLimitRPS).
		Msg("http handler created")
	return h
}

// Limiters returns the per-client rate limiters, or nil when rate limiting
// is disabled.
func (h *Handler) Limiters() *ClientLimiters {
	return h.limiters
}

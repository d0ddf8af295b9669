package http

import (
	"github.com/MKhiriev/go-blog-platform/internal/config"
	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/metrics"
	"github.com/MKhiriev/go-blog-platform/internal/service"
	"github.com/MKhiriev/go-blog-platform/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator *validators.Validator
	collector *metrics.Collector
	version   string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, collector *metrics.Collector, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.New(),
		collector: collector,
		version:   cfg.Version,
		logger:    logger,
	}
}

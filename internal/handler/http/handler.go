package http

import (
	"github.com/foodbridge/food-bridge/internal/logger"
	"github.com/foodbridge/food-bridge/internal/service"
)

// Handler carries the application services and the static-asset directory
// into the endpoint handlers. It holds no per-request state.
type Handler struct {
	services  *service.Services
	publicDir string

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler set over the given services.
// publicDir is the directory of static frontend assets served at "/".
func NewHandler(services *service.Services, publicDir string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		publicDir: publicDir,
		logger:    logger,
	}
}

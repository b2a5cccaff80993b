package handler

import (
	"github.com/foodbridge/food-bridge/internal/config"
	"github.com/foodbridge/food-bridge/internal/handler/http"
	"github.com/foodbridge/food-bridge/internal/logger"
	"github.com/foodbridge/food-bridge/internal/service"
)

// Handlers is the transport-layer container. Only HTTP is exposed; the
// struct exists so the composition root and server wiring stay stable if a
// second transport is ever added.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers constructs the transport handlers over the given services.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.PublicDir, logger),
	}
}

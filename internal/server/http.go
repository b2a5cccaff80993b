package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/foodbridge/food-bridge/internal/config"
	"github.com/foodbridge/food-bridge/internal/logger"
)

type httpServer struct {
	server *http.Server
	cfg    config.Server
	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: router,
		},
		cfg:    cfg,
		logger: logger,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Msg("HTTP server ListenAndServe")
	}
}

// Shutdown drains in-flight requests, bounded by the configured drain
// timeout. Requests themselves carry no deadline.
func (h *httpServer) Shutdown() {
	ctx := context.Background()
	if h.cfg.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.ShutdownTimeout)
		defer cancel()
	}

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}

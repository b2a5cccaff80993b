package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Every route is registered exactly once; static
// frontend assets are served for any path no API route claims.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post("/pay", h.pay)
	router.Post("/signup", h.signup)
	router.Post("/login", h.login)
	router.Post("/recipients", h.registerRecipient)
	router.Get("/recipients", h.listRecipients)
	router.Get("/foods", h.listFoods)
	router.Get("/ai-match", h.aiMatch)

	router.Handle("/*", http.FileServer(http.Dir(h.publicDir)))

	return router
}

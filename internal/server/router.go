package server

import (
	"net/http"

	"github.com/docfaq/docfaq/internal/api"
	"github.com/docfaq/docfaq/internal/api/handlers"
	"github.com/docfaq/docfaq/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

type RouterConfig struct {
	// APIKey guards the admin endpoints. Empty disables auth.
	APIKey           string
	AskHandler       *handlers.AskHandler
	KnowledgeHandler *handlers.KnowledgeHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 1 * 1024 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))
	r.Use(cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/ask", cfg.AskHandler.Ask)

	// Admin surface: inspecting and rebuilding the knowledge base.
	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(cfg.APIKey))

		r.Get("/knowledge", cfg.KnowledgeHandler.List)
		r.Post("/reload", cfg.KnowledgeHandler.Reload)
		r.Get("/status", cfg.KnowledgeHandler.Status)
	})

	return r
}

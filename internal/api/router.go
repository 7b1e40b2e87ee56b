package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "local-llm/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(sessionHandler *SessionHandler, catalogHandler *CatalogHandler) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID) // Injects a unique request ID into the context.
	r.Use(middleware.RealIP)    // Sets the remote address to the real IP from proxy headers.
	r.Use(middleware.Logger)    // Logs the start and end of each request with useful info.
	r.Use(middleware.Recoverer) // Recovers from panics and returns a 500 error.

	// Serves the auto-generated Swagger UI for API documentation.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// Prometheus scrape endpoint.
	r.Handle("/metrics", promhttp.Handler())

	// A simple health check endpoint for liveness and readiness probes.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// --- API Version 1 Routes ---
	r.Route("/api/v1", func(r chi.Router) {
		// Catalog queries probe the inference service once with no retry, so
		// they finish quickly; a generation call blocks for as long as the
		// service takes, which is why the turn-submission routes sit outside
		// the short timeout group.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(15 * time.Second))

			r.Get("/models", catalogHandler.HandleListModels)

			r.Post("/sessions", sessionHandler.HandleCreateSession)
			r.Get("/sessions/{sessionID}", sessionHandler.HandleGetSession)
			r.Delete("/sessions/{sessionID}", sessionHandler.HandleDestroySession)
			r.Get("/sessions/{sessionID}/stats", sessionHandler.HandleGetStats)
			r.Put("/sessions/{sessionID}/model", sessionHandler.HandleSelectModel)
			r.Post("/sessions/{sessionID}/context", sessionHandler.HandleUploadContext)
			r.Delete("/sessions/{sessionID}/messages", sessionHandler.HandleClearSession)
		})

		r.Group(func(r chi.Router) {
			r.Post("/sessions/{sessionID}/messages", sessionHandler.HandleSubmitTurn)
			r.Post("/sessions/{sessionID}/quick", sessionHandler.HandleQuickPrompt)
		})
	})

	return r
}

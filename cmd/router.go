package cmd

import (
	"net/http"

	"mini-dating-backend/internal/config"
	"mini-dating-backend/internal/handlers"
	"mini-dating-backend/internal/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// newRouter builds the HTTP handler. limiter may be nil.
func newRouter(
	cfg *config.Config,
	limiter *middleware.RateLimiter,
	health *handlers.HealthHandler,
	mountAPI func(chi.Router),
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	// RealIP rewrites RemoteAddr from client-controlled headers
	if cfg.Server.TrustProxy {
		r.Use(chiMiddleware.RealIP)
	}
	r.Use(middleware.RequestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	r.Get("/healthz", health.Live)
	r.Get("/readyz", health.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}
		mountAPI(r)
	})

	return r
}

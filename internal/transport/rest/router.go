package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/discussion-backend/internal/transport/middleware"
)

// RouterDeps holds everything the HTTP surface is built from.
type RouterDeps struct {
	Logger      *slog.Logger
	Discussions *DiscussionHandler
	Health      *HealthHandler
	// Middleware runs around every discussion request, outermost first.
	Middleware []middleware.Middleware
}

// NewRouter assembles the HTTP routes. Probes and /metrics bypass the
// request middleware so that health checks are never rate limited or
// rejected for a bad token.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID(), middleware.Recovery(deps.Logger), middleware.Metrics())

	r.Get("/live", deps.Health.Live)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/health", deps.Health.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/discussion", func(r chi.Router) {
		r.Use(middleware.Chain(deps.Middleware...))
		deps.Discussions.Routes(r)
	})

	return r
}

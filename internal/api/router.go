package api

import (
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/go-chi/chi/v5"

	"github.com/stayloft/stayloft/internal/api/handler"
	"github.com/stayloft/stayloft/internal/api/middleware"
	"github.com/stayloft/stayloft/internal/auth"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	AuthService *auth.Service
	DBPinger    handler.DBPinger
	Version     string
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	if deps.AuthService != nil {
		viewerHandler := handler.NewViewerHandler(deps.AuthService)
		r.Route("/auth", func(r chi.Router) {
			r.Get("/url", viewerHandler.AuthURL)
			r.Post("/login", viewerHandler.Login)
			r.Post("/logout", viewerHandler.Logout)
		})
	}

	return r
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-token-issuer/internal/config"
	"github.com/go-token-issuer/internal/transport/http/handler"
	appmiddleware "github.com/go-token-issuer/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	adminOnly := func(next http.Handler) http.Handler { return next }
	if deps.Verifier != nil {
		auth := appmiddleware.Auth(deps.Verifier)
		role := appmiddleware.RequireRole(appmiddleware.RoleAdmin)
		adminOnly = func(next http.Handler) http.Handler { return auth(role(next)) }
	}

	healthH := handler.NewHealthHandler(deps.Health)
	tokenH := handler.NewTokenHandler(deps.TokenService)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/tokens", tokenH.Issue)
		r.With(adminOnly).Get("/tokens", tokenH.List)
	})

	return r
}

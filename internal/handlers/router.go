package handlers

import (
	"net/http"

	authmw "github.com/akhileshasapu/passvault/internal/middleware"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

type RouterConfig struct {
	Production     bool
	AllowedOrigins []string

	Verifier authmw.TokenVerifier
	Auth     *AuthHandler
	Vault    *VaultHandler
	Health   *HealthHandler
}

// NewRouter mounts the API under /api/v1.
func NewRouter(cfg RouterConfig) http.Handler {
	app := drift.New()

	if cfg.Production {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/signup", cfg.Auth.Signup)
	auth.Post("/login", cfg.Auth.Login)

	api.Get("/health", cfg.Health.Check)

	protected := api.Group("")
	protected.Use(authmw.Auth(cfg.Verifier))

	protected.Get("/auth/me", cfg.Auth.Me)

	protected.Post("/vault", cfg.Vault.Create)
	protected.Get("/vault", cfg.Vault.List)
	protected.Delete("/vault/:id", cfg.Vault.Delete)

	return app
}

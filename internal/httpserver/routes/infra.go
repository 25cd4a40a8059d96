package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/foyer/internal/httpserver/deps"
	"github.com/MrSnakeDoc/foyer/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/foyer/internal/httpserver/mw"
)

func init() { Register(registerInfra) }

func registerInfra(r chi.Router, d deps.Deps) {
	r.Get("/healthz", handlers.Healthz(d))
	r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger)).Get("/readyz", handlers.Readyz(d))
	r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger)).Get("/infra", handlers.Infra(d))
}

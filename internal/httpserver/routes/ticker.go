package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/foyer/internal/httpserver/deps"
	"github.com/MrSnakeDoc/foyer/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/foyer/internal/httpserver/mw"
)

func init() { Register(registerTicker) }

func registerTicker(r chi.Router, d deps.Deps) {
	r.Get("/api/ticker", handlers.Ticker(d))
	r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		mw.EnforceHost(d.AllowedHosts, d.Logger),
	).Post("/api/ticker/refresh", handlers.RefreshTicker(d))
}

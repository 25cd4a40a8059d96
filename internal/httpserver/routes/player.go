package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/foyer/internal/httpserver/deps"
	"github.com/MrSnakeDoc/foyer/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/foyer/internal/httpserver/mw"
)

func init() { Register(registerPlayer) }

func registerPlayer(r chi.Router, d deps.Deps) {
	guarded := r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		mw.EnforceHost(d.AllowedHosts, d.Logger),
	)

	r.Get("/api/player", handlers.PlayerState(d))
	guarded.Post("/api/player/play", handlers.Play(d))
	guarded.Post("/api/player/pause", handlers.Pause(d))
	guarded.Post("/api/player/next", handlers.Next(d))
	guarded.Post("/api/player/previous", handlers.Previous(d))
}

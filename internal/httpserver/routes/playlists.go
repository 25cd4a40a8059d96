package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/foyer/internal/httpserver/deps"
	"github.com/MrSnakeDoc/foyer/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/foyer/internal/httpserver/mw"
)

func init() { Register(registerPlaylists) }

func registerPlaylists(r chi.Router, d deps.Deps) {
	guarded := r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		mw.EnforceHost(d.AllowedHosts, d.Logger),
		mw.RateLimit(mw.RateLimitConfig{
			Burst:           30,
			RefillPerMinute: 60,
			SweepInterval:   time.Minute,
			IdleTTL:         10 * time.Minute,
			TrustProxy:      d.TrustProxy,
		}),
	)

	r.Get("/api/playlists", handlers.ListPlaylists(d))
	guarded.Post("/api/playlists", handlers.CreatePlaylist(d))
	guarded.Delete("/api/playlists/{name}", handlers.DeletePlaylist(d))
	guarded.Post("/api/playlists/{name}/activate", handlers.ActivatePlaylist(d))
	guarded.Post("/api/playlists/active/items", handlers.AddItem(d))
	guarded.Delete("/api/playlists/active/items/{id}", handlers.RemoveItem(d))
	guarded.Delete("/api/playlists/active/items", handlers.ClearItems(d))
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/foyer/internal/httpserver/deps"
)

type componentStatus struct {
	OK          bool   `json:"ok"`
	Playlists   *int   `json:"playlists,omitempty"`
	Items       *int   `json:"items,omitempty"`
	LastRefresh string `json:"last_refresh,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Error       string `json:"error,omitempty"`
}

type infraResponse struct {
	Components map[string]componentStatus `json:"components"`
}

// Infra reports per-component status: store contents, redis
// connectivity and ticker freshness. The kiosk settings screen shows
// it; nothing here is load-bearing.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playlists, _ := d.Store.Snapshot()
		playlistCount := len(playlists)
		itemCount := 0
		for _, items := range playlists {
			itemCount += len(items)
		}

		tickerStatus := componentStatus{OK: true, Mode: "disabled"}
		if d.FeedRefreshTrigger != nil {
			last := d.Ticker.LastRefresh()
			tickerStatus = componentStatus{
				OK:   !last.IsZero(),
				Mode: "polling",
			}
			if !last.IsZero() {
				tickerStatus.LastRefresh = last.Format("2006-01-02 15:04:05")
			}
		}

		components := map[string]componentStatus{
			"store": {
				OK:        true,
				Playlists: &playlistCount,
				Items:     &itemCount,
			},
			"redis":  checkRedis(d),
			"ticker": tickerStatus,
		}

		writeJSON(w, http.StatusOK, infraResponse{Components: components})
	}
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:   true,
			Mode: "memory-only",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:    false,
			Mode:  "degraded",
			Error: err.Error(),
		}
	}

	return componentStatus{
		OK:   true,
		Mode: "persistent",
	}
}

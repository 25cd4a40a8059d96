package handlers

import (
	"net/http"
	"time"

	"github.com/MrSnakeDoc/foyer/internal/feed"
	"github.com/MrSnakeDoc/foyer/internal/httpserver/deps"
	"github.com/MrSnakeDoc/foyer/internal/logger"
)

type tickerResponse struct {
	Items       []feed.Item `json:"items"`
	LastRefresh string      `json:"last_refresh,omitempty"`
}

// Ticker returns the current feed item list.
func Ticker(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := tickerResponse{Items: d.Ticker.Items()}
		if last := d.Ticker.LastRefresh(); !last.IsZero() {
			resp.LastRefresh = last.Format(time.RFC3339)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// RefreshTicker triggers an immediate feed refresh through the
// scheduler's manual trigger channel.
func RefreshTicker(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.FeedRefreshTrigger == nil {
			writeJSON(w, http.StatusConflict, errorResponse{Error: "feed ticker disabled"})
			return
		}

		select {
		case d.FeedRefreshTrigger <- struct{}{}:
			d.Logger.Info("manual feed refresh triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusAccepted)
		default:
			d.Logger.Warn("feed refresh already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusTooManyRequests)
		}
	}
}

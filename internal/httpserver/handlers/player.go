package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/foyer/internal/httpserver/deps"
)

// PlayerState reports the current rotation snapshot for the kiosk
// renderer to poll.
func PlayerState(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Player.State())
	}
}

// Play starts rotation. No-op on an empty playlist.
func Play(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Player.Play()
		writeJSON(w, http.StatusOK, d.Player.State())
	}
}

// Pause stops rotation on the current item.
func Pause(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Player.Pause()
		writeJSON(w, http.StatusOK, d.Player.State())
	}
}

// Next skips forward one item with wraparound.
func Next(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Player.Next()
		writeJSON(w, http.StatusOK, d.Player.State())
	}
}

// Previous skips back one item with wraparound.
func Previous(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Player.Previous()
		writeJSON(w, http.StatusOK, d.Player.State())
	}
}

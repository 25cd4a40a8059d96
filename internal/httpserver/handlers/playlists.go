package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/foyer/internal/domain"
	"github.com/MrSnakeDoc/foyer/internal/httpserver/deps"
	"github.com/MrSnakeDoc/foyer/internal/logger"
)

type collectionResponse struct {
	Active    string                          `json:"active"`
	Playlists map[string][]domain.ContentItem `json:"playlists"`
}

type createPlaylistRequest struct {
	Name string `json:"name"`
}

type addItemRequest struct {
	Type     string `json:"type"`
	URL      string `json:"url"`
	Title    string `json:"title,omitempty"`
	Duration int64  `json:"duration"`
}

// ListPlaylists returns the whole collection plus the active name.
func ListPlaylists(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playlists, active := d.Store.Snapshot()
		writeJSON(w, http.StatusOK, collectionResponse{
			Active:    active,
			Playlists: playlists,
		})
	}
}

// CreatePlaylist inserts a new empty playlist.
func CreatePlaylist(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPlaylistRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json body"})
			return
		}

		if err := d.Store.CreatePlaylist(r.Context(), req.Name); err != nil {
			writeDomainError(w, d, err)
			return
		}

		d.Logger.Info("playlist created", logger.String("name", req.Name))
		w.WriteHeader(http.StatusCreated)
	}
}

// DeletePlaylist removes a playlist by name. The default playlist is
// protected.
func DeletePlaylist(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if err := d.Store.DeletePlaylist(r.Context(), name); err != nil {
			writeDomainError(w, d, err)
			return
		}

		d.Logger.Info("playlist deleted", logger.String("name", name))
		w.WriteHeader(http.StatusNoContent)
	}
}

// ActivatePlaylist switches the active playlist, which also resets
// rotation.
func ActivatePlaylist(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if err := d.Store.SwitchActive(r.Context(), name); err != nil {
			writeDomainError(w, d, err)
			return
		}

		d.Logger.Info("playlist activated", logger.String("name", name))
		w.WriteHeader(http.StatusNoContent)
	}
}

// AddItem appends a content item to the active playlist.
func AddItem(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json body"})
			return
		}

		item := domain.ContentItem{
			Type:     domain.ContentType(req.Type),
			URL:      req.URL,
			Title:    req.Title,
			Duration: req.Duration,
		}
		stored, err := d.Store.AddItem(r.Context(), item)
		if err != nil {
			writeDomainError(w, d, err)
			return
		}

		d.Logger.Info("item added",
			logger.Int64("id", stored.ID),
			logger.String("type", string(stored.Type)),
			logger.String("playlist", d.Store.Active()))
		writeJSON(w, http.StatusCreated, stored)
	}
}

// RemoveItem deletes an item from the active playlist by ID.
func RemoveItem(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid item id"})
			return
		}

		if err := d.Store.RemoveItem(r.Context(), id); err != nil {
			writeDomainError(w, d, err)
			return
		}

		d.Logger.Info("item removed", logger.Int64("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}

// ClearItems empties the active playlist.
func ClearItems(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.ClearActive(r.Context())
		d.Logger.Info("active playlist cleared",
			logger.String("playlist", d.Store.Active()))
		w.WriteHeader(http.StatusNoContent)
	}
}

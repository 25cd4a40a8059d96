package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/foyer/internal/domain"
	"github.com/MrSnakeDoc/foyer/internal/httpserver/deps"
	"github.com/MrSnakeDoc/foyer/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainError maps the playlist command error taxonomy to HTTP
// statuses. Unknown errors become a 500 but are never fatal.
func writeDomainError(w http.ResponseWriter, d deps.Deps, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateName):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrProtectedName):
		status = http.StatusForbidden
	default:
		d.Logger.Error("unexpected command error", logger.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

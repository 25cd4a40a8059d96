package domain

import "errors"

// Command errors returned by the playlist collection. Callers match
// with errors.Is; none of them is fatal to the process.
var (
	// ErrValidation covers empty URLs, non-positive durations and
	// empty playlist names.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned for unknown playlist names or item IDs.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName is returned when creating a playlist whose
	// name is already taken.
	ErrDuplicateName = errors.New("playlist already exists")

	// ErrProtectedName is returned when deleting the reserved
	// default playlist.
	ErrProtectedName = errors.New("the default playlist cannot be deleted")
)

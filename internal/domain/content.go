package domain

import (
	"fmt"
	"time"
)

// ContentType identifies how the kiosk renders an item.
// The set is closed; anything else is carried as-is and rendered
// by the kiosk as an "unsupported" placeholder, never dropped.
type ContentType string

const (
	TypeImage       ContentType = "image"
	TypeWebsite     ContentType = "website"
	TypeSlide       ContentType = "slide"
	TypeSpreadsheet ContentType = "spreadsheet"
)

// Known reports whether t is one of the supported render types.
func (t ContentType) Known() bool {
	switch t {
	case TypeImage, TypeWebsite, TypeSlide, TypeSpreadsheet:
		return true
	}
	return false
}

// ParseContentType validates a raw type string from the API.
func ParseContentType(s string) (ContentType, error) {
	t := ContentType(s)
	if !t.Known() {
		return "", fmt.Errorf("%w: unknown content type %q", ErrValidation, s)
	}
	return t, nil
}

// ContentItem is a single displayable unit of a playlist.
// Duration is milliseconds, matching the persisted record shape.
// Items are immutable once created; edits go through remove + add.
type ContentItem struct {
	ID       int64       `json:"id"`
	Type     ContentType `json:"type"`
	URL      string      `json:"url"`
	Title    string      `json:"title,omitempty"`
	Duration int64       `json:"duration"`
}

// Validate checks the fields a caller controls. The ID is assigned by
// the store and is not validated here.
func (c ContentItem) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("%w: url must not be empty", ErrValidation)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be > 0 ms, got %d", ErrValidation, c.Duration)
	}
	if !c.Type.Known() {
		return fmt.Errorf("%w: unknown content type %q", ErrValidation, string(c.Type))
	}
	return nil
}

// Interval returns the display duration as a time.Duration.
func (c ContentItem) Interval() time.Duration {
	return time.Duration(c.Duration) * time.Millisecond
}

package domain

import (
	"fmt"
	"sort"
)

// DefaultPlaylist is the reserved playlist that always exists and can
// never be deleted.
const DefaultPlaylist = "default"

// Collection is the in-memory playlist mapping plus the active playlist
// name. It owns item identity (monotonic IDs) but knows nothing about
// persistence or timing; the store layers both on top.
//
// Collection is not safe for concurrent use. The store serializes
// access behind its own mutex.
type Collection struct {
	playlists map[string][]ContentItem
	active    string
	nextID    int64
}

// NewCollection returns a collection holding only an empty default
// playlist, which is also active.
func NewCollection() *Collection {
	return &Collection{
		playlists: map[string][]ContentItem{DefaultPlaylist: {}},
		active:    DefaultPlaylist,
		nextID:    1,
	}
}

// Create inserts a new empty playlist under name.
func (c *Collection) Create(name string) error {
	if name == "" {
		return fmt.Errorf("%w: playlist name must not be empty", ErrValidation)
	}
	if _, ok := c.playlists[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	c.playlists[name] = []ContentItem{}
	return nil
}

// Switch makes name the active playlist.
func (c *Collection) Switch(name string) error {
	if _, ok := c.playlists[name]; !ok {
		return fmt.Errorf("%w: playlist %q", ErrNotFound, name)
	}
	c.active = name
	return nil
}

// Delete removes a playlist. Deleting the active playlist falls back
// to the default one; the returned flag reports that fallback so the
// caller can reset rotation state.
func (c *Collection) Delete(name string) (switched bool, err error) {
	if name == DefaultPlaylist {
		return false, ErrProtectedName
	}
	if _, ok := c.playlists[name]; !ok {
		return false, fmt.Errorf("%w: playlist %q", ErrNotFound, name)
	}
	delete(c.playlists, name)
	if c.active == name {
		c.active = DefaultPlaylist
		return true, nil
	}
	return false, nil
}

// AddItem validates item, assigns it a fresh ID and appends it to the
// active playlist. The stored item is returned.
func (c *Collection) AddItem(item ContentItem) (ContentItem, error) {
	if err := item.Validate(); err != nil {
		return ContentItem{}, err
	}
	item.ID = c.nextID
	c.nextID++
	c.playlists[c.active] = append(c.playlists[c.active], item)
	return item, nil
}

// RemoveItem deletes the item with the given ID from the active
// playlist. Order of the remaining items is preserved.
func (c *Collection) RemoveItem(id int64) error {
	items := c.playlists[c.active]
	for i, it := range items {
		if it.ID == id {
			c.playlists[c.active] = append(items[:i:i], items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: item %d in playlist %q", ErrNotFound, id, c.active)
}

// ClearActive empties the active playlist.
func (c *Collection) ClearActive() {
	c.playlists[c.active] = []ContentItem{}
}

// Active returns the name of the active playlist.
func (c *Collection) Active() string {
	return c.active
}

// ActiveItems returns a copy of the active playlist's items.
func (c *Collection) ActiveItems() []ContentItem {
	items := c.playlists[c.active]
	out := make([]ContentItem, len(items))
	copy(out, items)
	return out
}

// Items returns a copy of the named playlist's items.
func (c *Collection) Items(name string) ([]ContentItem, bool) {
	items, ok := c.playlists[name]
	if !ok {
		return nil, false
	}
	out := make([]ContentItem, len(items))
	copy(out, items)
	return out, true
}

// Names returns every playlist name in sorted order.
func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.playlists))
	for name := range c.playlists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot exports the full mapping (deep copy) and the active name
// for serialization.
func (c *Collection) Snapshot() (map[string][]ContentItem, string) {
	out := make(map[string][]ContentItem, len(c.playlists))
	for name, items := range c.playlists {
		cp := make([]ContentItem, len(items))
		copy(cp, items)
		out[name] = cp
	}
	return out, c.active
}

// Restore replaces the collection with persisted state, repairing
// invariants instead of failing: the default playlist is recreated if
// missing, a dangling active name falls back to default, and the ID
// counter resumes above the highest ID seen.
func (c *Collection) Restore(playlists map[string][]ContentItem, active string) {
	if playlists == nil {
		playlists = map[string][]ContentItem{}
	}
	if _, ok := playlists[DefaultPlaylist]; !ok {
		playlists[DefaultPlaylist] = []ContentItem{}
	}
	if _, ok := playlists[active]; !ok {
		active = DefaultPlaylist
	}
	var maxID int64
	for _, items := range playlists {
		for _, it := range items {
			if it.ID > maxID {
				maxID = it.ID
			}
		}
	}
	c.playlists = playlists
	c.active = active
	c.nextID = maxID + 1
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/foyer/internal/domain"
	"github.com/MrSnakeDoc/foyer/internal/logger"
)

// RotationListener is notified after every mutation that changes the
// active item list, so the player can cancel and possibly re-arm its
// pending advance. Callbacks run outside the store lock; calling back
// into the store is safe.
type RotationListener interface {
	// PlaylistSwapped fires when the active list was replaced
	// wholesale (switch, clear, delete of the active playlist).
	// Rotation resets to index 0, stopped.
	PlaylistSwapped()
	// PlaylistEdited fires when items were added to or removed from
	// the active playlist in place. Rotation keeps playing against
	// the new list when possible.
	PlaylistEdited()
}

// Store owns the playlist collection and persists it to Redis after
// every mutation. A nil client runs the store memory-only; tests and
// dev mode rely on that.
type Store struct {
	mu       sync.Mutex
	client   *redis.Client
	logger   logger.Logger
	col      *domain.Collection
	listener RotationListener
}

// NewStore creates a store holding an empty default collection.
// Call Load before serving commands.
func NewStore(client *redis.Client, log logger.Logger) *Store {
	return &Store{
		client: client,
		logger: log,
		col:    domain.NewCollection(),
	}
}

// SetListener registers the rotation listener. Must be called before
// the store receives commands.
func (s *Store) SetListener(l RotationListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = l
}

// Load reads the persisted collection. A missing record falls through
// to the legacy single-playlist key and migrates it; corrupt data is
// logged and replaced by an empty default collection. Load never fails
// on bad state, only on nothing at all being readable from Redis.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		s.logger.Info("no redis client, running memory-only")
		return nil
	}

	data, err := s.client.Get(ctx, KeyPlaylists).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return s.loadLegacyLocked(ctx)
		}
		return fmt.Errorf("failed to read playlists: %w", err)
	}

	playlists, decErr := decodePlaylists(data)
	if decErr != nil {
		s.logger.Warn("persisted playlists corrupt, resetting to empty default",
			logger.Error(decErr))
		s.col = domain.NewCollection()
		s.persistLocked(ctx)
		return nil
	}

	active, err := s.client.Get(ctx, KeyCurrentPlaylist).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to read active playlist name: %w", err)
	}

	s.col.Restore(playlists, active)
	s.logger.Info("playlists loaded",
		logger.Int("count", len(playlists)),
		logger.String("active", s.col.Active()))
	return nil
}

// loadLegacyLocked migrates the old single-playlist record, if any,
// into the default playlist of a fresh collection and deletes the
// legacy key. Idempotent: once migrated the key is gone and a later
// Load takes the normal path.
func (s *Store) loadLegacyLocked(ctx context.Context) error {
	data, err := s.client.Get(ctx, KeyLegacyPlaylist).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Nothing persisted at all: first run.
			s.persistLocked(ctx)
			return nil
		}
		return fmt.Errorf("failed to read legacy playlist: %w", err)
	}

	items, decErr := decodeLegacy(data)
	if decErr != nil {
		s.logger.Warn("legacy playlist corrupt, starting empty",
			logger.Error(decErr))
		items = nil
	}

	s.col.Restore(map[string][]domain.ContentItem{domain.DefaultPlaylist: items}, domain.DefaultPlaylist)
	s.persistLocked(ctx)

	if err := s.client.Del(ctx, KeyLegacyPlaylist).Err(); err != nil {
		s.logger.Warn("failed to delete legacy playlist key", logger.Error(err))
	}

	s.logger.Info("migrated legacy playlist into default",
		logger.Int("items", len(items)))
	return nil
}

// CreatePlaylist inserts a new empty playlist. The active list is
// untouched, so no rotation notification fires.
func (s *Store) CreatePlaylist(ctx context.Context, name string) error {
	s.mu.Lock()
	err := s.col.Create(name)
	if err == nil {
		s.persistLocked(ctx)
	}
	s.mu.Unlock()
	return err
}

// SwitchActive changes the active playlist and resets rotation.
func (s *Store) SwitchActive(ctx context.Context, name string) error {
	s.mu.Lock()
	err := s.col.Switch(name)
	if err == nil {
		s.persistLocked(ctx)
	}
	l := s.listener
	s.mu.Unlock()

	if err == nil && l != nil {
		l.PlaylistSwapped()
	}
	return err
}

// DeletePlaylist removes a playlist. If it was active, the default
// playlist takes over and rotation resets.
func (s *Store) DeletePlaylist(ctx context.Context, name string) error {
	s.mu.Lock()
	switched, err := s.col.Delete(name)
	if err == nil {
		s.persistLocked(ctx)
	}
	l := s.listener
	s.mu.Unlock()

	if switched && l != nil {
		l.PlaylistSwapped()
	}
	return err
}

// AddItem validates and appends an item to the active playlist,
// assigning it a fresh ID.
func (s *Store) AddItem(ctx context.Context, item domain.ContentItem) (domain.ContentItem, error) {
	s.mu.Lock()
	stored, err := s.col.AddItem(item)
	if err == nil {
		s.persistLocked(ctx)
	}
	l := s.listener
	s.mu.Unlock()

	if err == nil && l != nil {
		l.PlaylistEdited()
	}
	return stored, err
}

// RemoveItem deletes an item from the active playlist by ID.
func (s *Store) RemoveItem(ctx context.Context, id int64) error {
	s.mu.Lock()
	err := s.col.RemoveItem(id)
	if err == nil {
		s.persistLocked(ctx)
	}
	l := s.listener
	s.mu.Unlock()

	if err == nil && l != nil {
		l.PlaylistEdited()
	}
	return err
}

// ClearActive empties the active playlist and resets rotation.
func (s *Store) ClearActive(ctx context.Context) {
	s.mu.Lock()
	s.col.ClearActive()
	s.persistLocked(ctx)
	l := s.listener
	s.mu.Unlock()

	if l != nil {
		l.PlaylistSwapped()
	}
}

// Active returns the active playlist name.
func (s *Store) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.col.Active()
}

// ActiveItems returns a copy of the active playlist's items.
func (s *Store) ActiveItems() []domain.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.col.ActiveItems()
}

// Items returns a copy of the named playlist's items.
func (s *Store) Items(name string) ([]domain.ContentItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.col.Items(name)
}

// Names returns all playlist names, sorted.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.col.Names()
}

// Snapshot exports the whole collection for the API and the importer.
func (s *Store) Snapshot() (map[string][]domain.ContentItem, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.col.Snapshot()
}

// Empty reports whether every playlist is empty. The seed importer
// uses it to decide whether first-run provisioning applies.
func (s *Store) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	playlists, _ := s.col.Snapshot()
	for _, items := range playlists {
		if len(items) > 0 {
			return false
		}
	}
	return true
}

// persistLocked writes the full collection to Redis in one pipeline.
// Persistence is best effort: the in-memory collection is the source
// of truth and a Redis outage must not fail playlist commands.
func (s *Store) persistLocked(ctx context.Context) {
	if s.client == nil {
		return
	}

	playlists, active := s.col.Snapshot()
	data, err := json.Marshal(playlists)
	if err != nil {
		s.logger.Error("failed to marshal playlists", logger.Error(err))
		return
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, KeyPlaylists, data, 0)
	pipe.Set(ctx, KeyCurrentPlaylist, active, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("failed to persist playlists to redis", logger.Error(err))
	}
}

// decodePlaylists parses the persisted multi-playlist record.
func decodePlaylists(data []byte) (map[string][]domain.ContentItem, error) {
	var playlists map[string][]domain.ContentItem
	if err := json.Unmarshal(data, &playlists); err != nil {
		return nil, fmt.Errorf("failed to unmarshal playlists: %w", err)
	}
	return playlists, nil
}

// decodeLegacy parses the legacy single-playlist record.
func decodeLegacy(data []byte) ([]domain.ContentItem, error) {
	var items []domain.ContentItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal legacy playlist: %w", err)
	}
	return items, nil
}

package seed

import (
	"context"
	"fmt"
	"sort"

	"github.com/MrSnakeDoc/foyer/internal/domain"
	"github.com/MrSnakeDoc/foyer/internal/logger"
	redisstore "github.com/MrSnakeDoc/foyer/internal/store/redis"
)

// Importer provisions the store from a seed file. It only ever runs
// against an empty store (first boot of a kiosk); an already
// provisioned store is left alone.
type Importer struct {
	loader *Loader
	mapper *Mapper
	store  *redisstore.Store
	logger logger.Logger
}

// NewImporter creates an importer for the given seed file.
func NewImporter(seedFile string, store *redisstore.Store, log logger.Logger) *Importer {
	return &Importer{
		loader: NewLoader(seedFile),
		mapper: NewMapper(),
		store:  store,
		logger: log,
	}
}

// Run imports the seed file when the store holds no items yet.
// Must be called at startup, before the rotation listener is attached.
func (imp *Importer) Run(ctx context.Context) error {
	if !imp.store.Empty() {
		imp.logger.Debug("store already provisioned, seed import skipped")
		return nil
	}

	f, err := imp.loader.Load()
	if err != nil {
		return err
	}

	// Deterministic import order.
	names := make([]string, 0, len(f.Playlists))
	for name := range f.Playlists {
		names = append(names, name)
	}
	sort.Strings(names)

	total, skipped := 0, 0
	for _, name := range names {
		if name != domain.DefaultPlaylist {
			if err := imp.store.CreatePlaylist(ctx, name); err != nil {
				return fmt.Errorf("failed to create seeded playlist %q: %w", name, err)
			}
		}
		if err := imp.store.SwitchActive(ctx, name); err != nil {
			return err
		}

		items, bad := imp.mapper.MapItems(f.Playlists[name])
		skipped += bad
		for _, item := range items {
			if _, err := imp.store.AddItem(ctx, item); err != nil {
				return fmt.Errorf("failed to seed item into %q: %w", name, err)
			}
			total++
		}
	}

	// Leave the requested playlist active, falling back to default.
	active := f.Active
	if active == "" {
		active = domain.DefaultPlaylist
	}
	if err := imp.store.SwitchActive(ctx, active); err != nil {
		imp.logger.Warn("seed active playlist not found, using default",
			logger.String("name", active))
		if err := imp.store.SwitchActive(ctx, domain.DefaultPlaylist); err != nil {
			return err
		}
	}

	if skipped > 0 {
		imp.logger.Warn("seed import skipped invalid items",
			logger.Int("skipped", skipped))
	}
	imp.logger.Info("seed import complete",
		logger.Int("playlists", len(names)),
		logger.Int("items", total))
	return nil
}

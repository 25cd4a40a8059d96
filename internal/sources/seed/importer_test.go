package seed

import (
	"context"
	"testing"

	"github.com/MrSnakeDoc/foyer/internal/domain"
	"github.com/MrSnakeDoc/foyer/internal/logger"
	redisstore "github.com/MrSnakeDoc/foyer/internal/store/redis"
)

func TestMapper_MapItems(t *testing.T) {
	m := NewMapper()

	items, skipped := m.MapItems([]ItemProps{
		{Type: "image", URL: "http://x/1.png", Duration: 5000},
		{Type: "image", URL: "", Duration: 5000},           // no url
		{Type: "video", URL: "http://x/2", Duration: 5000}, // unknown type
		{Type: "website", URL: "http://y", Duration: 0},    // bad duration
	})

	if len(items) != 1 {
		t.Fatalf("expected 1 valid item, got %d", len(items))
	}
	if skipped != 3 {
		t.Errorf("expected 3 skipped, got %d", skipped)
	}
	if items[0].Type != domain.TypeImage {
		t.Errorf("unexpected type: %s", items[0].Type)
	}
}

func TestImporter_Run(t *testing.T) {
	path := writeSeedFile(t, `
active: lobby
playlists:
  lobby:
    - type: image
      url: http://cdn/welcome.png
      duration: 5000
    - type: website
      url: http://menu.local
      duration: 10000
  default:
    - type: slide
      url: http://docs/deck
      duration: 8000
`)

	log := logger.New("error", false)
	store := redisstore.NewStore(nil, log)

	if err := NewImporter(path, store, log).Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if store.Active() != "lobby" {
		t.Errorf("expected active=lobby, got %s", store.Active())
	}

	lobby, ok := store.Items("lobby")
	if !ok || len(lobby) != 2 {
		t.Fatalf("expected 2 lobby items, got %d (ok=%v)", len(lobby), ok)
	}
	if lobby[0].URL != "http://cdn/welcome.png" {
		t.Errorf("seed order not preserved: %+v", lobby[0])
	}

	def, _ := store.Items(domain.DefaultPlaylist)
	if len(def) != 1 {
		t.Errorf("expected 1 default item, got %d", len(def))
	}
}

func TestImporter_SkipsProvisionedStore(t *testing.T) {
	path := writeSeedFile(t, `
playlists:
  lobby:
    - type: image
      url: http://cdn/welcome.png
      duration: 5000
`)

	log := logger.New("error", false)
	store := redisstore.NewStore(nil, log)
	if _, err := store.AddItem(context.Background(), domain.ContentItem{
		Type: domain.TypeImage, URL: "http://existing", Duration: 1000,
	}); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if err := NewImporter(path, store, log).Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if names := store.Names(); len(names) != 1 {
		t.Errorf("import ran against a provisioned store: playlists=%v", names)
	}
}

func TestImporter_UnknownActiveFallsBack(t *testing.T) {
	path := writeSeedFile(t, `
active: missing
playlists:
  lobby:
    - type: image
      url: http://cdn/welcome.png
      duration: 5000
`)

	log := logger.New("error", false)
	store := redisstore.NewStore(nil, log)

	if err := NewImporter(path, store, log).Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if store.Active() != domain.DefaultPlaylist {
		t.Errorf("expected fallback to default, got %s", store.Active())
	}
}

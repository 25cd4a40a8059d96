package integration

import (
	"context"
	"testing"
	"time"

	"github.com/MrSnakeDoc/foyer/internal/domain"
	"github.com/MrSnakeDoc/foyer/internal/logger"
	"github.com/MrSnakeDoc/foyer/internal/player"
	redisstore "github.com/MrSnakeDoc/foyer/internal/store/redis"
)

// newRig wires a memory-only store and a player the way app.New does,
// with the player registered as the store's rotation listener.
func newRig(t *testing.T) (*redisstore.Store, *player.Player) {
	t.Helper()
	log := logger.New("error", false)

	store := redisstore.NewStore(nil, log)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("store load: %v", err)
	}
	p := player.New(store, log)
	store.SetListener(p)
	t.Cleanup(p.Stop)
	return store, p
}

func addItem(t *testing.T, store *redisstore.Store, url string, duration time.Duration) {
	t.Helper()
	_, err := store.AddItem(context.Background(), domain.ContentItem{
		Type:     domain.TypeImage,
		URL:      url,
		Duration: duration.Milliseconds(),
	})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
}

// TestRotationScenario walks the full waiting-room flow: provision a
// playlist, activate it, fill it, start rotation and watch the index
// advance and wrap on its own.
func TestRotationScenario(t *testing.T) {
	store, p := newRig(t)
	ctx := context.Background()

	if err := store.CreatePlaylist(ctx, "events"); err != nil {
		t.Fatalf("create playlist: %v", err)
	}
	if err := store.SwitchActive(ctx, "events"); err != nil {
		t.Fatalf("switch active: %v", err)
	}

	addItem(t, store, "https://example.com/poster.png", 60*time.Millisecond)
	addItem(t, store, "https://example.com/schedule", 100*time.Millisecond)

	p.Play()
	if st := p.State(); !st.Playing || st.Index != 0 {
		t.Fatalf("after play: state = %+v, want playing at index 0", st)
	}

	// First interval elapses, rotation moves to the second item.
	time.Sleep(90 * time.Millisecond)
	if st := p.State(); st.Index != 1 {
		t.Fatalf("after first interval: index = %d, want 1", st.Index)
	}

	// Second interval elapses, rotation wraps back to the first item.
	time.Sleep(100 * time.Millisecond)
	if st := p.State(); st.Index != 0 || !st.Playing {
		t.Fatalf("after second interval: state = %+v, want playing at index 0", st)
	}
}

func TestRotationResetsOnSwitch(t *testing.T) {
	store, p := newRig(t)
	ctx := context.Background()

	addItem(t, store, "https://example.com/a.png", time.Minute)
	addItem(t, store, "https://example.com/b.png", time.Minute)
	p.Play()
	p.Next()

	if err := store.CreatePlaylist(ctx, "events"); err != nil {
		t.Fatalf("create playlist: %v", err)
	}
	if err := store.SwitchActive(ctx, "events"); err != nil {
		t.Fatalf("switch active: %v", err)
	}

	if st := p.State(); st.Index != 0 || st.Playing {
		t.Errorf("after switch: state = %+v, want stopped at index 0", st)
	}
}

func TestRotationSurvivesEdits(t *testing.T) {
	store, p := newRig(t)
	ctx := context.Background()

	addItem(t, store, "https://example.com/a.png", 60*time.Millisecond)
	addItem(t, store, "https://example.com/b.png", 60*time.Millisecond)
	p.Play()
	p.Next()

	// Removing an item behind the cursor keeps playback going; the
	// cursor clamps back into range.
	items := store.ActiveItems()
	if err := store.RemoveItem(ctx, items[1].ID); err != nil {
		t.Fatalf("remove item: %v", err)
	}
	st := p.State()
	if !st.Playing {
		t.Error("playback should continue across an in-place edit")
	}
	if st.Index != 0 {
		t.Errorf("cursor should clamp to 0, got %d", st.Index)
	}

	// Clearing the active playlist stops rotation entirely.
	store.ClearActive(ctx)
	if st := p.State(); st.Playing || st.Index != 0 {
		t.Errorf("after clear: state = %+v, want stopped at index 0", st)
	}
}

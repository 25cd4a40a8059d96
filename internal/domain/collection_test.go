package domain

import (
	"errors"
	"testing"
)

func item(url string, dur int64) ContentItem {
	return ContentItem{Type: TypeImage, URL: url, Duration: dur}
}

func TestCollection_Create(t *testing.T) {
	c := NewCollection()

	if err := c.Create("events"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := c.Create("events"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
	if err := c.Create(""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty name, got %v", err)
	}
	if err := c.Create(DefaultPlaylist); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName for default, got %v", err)
	}
}

func TestCollection_SwitchRoundTripPreservesItems(t *testing.T) {
	c := NewCollection()
	if err := c.Create("events"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := c.Switch("events"); err != nil {
		t.Fatalf("Switch failed: %v", err)
	}

	urls := []string{"http://x/1.png", "http://x/2.png", "http://x/3.png"}
	for _, u := range urls {
		if _, err := c.AddItem(item(u, 3000)); err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}
	}

	// Switch away and back.
	if err := c.Switch(DefaultPlaylist); err != nil {
		t.Fatalf("Switch failed: %v", err)
	}
	if err := c.Switch("events"); err != nil {
		t.Fatalf("Switch failed: %v", err)
	}

	got := c.ActiveItems()
	if len(got) != len(urls) {
		t.Fatalf("expected %d items, got %d", len(urls), len(got))
	}
	for i, u := range urls {
		if got[i].URL != u {
			t.Errorf("item %d: expected url %s, got %s", i, u, got[i].URL)
		}
		if got[i].Duration != 3000 {
			t.Errorf("item %d: duration changed: %d", i, got[i].Duration)
		}
	}
}

func TestCollection_SwitchUnknown(t *testing.T) {
	c := NewCollection()
	if err := c.Switch("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if c.Active() != DefaultPlaylist {
		t.Errorf("active changed after failed switch: %s", c.Active())
	}
}

func TestCollection_DeleteDefaultProtected(t *testing.T) {
	c := NewCollection()
	if _, err := c.AddItem(item("http://x/1.png", 1000)); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if _, err := c.Delete(DefaultPlaylist); !errors.Is(err, ErrProtectedName) {
		t.Fatalf("expected ErrProtectedName, got %v", err)
	}

	// Collection unchanged.
	if got := c.ActiveItems(); len(got) != 1 {
		t.Errorf("collection changed after protected delete: %d items", len(got))
	}
}

func TestCollection_DeleteActiveFallsBackToDefault(t *testing.T) {
	c := NewCollection()
	if err := c.Create("events"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := c.Switch("events"); err != nil {
		t.Fatalf("Switch failed: %v", err)
	}

	switched, err := c.Delete("events")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !switched {
		t.Error("expected switched=true when deleting the active playlist")
	}
	if c.Active() != DefaultPlaylist {
		t.Errorf("expected active=default, got %s", c.Active())
	}

	// Deleting a non-active playlist does not switch.
	if err := c.Create("other"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	switched, err = c.Delete("other")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if switched {
		t.Error("expected switched=false when deleting a non-active playlist")
	}
}

func TestCollection_AddItemAssignsMonotonicIDs(t *testing.T) {
	c := NewCollection()

	first, err := c.AddItem(item("http://x/1.png", 1000))
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	second, err := c.AddItem(item("http://x/2.png", 1000))
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if first.ID == 0 || second.ID <= first.ID {
		t.Errorf("expected monotonic ids, got %d then %d", first.ID, second.ID)
	}
}

func TestCollection_AddItemValidation(t *testing.T) {
	c := NewCollection()

	tests := []struct {
		name string
		item ContentItem
	}{
		{"empty url", ContentItem{Type: TypeImage, URL: "", Duration: 1000}},
		{"zero duration", ContentItem{Type: TypeImage, URL: "http://x", Duration: 0}},
		{"negative duration", ContentItem{Type: TypeImage, URL: "http://x", Duration: -5}},
		{"unknown type", ContentItem{Type: "video", URL: "http://x", Duration: 1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.AddItem(tt.item); !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}

	// Rejected adds leave the playlist untouched.
	if got := c.ActiveItems(); len(got) != 0 {
		t.Errorf("expected empty playlist after rejected adds, got %d items", len(got))
	}
}

func TestCollection_RemoveItemPreservesOrder(t *testing.T) {
	c := NewCollection()

	var ids []int64
	for _, u := range []string{"http://a", "http://b", "http://c"} {
		stored, err := c.AddItem(item(u, 1000))
		if err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}
		ids = append(ids, stored.ID)
	}

	if err := c.RemoveItem(ids[1]); err != nil {
		t.Fatalf("RemoveItem failed: %v", err)
	}

	got := c.ActiveItems()
	if len(got) != 2 || got[0].URL != "http://a" || got[1].URL != "http://c" {
		t.Errorf("unexpected items after remove: %+v", got)
	}

	if err := c.RemoveItem(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCollection_RestoreRepairsInvariants(t *testing.T) {
	c := NewCollection()

	// Missing default, dangling active name, scattered IDs.
	c.Restore(map[string][]ContentItem{
		"events": {
			{ID: 7, Type: TypeImage, URL: "http://x", Duration: 1000},
			{ID: 3, Type: TypeWebsite, URL: "http://y", Duration: 2000},
		},
	}, "gone")

	if c.Active() != DefaultPlaylist {
		t.Errorf("expected fallback to default, got %s", c.Active())
	}
	if _, ok := c.Items(DefaultPlaylist); !ok {
		t.Error("default playlist was not recreated")
	}

	// Next ID resumes above the highest restored ID.
	if err := c.Switch("events"); err != nil {
		t.Fatalf("Switch failed: %v", err)
	}
	stored, err := c.AddItem(item("http://z", 1000))
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if stored.ID <= 7 {
		t.Errorf("expected id > 7 after restore, got %d", stored.ID)
	}
}

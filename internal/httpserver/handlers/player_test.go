package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MrSnakeDoc/foyer/internal/player"
)

func seedItems(t *testing.T, h http.Handler) {
	t.Helper()
	for _, url := range []string{
		"https://example.com/a.png",
		"https://example.com/b.png",
		"https://example.com/c.png",
	} {
		rec := do(t, h, http.MethodPost, "/api/playlists/active/items",
			`{"type":"image","url":"`+url+`","duration":60000}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("seeding item failed: %d %s", rec.Code, rec.Body.String())
		}
	}
}

func playerState(t *testing.T, rec *httptest.ResponseRecorder) player.State {
	t.Helper()
	var st player.State
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatalf("failed to decode player state: %v", err)
	}
	return st
}

func TestPlayerState_Initial(t *testing.T) {
	d := testDeps(t)
	h := testRouter(d)

	rec := do(t, h, http.MethodGet, "/api/player", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	st := playerState(t, rec)
	if st.Index != 0 || st.Playing || st.Total != 0 {
		t.Errorf("initial state = %+v, want index 0, stopped, empty", st)
	}
}

func TestPlayerEndpoints(t *testing.T) {
	d := testDeps(t)
	h := testRouter(d)
	seedItems(t, h)

	st := playerState(t, do(t, h, http.MethodPost, "/api/player/play", ""))
	if !st.Playing {
		t.Error("expected playing after play")
	}

	st = playerState(t, do(t, h, http.MethodPost, "/api/player/next", ""))
	if st.Index != 1 {
		t.Errorf("index after next = %d, want 1", st.Index)
	}

	st = playerState(t, do(t, h, http.MethodPost, "/api/player/previous", ""))
	if st.Index != 0 {
		t.Errorf("index after previous = %d, want 0", st.Index)
	}

	st = playerState(t, do(t, h, http.MethodPost, "/api/player/previous", ""))
	if st.Index != 2 {
		t.Errorf("previous from 0 should wrap to 2, got %d", st.Index)
	}

	st = playerState(t, do(t, h, http.MethodPost, "/api/player/pause", ""))
	if st.Playing {
		t.Error("expected stopped after pause")
	}
}

func TestPlayOnEmptyPlaylist(t *testing.T) {
	d := testDeps(t)
	h := testRouter(d)

	st := playerState(t, do(t, h, http.MethodPost, "/api/player/play", ""))
	if st.Playing {
		t.Error("play on an empty playlist should stay stopped")
	}
}

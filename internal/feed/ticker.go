package feed

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MrSnakeDoc/foyer/internal/logger"
)

// Ticker holds the current feed item list and serializes concurrent
// refreshes with a last-call-wins policy: every Refresh call takes a
// sequence number up front, and its result is only committed if no
// later call has committed first. A slow early fetch can therefore
// never clobber a newer result.
type Ticker struct {
	ingestor *Ingestor
	logger   logger.Logger
	url      string

	issued atomic.Uint64

	mu          sync.Mutex
	committed   uint64
	items       []Item
	lastRefresh time.Time
}

// NewTicker creates a ticker for url. An empty url disables the feed:
// Refresh becomes a no-op and Items stays empty.
func NewTicker(ing *Ingestor, url string, log logger.Logger) *Ticker {
	return &Ticker{
		ingestor: ing,
		logger:   log,
		url:      url,
	}
}

// Refresh performs one fetch cycle and replaces the item list
// wholesale, unless a later call already did.
func (t *Ticker) Refresh(ctx context.Context) {
	if t.url == "" {
		t.logger.Debug("no feed url configured, refresh skipped")
		return
	}

	seq := t.issued.Add(1)
	items := t.ingestor.Fetch(ctx, t.url)

	t.mu.Lock()
	defer t.mu.Unlock()
	if seq <= t.committed {
		t.logger.Debug("stale feed result superseded by a later fetch")
		return
	}
	t.committed = seq
	t.items = items
	t.lastRefresh = time.Now()
}

// Items returns a copy of the current ticker list.
func (t *Ticker) Items() []Item {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Item, len(t.items))
	copy(out, t.items)
	return out
}

// LastRefresh returns when the list was last replaced, zero if never.
func (t *Ticker) LastRefresh() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastRefresh
}

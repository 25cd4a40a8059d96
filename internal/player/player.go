// Package player drives playback rotation through the active playlist.
// It is a two-state machine (stopped / playing) owning at most one
// pending deferred advance at a time; every transition funnels through
// cancel-then-maybe-rearm, so a stale timer can never double-fire.
package player

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/foyer/internal/domain"
	"github.com/MrSnakeDoc/foyer/internal/logger"
)

// Source exposes the item list the player rotates through. The store
// implements it.
type Source interface {
	ActiveItems() []domain.ContentItem
}

// State is a point-in-time snapshot of the rotation for the API.
type State struct {
	Index   int                 `json:"index"`
	Playing bool                `json:"playing"`
	Total   int                 `json:"total"`
	Current *domain.ContentItem `json:"current,omitempty"`
}

// Player is the rotation scheduler. All methods are safe for
// concurrent use.
type Player struct {
	mu      sync.Mutex
	source  Source
	logger  logger.Logger
	index   int
	playing bool
	timer   *time.Timer
	// gen invalidates in-flight timer callbacks: a fired callback
	// whose generation no longer matches is stale and does nothing.
	gen uint64
}

// New creates a stopped player at index 0.
func New(source Source, log logger.Logger) *Player {
	return &Player{
		source: source,
		logger: log,
	}
}

// Play starts rotation. No-op when already playing or when the active
// playlist is empty; an empty list is never an error.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.playing {
		return
	}
	items := p.source.ActiveItems()
	if len(items) == 0 {
		p.logger.Debug("play ignored, active playlist is empty")
		return
	}
	if p.index >= len(items) {
		p.index = 0
	}
	p.playing = true
	p.armLocked(items)
	p.logger.Info("playback started",
		logger.Int("index", p.index),
		logger.Int("items", len(items)))
}

// Pause stops rotation and cancels the pending advance. The index is
// kept so Play resumes on the same item.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelLocked()
	if p.playing {
		p.playing = false
		p.logger.Info("playback paused", logger.Int("index", p.index))
	}
}

// Next advances one item with wraparound, in any state.
func (p *Player) Next() {
	p.skip(1)
}

// Previous steps one item back with wraparound, in any state.
func (p *Player) Previous() {
	p.skip(-1)
}

func (p *Player) skip(step int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	items := p.source.ActiveItems()
	if len(items) == 0 {
		return
	}
	p.cancelLocked()
	p.index = (p.index + step + len(items)) % len(items)
	if p.playing {
		p.armLocked(items)
	}
	p.logger.Debug("skipped", logger.Int("index", p.index))
}

// State reports the current rotation snapshot.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	items := p.source.ActiveItems()
	st := State{
		Index:   p.index,
		Playing: p.playing,
		Total:   len(items),
	}
	if p.index < len(items) {
		current := items[p.index]
		st.Current = &current
	}
	return st
}

// Stop cancels any pending advance. Used on shutdown.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelLocked()
	p.playing = false
}

// PlaylistSwapped implements store notification: the active list was
// replaced wholesale, rotation restarts from zero, stopped.
func (p *Player) PlaylistSwapped() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelLocked()
	p.index = 0
	p.playing = false
	p.logger.Debug("rotation reset, active playlist changed")
}

// PlaylistEdited implements store notification: items were added or
// removed in place. The pending advance is always invalidated; if
// still playing and the list is non-empty a new one is armed against
// the (possibly clamped) current item.
func (p *Player) PlaylistEdited() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelLocked()
	items := p.source.ActiveItems()
	if len(items) == 0 {
		p.index = 0
		p.playing = false
		return
	}
	if p.index >= len(items) {
		p.index = 0
	}
	if p.playing {
		p.armLocked(items)
	}
}

// cancelLocked invalidates the pending advance, if any. Bumping the
// generation also disarms a callback that already fired and is
// waiting on the mutex.
func (p *Player) cancelLocked() {
	p.gen++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

// armLocked schedules the deferred advance for the current item.
// Caller must hold the mutex, be in playing state and pass a
// non-empty list.
func (p *Player) armLocked(items []domain.ContentItem) {
	gen := p.gen
	p.timer = time.AfterFunc(items[p.index].Interval(), func() {
		p.advance(gen)
	})
}

// advance is the timer callback. A generation mismatch means the
// deferral was superseded by a pause, skip or playlist mutation while
// the callback was in flight; it is discarded without effect.
func (p *Player) advance(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen || !p.playing {
		return
	}
	p.timer = nil

	items := p.source.ActiveItems()
	if len(items) == 0 {
		p.index = 0
		p.playing = false
		return
	}
	p.index = (p.index + 1) % len(items)
	p.gen++
	p.armLocked(items)
	p.logger.Debug("advanced", logger.Int("index", p.index))
}

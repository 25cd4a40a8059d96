package scheduler

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/foyer/internal/feed"
	"github.com/MrSnakeDoc/foyer/internal/logger"
)

// FeedRefresher keeps the ticker fresh: one refresh at startup, then
// one per interval, plus on-demand refreshes through the manual
// trigger channel (fed by the HTTP refresh endpoint).
type FeedRefresher struct {
	ticker        *feed.Ticker
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewFeedRefresher creates a refresher for the given ticker.
func NewFeedRefresher(
	ticker *feed.Ticker,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *FeedRefresher {
	return &FeedRefresher{
		ticker:        ticker,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start runs the first refresh immediately, then the periodic loop.
func (fr *FeedRefresher) Start(ctx context.Context) {
	fr.ticker.Refresh(ctx)

	tick := time.NewTicker(fr.interval)
	go func() {
		defer tick.Stop()
		for {
			select {
			case <-tick.C:
				fr.ticker.Refresh(ctx)
			case <-fr.manualTrigger:
				fr.logger.Info("manual feed refresh triggered")
				fr.ticker.Refresh(ctx)
			case <-fr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the refresh loop.
func (fr *FeedRefresher) Stop() {
	close(fr.stopCh)
}

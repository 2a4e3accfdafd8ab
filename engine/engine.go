// Package engine wires the store, the feed cache and the scheduler together
// and keeps the explore feed fresh. A background job rebuilds the public feed
// every refresh interval; the API serves from the cache.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/deffiedeff2/event-app/cache"
	"github.com/deffiedeff2/event-app/config"
	"github.com/deffiedeff2/event-app/scheduler"
	"github.com/deffiedeff2/event-app/screens"
	"github.com/deffiedeff2/event-app/store"
)

const exploreJobID = "explore_refresh"

// Engine owns the background machinery of the app.
type Engine struct {
	store     *store.Store
	explore   *screens.Explore
	feedCache *cache.Feed
	scheduler *scheduler.Scheduler
	single    singleflight.Group
}

// New creates the engine and registers its jobs.
func New(cfg *config.Config, s *store.Store) (*Engine, error) {
	feedCache, err := cache.NewFeed(cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed cache: %w", err)
	}
	sched, err := scheduler.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	e := &Engine{
		store:     s,
		explore:   screens.NewExplore(s),
		feedCache: feedCache,
		scheduler: sched,
	}

	interval := time.Duration(cfg.ExploreRefreshSeconds) * time.Second
	if err := sched.AddIntervalJob(exploreJobID, "Explore Feed Refresh", interval, e.refreshFeed, true); err != nil {
		return nil, fmt.Errorf("failed to add explore refresh job: %w", err)
	}
	return e, nil
}

// Run starts the scheduler and blocks until the context is canceled.
func (e *Engine) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	e.scheduler.Start()
	<-ctx.Done()
	return nil
}

// Close stops the engine and cleans up resources.
func (e *Engine) Close() error {
	return e.scheduler.Stop()
}

// PublicFeed returns the cached explore feed, rebuilding it on a miss. The
// feed may be up to one refresh interval stale.
func (e *Engine) PublicFeed(ctx context.Context) ([]screens.FeedItem, error) {
	if items, ok := e.feedCache.Get(ctx); ok {
		return items, nil
	}
	// Collapse concurrent misses into a single rebuild.
	v, err, _ := e.single.Do(exploreJobID, func() (any, error) {
		items, err := e.explore.PublicFeed(ctx)
		if err != nil {
			return nil, err
		}
		if err := e.feedCache.Set(ctx, items); err != nil {
			log.Warn("failed to cache explore feed", "error", err)
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]screens.FeedItem), nil
}

// RefreshFeedNow forces a feed rebuild outside the schedule.
func (e *Engine) RefreshFeedNow() error {
	return e.scheduler.RunJobNow(exploreJobID)
}

// Jobs exposes the scheduler's job information for the status endpoint.
func (e *Engine) Jobs() map[string]*scheduler.JobInfo {
	return e.scheduler.GetJobs()
}

func (e *Engine) refreshFeed(ctx context.Context) error {
	items, err := e.explore.PublicFeed(ctx)
	if err != nil {
		return err
	}
	if err := e.feedCache.Set(ctx, items); err != nil {
		return err
	}
	log.Debug("explore feed refreshed", "events", len(items))
	return nil
}

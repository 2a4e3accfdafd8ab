// Package cache holds the cached explore feed so the API can serve it
// without rebuilding the annotated event list on every request.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	go_store "github.com/eko/gocache/store/go_cache/v4"
	redis_store "github.com/eko/gocache/store/redis/v4"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"github.com/deffiedeff2/event-app/config"
	"github.com/deffiedeff2/event-app/screens"
)

const feedKey = "eventapp_explore_feed"

// Feed caches the annotated public event feed. Entries never expire by TTL;
// the refresh job overwrites them on its own schedule.
type Feed struct {
	cache *cache.Cache[[]byte]
}

// NewFeed creates the feed cache with the backend the config selects.
func NewFeed(cfg *config.CacheConfig) (*Feed, error) {
	if cfg == nil || cfg.Type == "" || cfg.Type == "memory" {
		return &Feed{cache: newMemoryCache()}, nil
	}
	if cfg.Type == "redis" {
		return &Feed{cache: newRedisCache(cfg)}, nil
	}
	return nil, fmt.Errorf("unknown cache type %q", cfg.Type)
}

func newMemoryCache() *cache.Cache[[]byte] {
	// never expire items by ttl, the refresh job handles staleness
	gocacheClient := gocache.New(gocache.NoExpiration, gocache.NoExpiration)
	gocacheStore := go_store.NewGoCache(gocacheClient)
	return cache.New[[]byte](gocacheStore)
}

func newRedisCache(cfg *config.CacheConfig) *cache.Cache[[]byte] {
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
	})
	redisStore := redis_store.NewRedis(redisClient)
	return cache.New[[]byte](redisStore)
}

// Get returns the cached feed, or false when nothing has been cached yet.
func (f *Feed) Get(ctx context.Context) ([]screens.FeedItem, bool) {
	data, err := f.cache.Get(ctx, feedKey)
	if err != nil {
		return nil, false
	}
	var items []screens.FeedItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	return items, true
}

// Set stores the feed.
func (f *Feed) Set(ctx context.Context, items []screens.FeedItem, options ...store.Option) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return f.cache.Set(ctx, feedKey, data, options...)
}

// Clear drops the cached feed.
func (f *Feed) Clear(ctx context.Context) error {
	return f.cache.Delete(ctx, feedKey)
}

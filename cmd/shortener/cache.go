package main

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cachedRepository keeps recently used id -> url pairs in memory.
type cachedRepository struct {
	Repository
	cache   *lru.Cache[int64, string]
	metrics *Metrics
}

func newCachedRepository(repo Repository, size int, metrics *Metrics) (*cachedRepository, error) {
	cache, err := lru.New[int64, string](size)
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}
	return &cachedRepository{Repository: repo, cache: cache, metrics: metrics}, nil
}

func (c *cachedRepository) SaveURL(ctx context.Context, url string) (int64, error) {
	id, err := c.Repository.SaveURL(ctx, url)
	if err != nil {
		return 0, err
	}
	c.cache.Add(id, url)
	return id, nil
}

func (c *cachedRepository) GetURL(ctx context.Context, id int64) (string, error) {
	if url, ok := c.cache.Get(id); ok {
		c.metrics.cacheHits.Inc()
		return url, nil
	}
	c.metrics.cacheMisses.Inc()
	url, err := c.Repository.GetURL(ctx, id)
	if err != nil {
		return "", err
	}
	c.cache.Add(id, url)
	return url, nil
}

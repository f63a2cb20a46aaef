// Package cache is the in-process job-search cache used when Redis is not
// configured.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

const (
	defaultSize = 50
	defaultTTL  = time.Hour
)

// MemoryJobCache keeps at most size queries, evicting the least recently
// used, and drops entries older than ttl.
type MemoryJobCache struct {
	lru *expirable.LRU[domain.JobQuery, []domain.JobListing]
}

func NewMemoryJobCache(size int, ttl time.Duration) *MemoryJobCache {
	if size <= 0 {
		size = defaultSize
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &MemoryJobCache{lru: expirable.NewLRU[domain.JobQuery, []domain.JobListing](size, nil, ttl)}
}

func (c *MemoryJobCache) Get(_ context.Context, q domain.JobQuery) ([]domain.JobListing, bool, error) {
	jobs, ok := c.lru.Get(normalize(q))
	return jobs, ok, nil
}

// Set stores jobs under q. Entries share the cache-wide TTL given to
// NewMemoryJobCache; the per-call ttl is ignored.
func (c *MemoryJobCache) Set(_ context.Context, q domain.JobQuery, jobs []domain.JobListing, _ time.Duration) error {
	c.lru.Add(normalize(q), jobs)
	return nil
}

// Len reports how many entries are held.
func (c *MemoryJobCache) Len() int { return c.lru.Len() }

func normalize(q domain.JobQuery) domain.JobQuery {
	q.Keyword = strings.ToLower(q.Keyword)
	q.Location = strings.ToLower(q.Location)
	return q
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

// JobCache stores job-search results in Redis; every key expires after the
// TTL given to Set.
// Key format: jobs:<keyword>:<location>:<page>, lowercased, with keyword and
// location query-escaped so neither can contain the separator.
type JobCache struct {
	client *redis.Client
}

func NewJobCache(client *redis.Client) *JobCache {
	return &JobCache{client: client}
}

func (c *JobCache) Get(ctx context.Context, q domain.JobQuery) ([]domain.JobListing, bool, error) {
	raw, err := c.client.Get(ctx, c.key(q)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("job cache get: %w", err)
	}

	var jobs []domain.JobListing
	if err := json.Unmarshal(raw, &jobs); err != nil {
		return nil, false, fmt.Errorf("job cache decode: %w", err)
	}
	return jobs, true, nil
}

func (c *JobCache) Set(ctx context.Context, q domain.JobQuery, jobs []domain.JobListing, ttl time.Duration) error {
	raw, err := json.Marshal(jobs)
	if err != nil {
		return fmt.Errorf("job cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(q), raw, ttl).Err()
}

func (c *JobCache) key(q domain.JobQuery) string {
	return fmt.Sprintf("jobs:%s:%s:%d",
		url.QueryEscape(strings.ToLower(q.Keyword)), url.QueryEscape(strings.ToLower(q.Location)), q.Page)
}

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

func newTestCache(t *testing.T) (*JobCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewJobCache(client), mr
}

func TestJobCache_MissThenHit(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	q := domain.JobQuery{Keyword: "Golang", Location: "India", Page: 1}

	_, ok, err := cache.Get(ctx, q)
	require.NoError(t, err)
	assert.False(t, ok)

	jobs := []domain.JobListing{{JobID: "1", Title: "Go Dev", Company: "Acme"}}
	require.NoError(t, cache.Set(ctx, q, jobs, time.Hour))

	got, ok, err := cache.Get(ctx, domain.JobQuery{Keyword: "golang", Location: "india", Page: 1})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, jobs, got)
}

func TestJobCache_EntriesExpire(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	q := domain.JobQuery{Keyword: "go", Location: "India", Page: 2}

	require.NoError(t, cache.Set(ctx, q, []domain.JobListing{{JobID: "x"}}, time.Minute))
	assert.Equal(t, time.Minute, mr.TTL("jobs:go:india:2"))

	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx, q)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJobCache_SeparatorInFieldsDoesNotCollide(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	a := domain.JobQuery{Keyword: "a:b", Location: "c", Page: 1}
	b := domain.JobQuery{Keyword: "a", Location: "b:c", Page: 1}

	require.NoError(t, cache.Set(ctx, a, []domain.JobListing{{JobID: "a"}}, time.Minute))

	_, ok, err := cache.Get(ctx, b)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, b, []domain.JobListing{{JobID: "b"}}, time.Minute))
	got, ok, err := cache.Get(ctx, a)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a", got[0].JobID)
	assert.Len(t, mr.Keys(), 2)
}

func TestJobCache_ConnectionError(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	_, _, err := NewJobCache(client).Get(context.Background(), domain.JobQuery{Keyword: "go"})
	require.Error(t, err)
}

func TestPinger(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, NewPinger(client).Ping(context.Background()))
}

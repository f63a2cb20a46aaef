package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/careerforge/resume-assistant/internal/core/domain"
	"github.com/careerforge/resume-assistant/internal/core/ports"
	"github.com/careerforge/resume-assistant/internal/pkg/metrics"
)

const (
	DefaultJobLocation  = "India"
	defaultJobCacheTTL  = time.Hour
	sharedSearchTimeout = 30 * time.Second
)

type jobService struct {
	searcher ports.JobSearcher
	cache    ports.JobCache
	ttl      time.Duration
	log      zerolog.Logger

	group    singleflight.Group
	mu       sync.Mutex
	inFlight map[int64]struct{}
}

// NewJobService returns a JobService implementation. Results are cached per
// query for ttl; identical concurrent upstream searches share one call.
func NewJobService(searcher ports.JobSearcher, cache ports.JobCache, ttl time.Duration, log zerolog.Logger) ports.JobService {
	if ttl <= 0 {
		ttl = defaultJobCacheTTL
	}
	return &jobService{
		searcher: searcher,
		cache:    cache,
		ttl:      ttl,
		log:      log,
		inFlight: make(map[int64]struct{}),
	}
}

// Search returns one page of listings. A user may only have one search
// running at a time; a second one fails with domain.ErrSearchInProgress.
func (s *jobService) Search(ctx context.Context, userID int64, q domain.JobQuery) ([]domain.JobListing, error) {
	q.Keyword = strings.TrimSpace(q.Keyword)
	q.Location = strings.TrimSpace(q.Location)
	if q.Keyword == "" {
		return nil, domain.ErrValidation
	}
	if q.Location == "" {
		q.Location = DefaultJobLocation
	}
	if q.Page < 1 {
		q.Page = 1
	}

	if !s.acquire(userID) {
		return nil, domain.ErrSearchInProgress
	}
	defer s.release(userID)

	jobs, ok, err := s.cache.Get(ctx, q)
	if err != nil {
		s.log.Warn().Err(err).Str("keyword", q.Keyword).Msg("job cache read failed, querying upstream")
	} else if ok {
		metrics.JobCacheLookupsTotal.WithLabelValues("hit").Inc()
		return jobs, nil
	}
	metrics.JobCacheLookupsTotal.WithLabelValues("miss").Inc()

	key := fmt.Sprintf("%q|%q|%d", strings.ToLower(q.Keyword), strings.ToLower(q.Location), q.Page)
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		// Other callers may be waiting on this flight, so it must outlive
		// the caller that started it.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedSearchTimeout)
		defer cancel()

		found, err := s.searcher.Search(ctx, q)
		if err != nil {
			return nil, err
		}
		if found == nil {
			found = []domain.JobListing{}
		}
		if err := s.cache.Set(ctx, q, found, s.ttl); err != nil {
			s.log.Warn().Err(err).Str("keyword", q.Keyword).Msg("job cache write failed")
		}
		return found, nil
	})
	if err != nil {
		metrics.JobSearchErrorsTotal.Inc()
		if errors.Is(err, domain.ErrUpstreamService) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamService, err)
	}
	return v.([]domain.JobListing), nil
}

func (s *jobService) acquire(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[userID]; busy {
		return false
	}
	s.inFlight[userID] = struct{}{}
	return true
}

func (s *jobService) release(userID int64) {
	s.mu.Lock()
	delete(s.inFlight, userID)
	s.mu.Unlock()
}

package ports

import (
	"context"
	"time"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

// JobSearcher is the third-party job-listing collaborator.
type JobSearcher interface {
	Search(ctx context.Context, q domain.JobQuery) ([]domain.JobListing, error)
}

// JobCache memoises search results per query. Implementations must bound
// their growth, by TTL, capacity, or both.
type JobCache interface {
	// Get reports ok=false on a miss.
	Get(ctx context.Context, q domain.JobQuery) (jobs []domain.JobListing, ok bool, err error)
	Set(ctx context.Context, q domain.JobQuery, jobs []domain.JobListing, ttl time.Duration) error
}

type JobService interface {
	Search(ctx context.Context, userID int64, q domain.JobQuery) ([]domain.JobListing, error)
}

package ports

import (
	"context"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

// HistoryRepository persists generation results. Records are never updated
// or deleted.
type HistoryRepository interface {
	// Append stores rec with a server-assigned timestamp and returns its id.
	Append(ctx context.Context, rec *domain.HistoryRecord) (int64, error)
	// ListSummaries returns at most limit summaries owned by userID, newest first.
	ListSummaries(ctx context.Context, userID int64, limit int) ([]domain.HistorySummary, error)
	// FindByIDForUser matches on id and owner together; a record owned by
	// someone else is reported as domain.ErrHistoryNotFound.
	FindByIDForUser(ctx context.Context, id, userID int64) (*domain.HistoryRecord, error)
}

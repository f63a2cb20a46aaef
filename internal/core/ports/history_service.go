package ports

import (
	"context"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

type HistoryService interface {
	List(ctx context.Context, userID int64) ([]domain.HistorySummary, error)
	Get(ctx context.Context, userID, id int64) (*domain.HistoryRecord, error)
}

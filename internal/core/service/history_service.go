package service

import (
	"context"

	"github.com/careerforge/resume-assistant/internal/core/domain"
	"github.com/careerforge/resume-assistant/internal/core/ports"
)

// HistoryLimit caps how many summaries a listing returns.
const HistoryLimit = 30

type historyService struct {
	repo ports.HistoryRepository
}

func NewHistoryService(repo ports.HistoryRepository) ports.HistoryService {
	return &historyService{repo: repo}
}

func (s *historyService) List(ctx context.Context, userID int64) ([]domain.HistorySummary, error) {
	items, err := s.repo.ListSummaries(ctx, userID, HistoryLimit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.HistorySummary{}
	}
	return items, nil
}

func (s *historyService) Get(ctx context.Context, userID, id int64) (*domain.HistoryRecord, error) {
	if id <= 0 {
		return nil, domain.ErrHistoryNotFound
	}
	return s.repo.FindByIDForUser(ctx, id, userID)
}

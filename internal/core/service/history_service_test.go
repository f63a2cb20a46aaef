package service

import (
	"context"
	"testing"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

func TestHistoryService_ListNewestFirstAndCapped(t *testing.T) {
	repo := &stubHistoryRepo{}
	for i := 0; i < HistoryLimit+5; i++ {
		_, _ = repo.Append(context.Background(), &domain.HistoryRecord{UserID: 1, Model: "llama3"})
	}
	_, _ = repo.Append(context.Background(), &domain.HistoryRecord{UserID: 2})

	svc := NewHistoryService(repo)
	items, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != HistoryLimit {
		t.Fatalf("expected %d items, got %d", HistoryLimit, len(items))
	}
	if items[0].ID != HistoryLimit+5 {
		t.Fatalf("expected newest first, got id %d", items[0].ID)
	}
}

func TestHistoryService_ListEmpty(t *testing.T) {
	items, err := NewHistoryService(&stubHistoryRepo{}).List(context.Background(), 9)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}

func TestHistoryService_GetOwnership(t *testing.T) {
	repo := &stubHistoryRepo{}
	id, _ := repo.Append(context.Background(), &domain.HistoryRecord{UserID: 1, JobTitle: "SRE"})
	svc := NewHistoryService(repo)

	rec, err := svc.Get(context.Background(), 1, id)
	if err != nil || rec.JobTitle != "SRE" {
		t.Fatalf("unexpected result: %+v, %v", rec, err)
	}
	if _, err := svc.Get(context.Background(), 2, id); err != domain.ErrHistoryNotFound {
		t.Fatalf("expected ErrHistoryNotFound for other user, got %v", err)
	}
	if _, err := svc.Get(context.Background(), 1, 999); err != domain.ErrHistoryNotFound {
		t.Fatalf("expected ErrHistoryNotFound for missing id, got %v", err)
	}
}

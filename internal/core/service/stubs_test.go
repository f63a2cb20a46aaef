package service

import (
	"context"
	"sync"
	"time"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

type stubUserRepo struct {
	mu     sync.Mutex
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) CheckAvailable(_ context.Context, username, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.available(username, email)
}

func (r *stubUserRepo) available(username, email string) error {
	if _, exists := r.users[username]; exists {
		return domain.ErrDuplicateUsername
	}
	for _, u := range r.users {
		if u.Email == email {
			return domain.ErrDuplicateEmail
		}
	}
	return nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.available(user.Username, user.Email); err != nil {
		return nil, err
	}
	r.nextID++
	stored := cloneUser(user)
	stored.ID = r.nextID
	r.users[stored.Username] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

type stubHistoryRepo struct {
	mu      sync.Mutex
	records []domain.HistoryRecord
	err     error
}

func (r *stubHistoryRepo) Append(_ context.Context, rec *domain.HistoryRecord) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	stored := *rec
	stored.ID = int64(len(r.records) + 1)
	stored.CreatedAt = time.Now().UTC()
	r.records = append(r.records, stored)
	return stored.ID, nil
}

func (r *stubHistoryRepo) ListSummaries(_ context.Context, userID int64, limit int) ([]domain.HistorySummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.HistorySummary
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		if r.records[i].UserID == userID {
			out = append(out, r.records[i].Summary())
		}
	}
	return out, nil
}

func (r *stubHistoryRepo) FindByIDForUser(_ context.Context, id, userID int64) (*domain.HistoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ID == id && rec.UserID == userID {
			clone := rec
			return &clone, nil
		}
	}
	return nil, domain.ErrHistoryNotFound
}

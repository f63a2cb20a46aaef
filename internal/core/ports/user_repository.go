package ports

import (
	"context"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

// UserRepository is the credential store. Users are insert-only.
type UserRepository interface {
	// Create inserts the user and returns it with ID set. It fails with
	// domain.ErrDuplicateUsername or domain.ErrDuplicateEmail when either
	// value is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// CheckAvailable returns the error Create would report for a taken
	// username or email, without writing.
	CheckAvailable(ctx context.Context, username, email string) error
	// FindByUsername returns domain.ErrUserNotFound when no row matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

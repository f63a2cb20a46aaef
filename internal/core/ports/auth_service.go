package ports

import (
	"context"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	// Authenticate verifies a bearer token and confirms its user still exists.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(username string, userID int64) (string, error)
}

// TokenVerifier validates session tokens without any server-side state.
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/careerforge/resume-assistant/internal/core/domain"
	"github.com/careerforge/resume-assistant/internal/core/ports"
	"github.com/careerforge/resume-assistant/internal/pkg/metrics"
)

// TokenCodec issues and verifies session tokens. *TokenService is the
// production implementation.
type TokenCodec interface {
	ports.TokenIssuer
	ports.TokenVerifier
}

var _ TokenCodec = (*TokenService)(nil)

// AuthService implements registration, login and bearer-token authentication.
type AuthService struct {
	repo       ports.UserRepository
	tokens     TokenCodec
	bcryptCost int
}

func NewAuthService(repo ports.UserRepository, tokens TokenCodec, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{repo: repo, tokens: tokens, bcryptCost: bcryptCost}
}

// Register rejects a taken username, then a taken email, and only then
// looks at the password, so a duplicate is reported even when the password
// would also be refused.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrValidation
	}
	if err := s.repo.CheckAvailable(ctx, username, email); err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registrationOutcome(err)).Inc()
		return nil, err
	}
	if len(password) > domain.MaxPasswordBytes {
		metrics.RegistrationsTotal.WithLabelValues("password_too_long").Inc()
		return nil, domain.ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, domain.ErrPasswordTooLong
		}
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registrationOutcome(err)).Inc()
		return nil, err
	}
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return created, nil
}

// Login returns a session token. Unknown users and wrong passwords are
// indistinguishable to the caller.
// The username is trimmed the same way Register stores it.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Username, user.ID)
}

// Authenticate verifies the token and reloads its user, so tokens of users
// that no longer resolve are refused.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	identity, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByUsername(ctx, identity.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if user.ID != identity.UserID {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

func registrationOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateUsername):
		return "duplicate_username"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return "duplicate_email"
	default:
		return "error"
	}
}

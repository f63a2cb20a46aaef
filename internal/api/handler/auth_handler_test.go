package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (string, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrInvalidToken
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			if username != "alice" || email != "a@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s %s", username, email, password)
			}
			return &domain.User{ID: 1, Username: username, Email: email}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"username":"alice","email":"a@example.com","password":"secret"}`)
	c, rec := newContext(http.MethodPost, "/register", body, nil)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User registered successfully" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	for _, body := range []string{
		`{"username":"bob"}`,
		`{"username":"bob","email":"not-an-email","password":"x"}`,
		`{"username":"   ","email":"b@x.com","password":"x"}`,
		`not json`,
	} {
		c, _ := newContext(http.MethodPost, "/register", strings.NewReader(body), nil)
		if err := handler.Register(c); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("body %s: expected ErrValidation, got %v", body, err)
		}
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string) (*domain.User, error) {
			return nil, domain.ErrDuplicateUsername
		},
	}
	c, _ := newContext(http.MethodPost, "/register",
		strings.NewReader(`{"username":"bob","email":"b@x.com","password":"x"}`), nil)

	if err := NewAuthHandler(stub).Register(c); err != domain.ErrDuplicateUsername {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (string, error) {
			if username != "carol" || password != "pw" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "jwt-token", nil
		},
	}
	c, rec := newContext(http.MethodPost, "/login", strings.NewReader(`{"username":"carol","password":"pw"}`), nil)

	if err := NewAuthHandler(stub).Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.AccessToken != "jwt-token" || resp.TokenType != "bearer" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	c, _ := newContext(http.MethodPost, "/login", strings.NewReader(`{"username":"x","password":"y"}`), nil)

	if err := NewAuthHandler(stub).Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

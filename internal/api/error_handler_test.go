package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantDetail string
	}{
		{"validation", fmt.Errorf("%w: username is required", domain.ErrValidation), http.StatusUnprocessableEntity, "ValidationError", "validation failed: username is required"},
		{"duplicate username", domain.ErrDuplicateUsername, http.StatusBadRequest, "DuplicateUsername", "Username already exists"},
		{"duplicate email", domain.ErrDuplicateEmail, http.StatusBadRequest, "DuplicateEmail", "Email already exists"},
		{"password too long", domain.ErrPasswordTooLong, http.StatusBadRequest, "PasswordTooLong", "Password too long (max 72 bytes)"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "InvalidCredentials", "Invalid username or password"},
		{"bad token", domain.ErrInvalidToken, http.StatusUnauthorized, "Unauthorized", "Invalid/Expired token"},
		{"unknown user", domain.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized", "User not found"},
		{"history not found", domain.ErrHistoryNotFound, http.StatusNotFound, "NotFound", "Not found"},
		{"search in progress", domain.ErrSearchInProgress, http.StatusTooManyRequests, "SearchInProgress", "A job search is already running"},
		{"backend", &domain.GenerationError{Step: "cover_letter", Detail: "Ollama error: boom"}, http.StatusInternalServerError, "GenerationBackendError", "cover_letter failed: Ollama error: boom"},
		{"upstream", fmt.Errorf("%w: status 502", domain.ErrUpstreamService), http.StatusInternalServerError, "UpstreamServiceError", "job search error: status 502"},
		{"echo", echo.NewHTTPError(http.StatusRequestEntityTooLarge, "too big"), http.StatusRequestEntityTooLarge, "PayloadTooLarge", "too big"},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, "InternalError", "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)

			NewHTTPErrorHandler(zerolog.New(&logs))(tt.err, c)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Code != tt.wantCode || body.Detail != tt.wantDetail {
				t.Fatalf("unexpected body: %+v", body)
			}
			if logged := logs.Len() > 0; logged != (tt.wantCode == "InternalError") {
				t.Fatalf("logged=%v for %s", logged, tt.name)
			}
		})
	}
}

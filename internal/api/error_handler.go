package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status and a stable code.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"detail": "<message>", "code": "<kind>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolveError(err, log, c)
		_ = c.JSON(status, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (router 404/405, body limit, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Detail: fmt.Sprintf("%v", he.Message), Code: httpCode(he.Code)}
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, errorResponse{Detail: err.Error(), Code: "ValidationError"}
	case errors.Is(err, domain.ErrDuplicateUsername):
		return http.StatusBadRequest, errorResponse{Detail: "Username already exists", Code: "DuplicateUsername"}
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusBadRequest, errorResponse{Detail: "Email already exists", Code: "DuplicateEmail"}
	case errors.Is(err, domain.ErrPasswordTooLong):
		return http.StatusBadRequest, errorResponse{Detail: "Password too long (max 72 bytes)", Code: "PasswordTooLong"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Detail: "Invalid username or password", Code: "InvalidCredentials"}
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, errorResponse{Detail: "Invalid/Expired token", Code: "Unauthorized"}
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, errorResponse{Detail: "User not found", Code: "Unauthorized"}
	case errors.Is(err, domain.ErrHistoryNotFound):
		return http.StatusNotFound, errorResponse{Detail: "Not found", Code: "NotFound"}
	case errors.Is(err, domain.ErrUnsupportedDocument):
		return http.StatusBadRequest, errorResponse{Detail: err.Error(), Code: "UnsupportedDocument"}
	case errors.Is(err, domain.ErrSearchInProgress):
		return http.StatusTooManyRequests, errorResponse{Detail: "A job search is already running", Code: "SearchInProgress"}
	case errors.Is(err, domain.ErrGenerationBackend):
		return http.StatusInternalServerError, errorResponse{Detail: err.Error(), Code: "GenerationBackendError"}
	case errors.Is(err, domain.ErrUpstreamService):
		return http.StatusInternalServerError, errorResponse{Detail: err.Error(), Code: "UpstreamServiceError"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Detail: "internal server error", Code: "InternalError"}
}

func httpCode(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusNotFound:
		return "NotFound"
	case http.StatusRequestEntityTooLarge:
		return "PayloadTooLarge"
	case http.StatusUnprocessableEntity:
		return "ValidationError"
	default:
		return http.StatusText(status)
	}
}

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrDuplicateUsername   = errors.New("username already exists")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrPasswordTooLong     = errors.New("password too long (max 72 bytes)")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrUserNotFound        = errors.New("user not found")
	ErrHistoryNotFound     = errors.New("not found")
	ErrGenerationBackend   = errors.New("generation backend error")
	ErrUpstreamService     = errors.New("job search error")
	ErrSearchInProgress    = errors.New("a job search is already running")
	ErrUnsupportedDocument = errors.New("unsupported document type")
)

// GenerationError reports which prompt step failed and what the backend said.
// It matches ErrGenerationBackend under errors.Is.
type GenerationError struct {
	Step   string
	Detail string
	Err    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Step, e.Detail)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func (e *GenerationError) Is(target error) bool { return target == ErrGenerationBackend }

// BackendError is returned by text-generation adapters when the model service
// answers with a non-success status. Detail is the service's own message.
type BackendError struct {
	StatusCode int
	Detail     string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
}

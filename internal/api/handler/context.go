package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

// ContextUserKey is where the Auth middleware stores the authenticated user.
const ContextUserKey = "user"

// currentUser returns the user injected by the Auth middleware. Its absence
// means the route was wired without the middleware.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(ContextUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// bindAndValidate decodes the body into req and runs the registered validator.
// Both failures are reported as validation errors.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return invalid("invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return invalid(err.Error())
	}
	return nil
}

package handler

import (
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/careerforge/resume-assistant/internal/core/domain"
)

var testUser = &domain.User{ID: 7, Username: "alice", Email: "a@x.com"}

func newContext(method, target string, body io.Reader, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(ContextUserKey, user)
	}
	return c, rec
}

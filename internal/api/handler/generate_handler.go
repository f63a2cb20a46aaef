package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerforge/resume-assistant/internal/core/ports"
)

// GenerateHandler runs the four-step generation for the authenticated user.
type GenerateHandler struct {
	service ports.GenerationService
}

func NewGenerateHandler(service ports.GenerationService) *GenerateHandler {
	return &GenerateHandler{service: service}
}

// Generate rewrites the resume and produces the cover letter, skills gap and
// LinkedIn summary, then stores the result in the caller's history.
//
// @Summary      Generate application documents
// @Tags         generate
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      generateRequest  true  "Resume and job description"
// @Success      200   {object}  generateResponse
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /generate [post]
func (h *GenerateHandler) Generate(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req generateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.service.Generate(c.Request().Context(), user.ID, toGenerateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toGenerateResponse(res))
}

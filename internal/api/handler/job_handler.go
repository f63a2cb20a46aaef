package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerforge/resume-assistant/internal/core/ports"
)

type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// Search looks up job postings for a keyword and location.
//
// @Summary      Search jobs
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      jobSearchRequest  true  "Search terms"
// @Success      200   {object}  jobSearchResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /jobs/search [post]
func (h *JobHandler) Search(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req jobSearchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	jobs, err := h.service.Search(c.Request().Context(), user.ID, toJobQuery(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toJobSearchResponse(jobs))
}

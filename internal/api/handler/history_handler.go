package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/careerforge/resume-assistant/internal/core/domain"
	"github.com/careerforge/resume-assistant/internal/core/ports"
)

type HistoryHandler struct {
	service ports.HistoryService
}

func NewHistoryHandler(service ports.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// List returns the caller's most recent generations.
//
// @Summary      List history
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  historyListResponse
// @Failure      401  {object}  map[string]string
// @Router       /history [get]
func (h *HistoryHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toHistoryListResponse(items))
}

// Get returns one full history record owned by the caller.
//
// @Summary      Get history item
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "History id"
// @Success      200  {object}  historyDetailResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /history/{id} [get]
func (h *HistoryHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return domain.ErrHistoryNotFound
	}

	rec, err := h.service.Get(c.Request().Context(), user.ID, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, historyDetailResponse{Item: toHistoryItemResponse(rec)})
}

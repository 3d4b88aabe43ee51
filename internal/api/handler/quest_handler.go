package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pokework/pokework-api/internal/core/ports"
)

// QuestHandler handles HTTP requests for quest operations.
type QuestHandler struct {
	service ports.QuestService
}

func NewQuestHandler(service ports.QuestService) *QuestHandler {
	return &QuestHandler{service: service}
}

type createQuestRequest struct {
	Title      string `json:"title" validate:"required"`
	Difficulty string `json:"difficulty,omitempty"`
	GoalID     string `json:"goal_id,omitempty"`
}

type finishQuestRequest struct {
	Hours float64 `json:"hours"`
}

// Create handles POST /v1/quests.
func (h *QuestHandler) Create(c echo.Context) error {
	var req createQuestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	quest, err := h.service.Create(c.Request().Context(), ports.CreateQuestInput{
		UserID:     userID,
		Title:      req.Title,
		Difficulty: req.Difficulty,
		GoalID:     req.GoalID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, quest)
}

// Finish handles POST /v1/quests/:id/finish.
func (h *QuestHandler) Finish(c echo.Context) error {
	var req finishQuestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	quest, err := h.service.Finish(c.Request().Context(), userID, c.Param("id"), req.Hours)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, quest)
}

// Delete handles DELETE /v1/quests/:id.
func (h *QuestHandler) Delete(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/quests.
func (h *QuestHandler) List(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	quests, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, quests)
}

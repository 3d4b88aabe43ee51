package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pokework/pokework-api/internal/core/ports"
)

// GoalHandler handles HTTP requests for goal CRUD.
type GoalHandler struct {
	service ports.GoalService
}

func NewGoalHandler(service ports.GoalService) *GoalHandler {
	return &GoalHandler{service: service}
}

type goalRequest struct {
	Title        string  `json:"title" validate:"required"`
	TargetValue  float64 `json:"target_value" validate:"gt=0"`
	CurrentValue float64 `json:"current_value,omitempty"`
	Unit         string  `json:"unit" validate:"required"`
	Color        string  `json:"color,omitempty"`
}

func (r goalRequest) toInput() ports.GoalInput {
	return ports.GoalInput{
		Title:        r.Title,
		TargetValue:  r.TargetValue,
		CurrentValue: r.CurrentValue,
		Unit:         r.Unit,
		Color:        r.Color,
	}
}

// Create handles POST /v1/goals.
func (h *GoalHandler) Create(c echo.Context) error {
	var req goalRequest
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

	goal, err := h.service.Create(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, goal)
}

// Update handles PUT /v1/goals/:id.
func (h *GoalHandler) Update(c echo.Context) error {
	var req goalRequest
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

	goal, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, goal)
}

// Delete handles DELETE /v1/goals/:id.
func (h *GoalHandler) Delete(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/goals.
func (h *GoalHandler) List(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	goals, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, goals)
}

package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pokework/pokework-api/internal/core/ports"
)

// WorkHandler handles HTTP requests for work session logging.
type WorkHandler struct {
	service ports.WorkService
}

func NewWorkHandler(service ports.WorkService) *WorkHandler {
	return &WorkHandler{service: service}
}

type logWorkRequest struct {
	// Date is the work day in YYYY-MM-DD form; defaults to today.
	Date string `json:"date,omitempty"`
	// Hours worked, fractional allowed.
	Hours float64 `json:"hours"`
	// StartTime is RFC 3339; defaults to now.
	StartTime string `json:"start_time,omitempty"`
}

// Log handles POST /v1/work. An optional Idempotency-Key header makes
// retried submissions return the originally created session.
func (h *WorkHandler) Log(c echo.Context) error {
	var req logWorkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	input := ports.LogWorkInput{
		UserID:         userID,
		Hours:          req.Hours,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	}

	if req.Date != "" {
		d, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		input.Date = &d
	}
	if req.StartTime != "" {
		st, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "start_time must be RFC 3339")
		}
		input.StartTime = &st
	}

	session, err := h.service.LogWork(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, session)
}

// List handles GET /v1/work — the caller's own sessions only.
func (h *WorkHandler) List(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	sessions, err := h.service.ListSessions(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessions)
}

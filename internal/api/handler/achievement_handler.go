package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pokework/pokework-api/internal/core/ports"
)

// AchievementHandler serves the derived badge catalog.
type AchievementHandler struct {
	service ports.AchievementService
}

func NewAchievementHandler(service ports.AchievementService) *AchievementHandler {
	return &AchievementHandler{service: service}
}

// List handles GET /v1/achievements. Badges are recomputed on every call,
// never stored.
func (h *AchievementHandler) List(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	report, err := h.service.Evaluate(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report)
}

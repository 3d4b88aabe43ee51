package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pokework/pokework-api/internal/core/ports"
)

// AdminHandler exposes administrative user management. The router mounts it
// behind the ADMIN role.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type adminUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Level    int    `json:"level"`
}

// ListUsers handles GET /v1/admin/users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]adminUserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, adminUserResponse{
			ID:       u.ID,
			Username: u.Username,
			Role:     u.Role,
			Level:    u.Level,
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// DeleteUser handles DELETE /v1/admin/users/:id.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}
	// An admin deleting their own account would orphan the session mid-flight.
	if userID == c.Param("id") {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot delete own account")
	}

	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

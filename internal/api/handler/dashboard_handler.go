package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pokework/pokework-api/internal/core/ports"
)

// DashboardHandler serves the trainer profile screen.
type DashboardHandler struct {
	service ports.TrainerService
}

func NewDashboardHandler(service ports.TrainerService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

type dashboardResponse struct {
	Username          string `json:"username"`
	Role              string `json:"role"`
	Status            string `json:"status,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
	PokemonName       string `json:"pokemon_name"`
	Level             int    `json:"level"`
	CurrentXP         int    `json:"current_xp"`
	TotalXP           int    `json:"total_xp"`
	EvolutionStage    string `json:"evolution_stage"`
}

type updateProfileRequest struct {
	Username          string `json:"username,omitempty" validate:"omitempty,min=3,max=32"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty" validate:"omitempty,url"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,max=120"`
}

type renamePokemonRequest struct {
	Name string `json:"name" validate:"required,max=32"`
}

// Get handles GET /v1/dashboard.
func (h *DashboardHandler) Get(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	view, err := h.service.Dashboard(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		Username:          view.Username,
		Role:              view.Role,
		Status:            view.Status,
		ProfilePictureURL: view.ProfilePictureURL,
		PokemonName:       view.PokemonName,
		Level:             view.Level,
		CurrentXP:         view.CurrentXP,
		TotalXP:           view.TotalXP,
		EvolutionStage:    view.EvolutionStage,
	})
}

// UpdateProfile handles PUT /v1/dashboard/profile.
func (h *DashboardHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
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

	if err := h.service.UpdateProfile(c.Request().Context(), userID, ports.UpdateProfileInput{
		Username:          req.Username,
		ProfilePictureURL: req.ProfilePictureURL,
	}); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateStatus handles PUT /v1/dashboard/status.
func (h *DashboardHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
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

	if err := h.service.UpdateStatus(c.Request().Context(), userID, req.Status); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// RenamePokemon handles PUT /v1/dashboard/pokemon.
func (h *DashboardHandler) RenamePokemon(c echo.Context) error {
	var req renamePokemonRequest
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

	if err := h.service.RenamePokemon(c.Request().Context(), userID, req.Name); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pokework/pokework-api/internal/core/domain"
	"github.com/pokework/pokework-api/internal/core/ports"
)

type stubTrainerService struct {
	dashboardFn     func(ctx context.Context, userID string) (*ports.DashboardView, error)
	updateProfileFn func(ctx context.Context, userID string, input ports.UpdateProfileInput) error
	updateStatusFn  func(ctx context.Context, userID, status string) error
	renameFn        func(ctx context.Context, userID, name string) error
}

func (s *stubTrainerService) Dashboard(ctx context.Context, userID string) (*ports.DashboardView, error) {
	return s.dashboardFn(ctx, userID)
}

func (s *stubTrainerService) UpdateProfile(ctx context.Context, userID string, input ports.UpdateProfileInput) error {
	return s.updateProfileFn(ctx, userID, input)
}

func (s *stubTrainerService) UpdateStatus(ctx context.Context, userID, status string) error {
	return s.updateStatusFn(ctx, userID, status)
}

func (s *stubTrainerService) RenamePokemon(ctx context.Context, userID, name string) error {
	return s.renameFn(ctx, userID, name)
}

func TestDashboardHandler_Get_IncludesProfilePicture(t *testing.T) {
	stub := &stubTrainerService{
		dashboardFn: func(ctx context.Context, userID string) (*ports.DashboardView, error) {
			return &ports.DashboardView{
				Username:          "ash",
				Role:              domain.RoleUser,
				ProfilePictureURL: "https://cdn.example.com/ash.png",
				PokemonName:       "Sparky",
				Level:             6,
				CurrentXP:         20,
				TotalXP:           520,
				EvolutionStage:    string(domain.StageBasic),
			}, nil
		},
	}
	h := NewDashboardHandler(stub)

	c, rec := authedContext(t, http.MethodGet, "/v1/dashboard", "", "u1", nil)

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["profile_picture_url"] != "https://cdn.example.com/ash.png" {
		t.Fatalf("profile picture missing from response: %+v", resp)
	}
	if resp["pokemon_name"] != "Sparky" || resp["level"] != float64(6) {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestDashboardHandler_UpdateProfile_Success(t *testing.T) {
	var got ports.UpdateProfileInput
	stub := &stubTrainerService{
		updateProfileFn: func(ctx context.Context, userID string, input ports.UpdateProfileInput) error {
			if userID != "u1" {
				t.Fatalf("unexpected user: %s", userID)
			}
			got = input
			return nil
		},
	}
	h := NewDashboardHandler(stub)

	c, rec := authedContext(t, http.MethodPut, "/v1/dashboard/profile",
		`{"username":"ash-ketchum","profile_picture_url":"https://cdn.example.com/ash.png"}`, "u1", nil)

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got.Username != "ash-ketchum" || got.ProfilePictureURL != "https://cdn.example.com/ash.png" {
		t.Fatalf("input not forwarded: %+v", got)
	}
}

func TestDashboardHandler_UpdateProfile_TakenUsername(t *testing.T) {
	stub := &stubTrainerService{
		updateProfileFn: func(ctx context.Context, userID string, input ports.UpdateProfileInput) error {
			return domain.ErrUserExists
		},
	}
	h := NewDashboardHandler(stub)

	c, _ := authedContext(t, http.MethodPut, "/v1/dashboard/profile",
		`{"username":"misty"}`, "u1", nil)

	if err := h.UpdateProfile(c); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestDashboardHandler_UpdateProfile_BadPictureURL(t *testing.T) {
	stub := &stubTrainerService{
		updateProfileFn: func(ctx context.Context, userID string, input ports.UpdateProfileInput) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewDashboardHandler(stub)

	c, _ := authedContext(t, http.MethodPut, "/v1/dashboard/profile",
		`{"profile_picture_url":"not a url"}`, "u1", nil)

	err := h.UpdateProfile(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

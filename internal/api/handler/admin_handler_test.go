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

type stubAdminService struct {
	listFn   func(ctx context.Context) ([]ports.AdminUserView, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubAdminService) ListUsers(ctx context.Context) ([]ports.AdminUserView, error) {
	return s.listFn(ctx)
}

func (s *stubAdminService) DeleteUser(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestAdminHandler_ListUsers(t *testing.T) {
	stub := &stubAdminService{
		listFn: func(ctx context.Context) ([]ports.AdminUserView, error) {
			return []ports.AdminUserView{
				{ID: "u1", Username: "admin", Role: domain.RoleAdmin, Level: 7},
				{ID: "u2", Username: "ash", Role: domain.RoleUser, Level: 3},
			}, nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := authedContext(t, http.MethodGet, "/v1/admin/users", "", "u1", nil)

	if err := h.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[1]["username"] != "ash" || resp[1]["level"] != float64(3) {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAdminHandler_DeleteUser(t *testing.T) {
	deleted := ""
	stub := &stubAdminService{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := authedContext(t, http.MethodDelete, "/v1/admin/users/u2", "", "u1", nil)
	c.SetParamNames("id")
	c.SetParamValues("u2")

	if err := h.DeleteUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if deleted != "u2" {
		t.Fatalf("service not called with target id: %q", deleted)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAdminHandler_DeleteUser_Self(t *testing.T) {
	stub := &stubAdminService{
		deleteFn: func(ctx context.Context, id string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewAdminHandler(stub)

	c, _ := authedContext(t, http.MethodDelete, "/v1/admin/users/u1", "", "u1", nil)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	err := h.DeleteUser(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAdminHandler_DeleteUser_NotFound(t *testing.T) {
	stub := &stubAdminService{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewAdminHandler(stub)

	c, _ := authedContext(t, http.MethodDelete, "/v1/admin/users/ghost", "", "u1", nil)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.DeleteUser(c); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

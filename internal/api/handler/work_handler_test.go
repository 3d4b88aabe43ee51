package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pokework/pokework-api/internal/core/domain"
	"github.com/pokework/pokework-api/internal/core/ports"
)

type stubWorkService struct {
	logFn  func(ctx context.Context, input ports.LogWorkInput) (*domain.WorkSession, error)
	listFn func(ctx context.Context, userID string) ([]*domain.WorkSession, error)
}

func (s *stubWorkService) LogWork(ctx context.Context, input ports.LogWorkInput) (*domain.WorkSession, error) {
	return s.logFn(ctx, input)
}

func (s *stubWorkService) ListSessions(ctx context.Context, userID string) ([]*domain.WorkSession, error) {
	return s.listFn(ctx, userID)
}

// authedContext builds a context as the Auth middleware would leave it.
func authedContext(t *testing.T, method, target, body, userID string, header map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("role", domain.RoleUser)
	return c, rec
}

func TestWorkHandler_Log_Success(t *testing.T) {
	stub := &stubWorkService{
		logFn: func(ctx context.Context, input ports.LogWorkInput) (*domain.WorkSession, error) {
			if input.UserID != "u1" {
				t.Fatalf("unexpected user: %s", input.UserID)
			}
			if input.Hours != 2.5 {
				t.Fatalf("unexpected hours: %v", input.Hours)
			}
			if input.Date == nil || input.Date.Format("2006-01-02") != "2026-03-02" {
				t.Fatalf("unexpected date: %v", input.Date)
			}
			return &domain.WorkSession{ID: "s1", UserID: input.UserID, Hours: input.Hours}, nil
		},
	}
	h := NewWorkHandler(stub)

	c, rec := authedContext(t, http.MethodPost, "/v1/work",
		`{"date":"2026-03-02","hours":2.5}`, "u1", nil)

	if err := h.Log(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "s1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestWorkHandler_Log_ForwardsIdempotencyKey(t *testing.T) {
	stub := &stubWorkService{
		logFn: func(ctx context.Context, input ports.LogWorkInput) (*domain.WorkSession, error) {
			if input.IdempotencyKey != "retry-42" {
				t.Fatalf("idempotency key not forwarded: %q", input.IdempotencyKey)
			}
			return &domain.WorkSession{ID: "s1"}, nil
		},
	}
	h := NewWorkHandler(stub)

	c, _ := authedContext(t, http.MethodPost, "/v1/work",
		`{"hours":1}`, "u1", map[string]string{"Idempotency-Key": "retry-42"})

	if err := h.Log(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestWorkHandler_Log_BadDate(t *testing.T) {
	stub := &stubWorkService{
		logFn: func(ctx context.Context, input ports.LogWorkInput) (*domain.WorkSession, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewWorkHandler(stub)

	c, _ := authedContext(t, http.MethodPost, "/v1/work",
		`{"date":"02/03/2026","hours":1}`, "u1", nil)

	err := h.Log(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestWorkHandler_Log_NegativeHoursPropagates(t *testing.T) {
	stub := &stubWorkService{
		logFn: func(ctx context.Context, input ports.LogWorkInput) (*domain.WorkSession, error) {
			return nil, domain.ErrInvalidArgument
		},
	}
	h := NewWorkHandler(stub)

	c, _ := authedContext(t, http.MethodPost, "/v1/work", `{"hours":-1}`, "u1", nil)

	if err := h.Log(c); err != domain.ErrInvalidArgument {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestWorkHandler_Log_MissingClaims(t *testing.T) {
	stub := &stubWorkService{
		logFn: func(ctx context.Context, input ports.LogWorkInput) (*domain.WorkSession, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewWorkHandler(stub)

	c, _ := authedContext(t, http.MethodPost, "/v1/work", `{"hours":1}`, "", nil)

	err := h.Log(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestWorkHandler_List_Success(t *testing.T) {
	now := time.Now().UTC()
	stub := &stubWorkService{
		listFn: func(ctx context.Context, userID string) ([]*domain.WorkSession, error) {
			if userID != "u1" {
				t.Fatalf("unexpected user: %s", userID)
			}
			return []*domain.WorkSession{
				{ID: "s1", UserID: "u1", Hours: 2, WorkDate: now},
				{ID: "s2", UserID: "u1", Hours: 3, WorkDate: now},
			}, nil
		},
	}
	h := NewWorkHandler(stub)

	c, rec := authedContext(t, http.MethodGet, "/v1/work", "", "u1", nil)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(resp))
	}
}

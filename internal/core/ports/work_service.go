package ports

import (
	"context"
	"time"

	"github.com/pokework/pokework-api/internal/core/domain"
)

// LogWorkInput carries everything needed to record a work session.
type LogWorkInput struct {
	UserID string
	// Date defaults to today when nil.
	Date *time.Time
	// Hours must be non-negative and finite.
	Hours float64
	// StartTime defaults to now when nil.
	StartTime *time.Time
	// IdempotencyKey, when non-empty, deduplicates repeated submissions of
	// the same logical request.
	IdempotencyKey string
}

// WorkService records work intervals and routes their side effects (XP,
// hours goals) through the progression engine.
type WorkService interface {
	LogWork(ctx context.Context, input LogWorkInput) (*domain.WorkSession, error)
	ListSessions(ctx context.Context, userID string) ([]*domain.WorkSession, error)
}

package ports

import (
	"context"

	"github.com/pokework/pokework-api/internal/core/domain"
)

// AchievementService derives the badge catalog from raw history. It holds
// no state of its own; every call recomputes all badges from scratch.
type AchievementService interface {
	Evaluate(ctx context.Context, userID string) (*domain.AchievementReport, error)
}

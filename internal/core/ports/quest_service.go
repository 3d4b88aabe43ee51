package ports

import (
	"context"

	"github.com/pokework/pokework-api/internal/core/domain"
)

// CreateQuestInput carries the data for a new quest. GoalID is optional;
// when present it must reference a goal owned by the same user.
type CreateQuestInput struct {
	UserID     string
	Title      string
	Difficulty string
	GoalID     string
}

// QuestService owns the quest lifecycle: pending → completed, plus deletion
// from either state.
type QuestService interface {
	Create(ctx context.Context, input CreateQuestInput) (*domain.Quest, error)
	// Finish completes a pending quest, derives XP from hours worked,
	// records a synthetic work session, and routes goal progress.
	Finish(ctx context.Context, userID, questID string, hours float64) (*domain.Quest, error)
	Delete(ctx context.Context, userID, questID string) error
	List(ctx context.Context, userID string) ([]*domain.Quest, error)
}

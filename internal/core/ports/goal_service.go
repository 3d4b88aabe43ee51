package ports

import (
	"context"

	"github.com/pokework/pokework-api/internal/core/domain"
)

// GoalInput carries the writable fields of a goal.
type GoalInput struct {
	Title        string
	TargetValue  float64
	CurrentValue float64
	Unit         string
	Color        string
}

// GoalService is plain CRUD over goals with ownership enforcement. Progress
// increments are driven by WorkService and QuestService, not by callers.
type GoalService interface {
	Create(ctx context.Context, userID string, input GoalInput) (*domain.Goal, error)
	Update(ctx context.Context, userID, goalID string, input GoalInput) (*domain.Goal, error)
	Delete(ctx context.Context, userID, goalID string) error
	List(ctx context.Context, userID string) ([]*domain.Goal, error)
}

package ports

import (
	"context"

	"github.com/pokework/pokework-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// PokemonRepository persists the one-to-one progression snapshot.
type PokemonRepository interface {
	Create(ctx context.Context, p *domain.Pokemon) error
	// FindByUserID returns domain.ErrPokemonNotFound when the user has no
	// snapshot yet; callers in the XP path treat that as a silent skip.
	FindByUserID(ctx context.Context, userID string) (*domain.Pokemon, error)
	Update(ctx context.Context, p *domain.Pokemon) error
	DeleteByUserID(ctx context.Context, userID string) error
}

// SessionRepository persists immutable work sessions. There is no update
// operation on purpose.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.WorkSession) error
	FindByID(ctx context.Context, id string) (*domain.WorkSession, error)
	FindByUserID(ctx context.Context, userID string) ([]*domain.WorkSession, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

// QuestRepository defines persistence operations for quests.
type QuestRepository interface {
	Create(ctx context.Context, q *domain.Quest) error
	FindByID(ctx context.Context, id string) (*domain.Quest, error)
	FindByUserID(ctx context.Context, userID string) ([]*domain.Quest, error)
	Update(ctx context.Context, q *domain.Quest) error
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

// GoalRepository defines persistence operations for goals.
type GoalRepository interface {
	Create(ctx context.Context, g *domain.Goal) error
	FindByID(ctx context.Context, id string) (*domain.Goal, error)
	FindByUserID(ctx context.Context, userID string) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	// IncrementValue atomically adds delta to the goal's current value so
	// concurrent progress events never lose an increment.
	IncrementValue(ctx context.Context, id string, delta float64) error
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

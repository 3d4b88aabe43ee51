package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pokework/pokework-api/internal/core/domain"
	"github.com/pokework/pokework-api/internal/core/ports"
)

// GoalService is plain CRUD over goals. Progress increments come from the
// work and quest flows, never from this service.
type GoalService struct {
	goals ports.GoalRepository
	log   zerolog.Logger
}

func NewGoalService(goals ports.GoalRepository, log zerolog.Logger) *GoalService {
	return &GoalService{goals: goals, log: log}
}

// Create stores a new goal for the caller. CurrentValue always starts at
// zero regardless of the submitted payload.
func (s *GoalService) Create(ctx context.Context, userID string, input ports.GoalInput) (*domain.Goal, error) {
	if input.Title == "" || input.Unit == "" {
		return nil, fmt.Errorf("%w: title and unit are required", domain.ErrInvalidArgument)
	}

	goal := &domain.Goal{
		ID:           uuid.NewString(),
		UserID:       userID,
		Title:        input.Title,
		CurrentValue: 0,
		TargetValue:  input.TargetValue,
		Unit:         input.Unit,
		Color:        input.Color,
	}

	if err := s.goals.Create(ctx, goal); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to create goal")
		return nil, err
	}

	s.log.Info().Str("goal_id", goal.ID).Str("user_id", userID).Str("unit", goal.Unit).Msg("goal created")
	return goal, nil
}

// Update overwrites the goal's writable fields atomically.
func (s *GoalService) Update(ctx context.Context, userID, goalID string, input ports.GoalInput) (*domain.Goal, error) {
	goal, err := s.owned(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.Title = input.Title
	goal.TargetValue = input.TargetValue
	goal.CurrentValue = input.CurrentValue
	goal.Unit = input.Unit
	goal.Color = input.Color

	if err := s.goals.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Delete removes a goal owned by the caller.
func (s *GoalService) Delete(ctx context.Context, userID, goalID string) error {
	if _, err := s.owned(ctx, userID, goalID); err != nil {
		return err
	}
	return s.goals.Delete(ctx, goalID)
}

// List returns all goals of the user.
func (s *GoalService) List(ctx context.Context, userID string) ([]*domain.Goal, error) {
	return s.goals.FindByUserID(ctx, userID)
}

// owned resolves a goal and enforces ownership.
func (s *GoalService) owned(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	if goalID == "" {
		return nil, fmt.Errorf("%w: goal id is required", domain.ErrInvalidArgument)
	}
	goal, err := s.goals.FindByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return goal, nil
}

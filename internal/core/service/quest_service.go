package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pokework/pokework-api/internal/api/metrics"
	"github.com/pokework/pokework-api/internal/core/domain"
	"github.com/pokework/pokework-api/internal/core/ports"
)

// QuestService owns the quest lifecycle. Finishing a quest is the richest
// operation in the engine: it derives XP from hours, records a synthetic
// work session, levels the Pokemon, and routes goal progress.
type QuestService struct {
	quests   ports.QuestRepository
	sessions ports.SessionRepository
	pokemon  ports.PokemonRepository
	goals    ports.GoalRepository
	tx       ports.TxRunner
	log      zerolog.Logger
}

func NewQuestService(
	quests ports.QuestRepository,
	sessions ports.SessionRepository,
	pokemon ports.PokemonRepository,
	goals ports.GoalRepository,
	tx ports.TxRunner,
	log zerolog.Logger,
) *QuestService {
	return &QuestService{
		quests:   quests,
		sessions: sessions,
		pokemon:  pokemon,
		goals:    goals,
		tx:       tx,
		log:      log,
	}
}

// Create attaches a new pending quest to the caller. A supplied goal
// reference must resolve to a goal owned by the same user.
func (s *QuestService) Create(ctx context.Context, input ports.CreateQuestInput) (*domain.Quest, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidArgument)
	}

	if input.GoalID != "" {
		goal, err := s.goals.FindByID(ctx, input.GoalID)
		if err != nil {
			return nil, err
		}
		if goal.UserID != input.UserID {
			return nil, domain.ErrForbidden
		}
	}

	quest := &domain.Quest{
		ID:         uuid.NewString(),
		UserID:     input.UserID,
		Title:      input.Title,
		Difficulty: input.Difficulty,
		GoalID:     input.GoalID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.quests.Create(ctx, quest); err != nil {
		s.log.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create quest")
		return nil, err
	}

	s.log.Info().Str("quest_id", quest.ID).Str("user_id", input.UserID).Msg("quest created")
	return quest, nil
}

// Finish completes a pending quest exactly once. Completing an already
// completed quest fails; it is not a no-op.
func (s *QuestService) Finish(ctx context.Context, userID, questID string, hours float64) (*domain.Quest, error) {
	if questID == "" {
		return nil, fmt.Errorf("%w: quest id is required", domain.ErrInvalidArgument)
	}
	if hours < 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return nil, fmt.Errorf("%w: hours must be a non-negative number", domain.ErrInvalidArgument)
	}

	quest, err := s.quests.FindByID(ctx, questID)
	if err != nil {
		return nil, err
	}
	if quest.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if quest.Completed {
		return nil, domain.ErrQuestAlreadyCompleted
	}

	earnedXP := xpForQuest(hours)
	now := time.Now().UTC()
	session := &domain.WorkSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		WorkDate:  now,
		Hours:     hours,
		StartTime: now.Add(-time.Duration(hours * float64(time.Hour))),
		CreatedAt: now,
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		quest.Completed = true
		quest.EarnedXP = earnedXP
		if err := s.quests.Update(ctx, quest); err != nil {
			return fmt.Errorf("update quest: %w", err)
		}
		if err := s.sessions.Create(ctx, session); err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		if err := s.grantXP(ctx, userID, earnedXP); err != nil {
			return err
		}
		return s.routeGoalProgress(ctx, quest, hours, earnedXP)
	})
	if err != nil {
		s.log.Error().Err(err).Str("quest_id", questID).Msg("failed to finish quest")
		return nil, err
	}

	metrics.QuestsCompletedTotal.Inc()
	metrics.SessionsLoggedTotal.WithLabelValues("quest").Inc()
	s.log.Info().
		Str("quest_id", questID).
		Str("user_id", userID).
		Int("earned_xp", earnedXP).
		Msg("quest finished")

	return quest, nil
}

// Delete removes a quest in either state. Deleting a completed quest does
// not claw back XP or goal progress.
func (s *QuestService) Delete(ctx context.Context, userID, questID string) error {
	if questID == "" {
		return fmt.Errorf("%w: quest id is required", domain.ErrInvalidArgument)
	}

	quest, err := s.quests.FindByID(ctx, questID)
	if err != nil {
		return err
	}
	if quest.UserID != userID {
		return domain.ErrForbidden
	}

	if err := s.quests.Delete(ctx, questID); err != nil {
		return err
	}
	s.log.Info().Str("quest_id", questID).Str("user_id", userID).Msg("quest deleted")
	return nil
}

// List returns all quests of the user.
func (s *QuestService) List(ctx context.Context, userID string) ([]*domain.Quest, error) {
	return s.quests.FindByUserID(ctx, userID)
}

// grantXP mirrors the work-logging XP path: no Pokemon, no XP, no error.
func (s *QuestService) grantXP(ctx context.Context, userID string, earnedXP int) error {
	p, err := s.pokemon.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrPokemonNotFound) {
			return nil
		}
		return fmt.Errorf("load pokemon: %w", err)
	}

	levelBefore := p.Level
	p.ApplyXP(earnedXP)

	if err := s.pokemon.Update(ctx, p); err != nil {
		return fmt.Errorf("update pokemon: %w", err)
	}

	metrics.XPGrantedTotal.Add(float64(earnedXP))
	if p.Level > levelBefore {
		metrics.LevelUpsTotal.Add(float64(p.Level - levelBefore))
	}
	return nil
}

// routeGoalProgress implements the dual routing policy. A quest with a
// linked goal feeds exactly that goal using its unit; a quest without one
// falls back to the legacy broadcast over all "hours" goals. Both paths are
// intentional — goals created before quest-linking existed rely on the
// broadcast.
func (s *QuestService) routeGoalProgress(ctx context.Context, quest *domain.Quest, hours float64, earnedXP int) error {
	if quest.GoalID == "" {
		goals, err := s.goals.FindByUserID(ctx, quest.UserID)
		if err != nil {
			return fmt.Errorf("load goals: %w", err)
		}
		for _, g := range goals {
			if !g.TracksHours() {
				continue
			}
			if err := s.goals.IncrementValue(ctx, g.ID, hours); err != nil {
				return fmt.Errorf("increment goal %s: %w", g.ID, err)
			}
			metrics.GoalProgressTotal.WithLabelValues("hours").Inc()
		}
		return nil
	}

	goal, err := s.goals.FindByID(ctx, quest.GoalID)
	if err != nil {
		return fmt.Errorf("load linked goal: %w", err)
	}

	var delta float64
	var unit string
	switch {
	case goal.TracksHours():
		delta, unit = hours, "hours"
	case goal.TracksXP():
		delta, unit = float64(earnedXP), "xp"
	default:
		// Generic counters advance one notch per completion.
		delta, unit = 1, "count"
	}

	if err := s.goals.IncrementValue(ctx, goal.ID, delta); err != nil {
		return fmt.Errorf("increment goal %s: %w", goal.ID, err)
	}
	metrics.GoalProgressTotal.WithLabelValues(unit).Inc()
	return nil
}

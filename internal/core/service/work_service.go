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

// IdempotencyStore abstracts the replay-protection store (Redis). Get
// returns the session id recorded for a key, or "" when the key is unseen.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (string, error)
	Mark(ctx context.Context, key, sessionID string) error
}

// WorkService records work sessions and applies their progression side
// effects: XP through the leveling rule and increments on every
// hours-tracking goal.
type WorkService struct {
	sessions ports.SessionRepository
	pokemon  ports.PokemonRepository
	goals    ports.GoalRepository
	tx       ports.TxRunner
	dedup    IdempotencyStore // optional; nil disables replay protection
	log      zerolog.Logger
}

func NewWorkService(
	sessions ports.SessionRepository,
	pokemon ports.PokemonRepository,
	goals ports.GoalRepository,
	tx ports.TxRunner,
	dedup IdempotencyStore,
	log zerolog.Logger,
) *WorkService {
	return &WorkService{
		sessions: sessions,
		pokemon:  pokemon,
		goals:    goals,
		tx:       tx,
		dedup:    dedup,
		log:      log,
	}
}

// LogWork persists a new work session, grants floor(hours*10) XP to the
// user's Pokemon (silently skipped when no Pokemon exists), and adds the
// hours to every goal with unit "hours". All writes happen in one
// transaction.
func (s *WorkService) LogWork(ctx context.Context, input ports.LogWorkInput) (*domain.WorkSession, error) {
	if input.Hours < 0 || math.IsNaN(input.Hours) || math.IsInf(input.Hours, 0) {
		return nil, fmt.Errorf("%w: hours must be a non-negative number", domain.ErrInvalidArgument)
	}

	if s.dedup != nil && input.IdempotencyKey != "" {
		if replayed, err := s.replaySession(ctx, input.IdempotencyKey); err != nil {
			s.log.Warn().Err(err).Msg("idempotency lookup failed, processing anyway")
		} else if replayed != nil {
			return replayed, nil
		}
	}

	now := time.Now().UTC()
	workDate := now
	if input.Date != nil {
		workDate = input.Date.UTC()
	}
	startTime := now
	if input.StartTime != nil {
		startTime = input.StartTime.UTC()
	}

	session := &domain.WorkSession{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		WorkDate:  workDate,
		Hours:     input.Hours,
		StartTime: startTime,
		CreatedAt: now,
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.sessions.Create(ctx, session); err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		if err := s.grantXP(ctx, input.UserID, xpForHours(input.Hours)); err != nil {
			return err
		}
		return s.broadcastHours(ctx, input.UserID, input.Hours)
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", input.UserID).Msg("failed to log work")
		return nil, err
	}

	if s.dedup != nil && input.IdempotencyKey != "" {
		if err := s.dedup.Mark(ctx, input.IdempotencyKey, session.ID); err != nil {
			s.log.Warn().Err(err).Msg("failed to record idempotency key")
		}
	}

	metrics.SessionsLoggedTotal.WithLabelValues("manual").Inc()
	s.log.Info().
		Str("user_id", input.UserID).
		Float64("hours", input.Hours).
		Str("session_id", session.ID).
		Msg("work session logged")

	return session, nil
}

// ListSessions returns all sessions of the user.
func (s *WorkService) ListSessions(ctx context.Context, userID string) ([]*domain.WorkSession, error) {
	return s.sessions.FindByUserID(ctx, userID)
}

// replaySession returns the previously created session for a seen
// idempotency key, or nil when the key is new.
func (s *WorkService) replaySession(ctx context.Context, key string) (*domain.WorkSession, error) {
	sessionID, err := s.dedup.Get(ctx, key)
	if err != nil || sessionID == "" {
		return nil, err
	}
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("idempotency_key", key).Str("session_id", sessionID).Msg("idempotent replay")
	return session, nil
}

// grantXP applies earned XP to the user's Pokemon via the leveling rule.
// A user without a Pokemon earns nothing; that is not an error.
func (s *WorkService) grantXP(ctx context.Context, userID string, earnedXP int) error {
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
		s.log.Info().
			Str("user_id", userID).
			Int("level", p.Level).
			Str("stage", string(p.EvolutionStage)).
			Msg("pokemon leveled up")
	}
	return nil
}

// broadcastHours adds hours to every goal of the user whose unit is "hours"
// (case-insensitive). This is the legacy routing path shared with quests
// that have no linked goal.
func (s *WorkService) broadcastHours(ctx context.Context, userID string, hours float64) error {
	goals, err := s.goals.FindByUserID(ctx, userID)
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

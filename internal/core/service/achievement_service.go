package service

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/pokework/pokework-api/internal/api/metrics"
	"github.com/pokework/pokework-api/internal/core/domain"
	"github.com/pokework/pokework-api/internal/core/ports"
)

// AchievementService computes the badge catalog on demand. Nothing about
// badge state is persisted; every call re-derives all badges from the
// user's sessions, quests, and Pokemon.
type AchievementService struct {
	sessions ports.SessionRepository
	quests   ports.QuestRepository
	pokemon  ports.PokemonRepository
	log      zerolog.Logger
}

func NewAchievementService(
	sessions ports.SessionRepository,
	quests ports.QuestRepository,
	pokemon ports.PokemonRepository,
	log zerolog.Logger,
) *AchievementService {
	return &AchievementService{
		sessions: sessions,
		quests:   quests,
		pokemon:  pokemon,
		log:      log,
	}
}

// Evaluate gathers the user's full history and runs the pure evaluator
// over it. A missing Pokemon is not an error; badges fall back to level 1
// and 0 total XP.
func (s *AchievementService) Evaluate(ctx context.Context, userID string) (*domain.AchievementReport, error) {
	timer := prometheus.NewTimer(metrics.AchievementEvaluationDuration)
	defer timer.ObserveDuration()

	sessions, err := s.sessions.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	quests, err := s.quests.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	pokemon, err := s.pokemon.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrPokemonNotFound) {
		return nil, err
	}

	report := EvaluateBadges(sessions, quests, pokemon)
	s.log.Debug().
		Str("user_id", userID).
		Int("unlocked", report.UnlockedCount).
		Msg("achievements evaluated")
	return report, nil
}

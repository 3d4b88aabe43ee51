package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pokework/pokework-api/internal/core/domain"
	"github.com/pokework/pokework-api/internal/core/ports"
)

// AdminService implements the administrative operations. Role enforcement
// lives in the transport layer; this service trusts its caller.
type AdminService struct {
	users    ports.UserRepository
	pokemon  ports.PokemonRepository
	sessions ports.SessionRepository
	quests   ports.QuestRepository
	goals    ports.GoalRepository
	tx       ports.TxRunner
	log      zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	pokemon ports.PokemonRepository,
	sessions ports.SessionRepository,
	quests ports.QuestRepository,
	goals ports.GoalRepository,
	tx ports.TxRunner,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{
		users:    users,
		pokemon:  pokemon,
		sessions: sessions,
		quests:   quests,
		goals:    goals,
		tx:       tx,
		log:      log,
	}
}

// ListUsers returns all accounts with their current level.
func (s *AdminService) ListUsers(ctx context.Context) ([]ports.AdminUserView, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ports.AdminUserView, 0, len(users))
	for _, u := range users {
		view := ports.AdminUserView{ID: u.ID, Username: u.Username, Role: u.Role}
		p, err := s.pokemon.FindByUserID(ctx, u.ID)
		if err == nil {
			view.Level = p.Level
		} else if !errors.Is(err, domain.ErrPokemonNotFound) {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// DeleteUser removes the account and everything it owns in one transaction.
func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrInvalidArgument)
	}
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.goals.DeleteByUserID(ctx, id); err != nil {
			return err
		}
		if err := s.quests.DeleteByUserID(ctx, id); err != nil {
			return err
		}
		if err := s.sessions.DeleteByUserID(ctx, id); err != nil {
			return err
		}
		if err := s.pokemon.DeleteByUserID(ctx, id); err != nil {
			return err
		}
		return s.users.Delete(ctx, id)
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", id).Msg("failed to delete user")
		return err
	}

	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

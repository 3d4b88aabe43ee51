package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/pokework/pokework-api/internal/core/domain"
	"github.com/pokework/pokework-api/internal/core/ports"
)

// TrainerService serves the trainer's dashboard and profile mutations.
type TrainerService struct {
	users   ports.UserRepository
	pokemon ports.PokemonRepository
	log     zerolog.Logger
}

func NewTrainerService(users ports.UserRepository, pokemon ports.PokemonRepository, log zerolog.Logger) *TrainerService {
	return &TrainerService{users: users, pokemon: pokemon, log: log}
}

// Dashboard returns the profile snapshot. A user without a Pokemon gets the
// level-1 Egg fallback rather than an error.
func (s *TrainerService) Dashboard(ctx context.Context, userID string) (*ports.DashboardView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &ports.DashboardView{
		Username:          user.Username,
		Role:              user.Role,
		Status:            user.Status,
		ProfilePictureURL: user.ProfilePictureURL,
		PokemonName:       "Unknown",
		Level:             1,
		EvolutionStage:    string(domain.StageEgg),
	}

	p, err := s.pokemon.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrPokemonNotFound) {
			return view, nil
		}
		return nil, err
	}

	view.PokemonName = p.Name
	view.Level = p.Level
	view.CurrentXP = p.CurrentXP
	view.TotalXP = p.TotalXP
	view.EvolutionStage = string(p.EvolutionStage)
	return view, nil
}

// UpdateProfile changes the trainer's username and profile picture. A new
// username must not collide with another account.
func (s *TrainerService) UpdateProfile(ctx context.Context, userID string, input ports.UpdateProfileInput) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if input.Username != "" && input.Username != user.Username {
		if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
			return domain.ErrUserExists
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		user.Username = input.Username
	}
	user.ProfilePictureURL = input.ProfilePictureURL
	user.UpdatedAt = time.Now().UTC()
	return s.users.Update(ctx, user)
}

// UpdateStatus sets the trainer's free-form status line.
func (s *TrainerService) UpdateStatus(ctx context.Context, userID, status string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Status = status
	user.UpdatedAt = time.Now().UTC()
	return s.users.Update(ctx, user)
}

// RenamePokemon changes the Pokemon's display name. Name only; progression
// fields are untouchable from here.
func (s *TrainerService) RenamePokemon(ctx context.Context, userID, name string) error {
	if name == "" {
		return domain.ErrInvalidArgument
	}
	p, err := s.pokemon.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	p.Name = name
	return s.pokemon.Update(ctx, p)
}

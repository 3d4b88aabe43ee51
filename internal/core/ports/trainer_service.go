package ports

import "context"

// DashboardView is the trainer's profile snapshot rendered on the main
// screen. Pokemon fields fall back to a level-1 Egg when the snapshot is
// missing.
type DashboardView struct {
	Username          string
	Role              string
	Status            string
	ProfilePictureURL string
	PokemonName       string
	Level             int
	CurrentXP         int
	TotalXP           int
	EvolutionStage    string
}

// UpdateProfileInput carries the mutable profile fields. Empty Username
// keeps the current name; ProfilePictureURL is overwritten as given, so an
// empty value clears the picture.
type UpdateProfileInput struct {
	Username          string
	ProfilePictureURL string
}

// TrainerService serves and mutates the trainer profile.
type TrainerService interface {
	Dashboard(ctx context.Context, userID string) (*DashboardView, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) error
	UpdateStatus(ctx context.Context, userID, status string) error
	RenamePokemon(ctx context.Context, userID, name string) error
}

package ports

import (
	"context"

	"github.com/pokework/pokework-api/internal/core/domain"
)

// AuthService implements registration and login. Registration also hatches
// the user's starter Pokemon; the very first account registered becomes the
// admin.
type AuthService interface {
	Register(ctx context.Context, username, password, pokemonName string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

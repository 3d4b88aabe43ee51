// Package bootstrap prepares a fresh deployment for first use.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pokework/pokework-api/internal/core/ports"
)

// SeedAdmin registers the default administrator account when the user
// collection is empty. Registration itself promotes the first account to
// ADMIN, so seeding is just a plain Register call.
func SeedAdmin(ctx context.Context, users ports.UserRepository, auth ports.AuthService, username, password string, log zerolog.Logger) error {
	count, err := users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	user, err := auth.Register(ctx, username, password, "")
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	log.Info().
		Str("username", user.Username).
		Str("role", user.Role).
		Msg("seeded default admin account; change its password before exposing the service")

	return nil
}

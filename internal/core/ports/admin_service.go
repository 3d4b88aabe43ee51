package ports

import "context"

// AdminUserView is the flattened row returned by the admin user listing.
type AdminUserView struct {
	ID       string
	Username string
	Role     string
	Level    int
}

// AdminService exposes administrative operations. Transport gates these
// behind the ADMIN role.
type AdminService interface {
	ListUsers(ctx context.Context) ([]AdminUserView, error)
	// DeleteUser removes the user and cascades to their pokemon, sessions,
	// quests, and goals in one transaction.
	DeleteUser(ctx context.Context, id string) error
}

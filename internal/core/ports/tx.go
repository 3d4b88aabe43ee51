package ports

import "context"

// TxRunner executes fn inside a single storage transaction. Every mutating
// use case (log work, finish quest, delete user) wraps its session-insert,
// pokemon-update, and goal-update steps in one transaction so partial
// application cannot be observed.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

package adapter

import "context"

// Transactor runs a unit of work inside a single database transaction.
// The transaction is carried by the context handed to fn; repositories called
// with that context take part in it. A non-nil error from fn rolls back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

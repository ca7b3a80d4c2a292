package order

import (
	"context"
)

// Repository is the sales ledger contract: append-only order records.
type Repository interface {
	// Create appends an order to the ledger.
	Create(ctx context.Context, o *Order) error

	// List returns every recorded order in insertion order.
	List(ctx context.Context) ([]*Order, error)
}

package delivery

import (
	"context"
)

// Repository is the delivery ledger contract: append-only dispatch records.
type Repository interface {
	// Create appends a delivery record to the ledger.
	Create(ctx context.Context, d *Delivery) error

	// List returns every recorded delivery in insertion order.
	List(ctx context.Context) ([]*Delivery, error)
}

package book

import (
	"context"
)

// Repository is the inventory store contract. The domain layer defines the
// interface; the infrastructure layer provides the in-memory implementation.
type Repository interface {
	// List returns every book in insertion order.
	List(ctx context.Context) ([]*Book, error)

	// FindByID returns the book with the given id, or ErrBookNotFound.
	FindByID(ctx context.Context, id string) (*Book, error)

	// HasSufficientStock reports whether the book exists and has at least
	// qty units in stock. An unknown id yields false, not an error.
	HasSufficientStock(ctx context.Context, id string, qty int) (bool, error)

	// DecrementStock reduces the book's stock by qty in place. Unknown ids
	// are a no-op. Sufficiency is NOT re-checked here: the caller must have
	// called HasSufficientStock first, otherwise stock can go negative.
	DecrementStock(ctx context.Context, id string, qty int) error
}

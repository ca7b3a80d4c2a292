package book

import (
	"context"

	"github.com/xiebiao/bookstore-integration/internal/domain/book"
)

// ListBooksUseCase returns the full catalog. No pagination or filtering:
// the inventory is a small seeded list.
type ListBooksUseCase struct {
	bookRepo book.Repository
}

// NewListBooksUseCase creates the catalog listing use case.
func NewListBooksUseCase(bookRepo book.Repository) *ListBooksUseCase {
	return &ListBooksUseCase{bookRepo: bookRepo}
}

// Execute returns every book in insertion order.
func (uc *ListBooksUseCase) Execute(ctx context.Context) ([]*book.Book, error) {
	return uc.bookRepo.List(ctx)
}

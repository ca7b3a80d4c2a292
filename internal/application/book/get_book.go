package book

import (
	"context"

	"github.com/xiebiao/bookstore-integration/internal/domain/book"
)

// GetBookUseCase looks a single book up by id.
type GetBookUseCase struct {
	bookRepo book.Repository
}

// NewGetBookUseCase creates the lookup use case.
func NewGetBookUseCase(bookRepo book.Repository) *GetBookUseCase {
	return &GetBookUseCase{bookRepo: bookRepo}
}

// Execute returns the book, or book.ErrBookNotFound.
func (uc *GetBookUseCase) Execute(ctx context.Context, id string) (*book.Book, error) {
	return uc.bookRepo.FindByID(ctx, id)
}

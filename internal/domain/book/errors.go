package book

import (
	apperrors "github.com/xiebiao/bookstore-integration/pkg/errors"
)

var (
	// ErrBookNotFound is returned by lookups for unknown book ids.
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Book not found")

	// ErrInsufficientStock covers both an unknown book and a stock count
	// below the requested quantity. Callers cannot tell the two apart from
	// the response; the placement API deliberately conflates them.
	ErrInsufficientStock = apperrors.New(apperrors.ErrCodeInsufficientStock, "Insufficient stock")
)

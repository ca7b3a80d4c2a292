// Package memory implements the domain repositories on process-local state.
// Each store guards its own data with a mutex; there is deliberately no lock
// spanning stores, so the placement workflow's two-store update stays
// non-atomic.
package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/bookstore-integration/internal/domain/book"
)

// BookStore holds the catalog in memory, insertion order preserved.
type BookStore struct {
	mu    sync.RWMutex
	books []*book.Book
	index map[string]*book.Book
}

// NewBookStore builds a store over the seeded catalog. The slice is owned by
// the store after this call.
func NewBookStore(books []*book.Book) *BookStore {
	index := make(map[string]*book.Book, len(books))
	for _, b := range books {
		index[b.ID] = b
	}
	return &BookStore{
		books: books,
		index: index,
	}
}

// List returns a snapshot of every book in insertion order. Copies are
// returned so callers never observe later stock mutations.
func (s *BookStore) List(ctx context.Context) ([]*book.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*book.Book, len(s.books))
	for i, b := range s.books {
		cp := *b
		out[i] = &cp
	}
	return out, nil
}

// FindByID returns a copy of the book, or book.ErrBookNotFound.
func (s *BookStore) FindByID(ctx context.Context, id string) (*book.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.index[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

// HasSufficientStock reports whether the book exists with stock >= qty.
// Unknown ids yield false, not an error.
func (s *BookStore) HasSufficientStock(ctx context.Context, id string, qty int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.index[id]
	return ok && b.Stock >= qty, nil
}

// DecrementStock reduces stock by qty in place; unknown ids are a no-op.
// Sufficiency is not re-checked, per the repository contract.
func (s *BookStore) DecrementStock(ctx context.Context, id string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.index[id]; ok {
		b.Stock -= qty
	}
	return nil
}

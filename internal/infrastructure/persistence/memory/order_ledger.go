package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/bookstore-integration/internal/domain/order"
)

// OrderLedger is the in-memory sales ledger: an append-only order list.
type OrderLedger struct {
	mu     sync.RWMutex
	orders []*order.Order
}

// NewOrderLedger builds a ledger over the seeded orders (usually empty).
func NewOrderLedger(orders []*order.Order) *OrderLedger {
	return &OrderLedger{orders: orders}
}

// Create appends o to the ledger.
func (l *OrderLedger) Create(ctx context.Context, o *order.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cp := *o
	l.orders = append(l.orders, &cp)
	return nil
}

// List returns a snapshot of every order in insertion order.
func (l *OrderLedger) List(ctx context.Context) ([]*order.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*order.Order, len(l.orders))
	for i, o := range l.orders {
		cp := *o
		out[i] = &cp
	}
	return out, nil
}

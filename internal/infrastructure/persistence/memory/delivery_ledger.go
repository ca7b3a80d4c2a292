package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/bookstore-integration/internal/domain/delivery"
)

// DeliveryLedger is the in-memory delivery ledger: an append-only record list.
type DeliveryLedger struct {
	mu         sync.RWMutex
	deliveries []*delivery.Delivery
}

// NewDeliveryLedger builds a ledger over the seeded deliveries (usually empty).
func NewDeliveryLedger(deliveries []*delivery.Delivery) *DeliveryLedger {
	return &DeliveryLedger{deliveries: deliveries}
}

// Create appends d to the ledger.
func (l *DeliveryLedger) Create(ctx context.Context, d *delivery.Delivery) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cp := *d
	l.deliveries = append(l.deliveries, &cp)
	return nil
}

// List returns a snapshot of every delivery in insertion order.
func (l *DeliveryLedger) List(ctx context.Context) ([]*delivery.Delivery, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*delivery.Delivery, len(l.deliveries))
	for i, d := range l.deliveries {
		cp := *d
		out[i] = &cp
	}
	return out, nil
}

package memory

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xiebiao/bookstore-integration/internal/domain/book"
	"github.com/xiebiao/bookstore-integration/internal/domain/delivery"
	"github.com/xiebiao/bookstore-integration/internal/domain/order"
)

// Seed loading: the three JSON documents are decoded strictly and validated
// once at process start, so a malformed file aborts startup with a
// descriptive error instead of surfacing as odd behaviour later.

// LoadBooks reads and validates the catalog seed file.
func LoadBooks(path string) ([]*book.Book, error) {
	var books []*book.Book
	if err := decodeSeed(path, &books); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(books))
	for i, b := range books {
		if b.ID == "" {
			return nil, fmt.Errorf("seed %s: book #%d has empty id", path, i)
		}
		if _, dup := seen[b.ID]; dup {
			return nil, fmt.Errorf("seed %s: duplicate book id %q", path, b.ID)
		}
		seen[b.ID] = struct{}{}
		if b.Stock < 0 {
			return nil, fmt.Errorf("seed %s: book %q has negative stock %d", path, b.ID, b.Stock)
		}
	}
	return books, nil
}

// LoadOrders reads and validates the sales ledger seed file.
func LoadOrders(path string) ([]*order.Order, error) {
	var orders []*order.Order
	if err := decodeSeed(path, &orders); err != nil {
		return nil, err
	}

	for i, o := range orders {
		if o.OrderID == "" {
			return nil, fmt.Errorf("seed %s: order #%d has empty order_id", path, i)
		}
		if o.Quantity <= 0 {
			return nil, fmt.Errorf("seed %s: order %q has non-positive quantity %d", path, o.OrderID, o.Quantity)
		}
	}
	return orders, nil
}

// LoadDeliveries reads and validates the delivery ledger seed file.
func LoadDeliveries(path string) ([]*delivery.Delivery, error) {
	var deliveries []*delivery.Delivery
	if err := decodeSeed(path, &deliveries); err != nil {
		return nil, err
	}

	for i, d := range deliveries {
		if d.DeliveryID == "" {
			return nil, fmt.Errorf("seed %s: delivery #%d has empty delivery_id", path, i)
		}
	}
	return deliveries, nil
}

// decodeSeed strictly decodes one seed document into out.
func decodeSeed(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode seed %s: %w", path, err)
	}
	return nil
}

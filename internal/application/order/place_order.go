package order

import (
	"context"

	"github.com/xiebiao/bookstore-integration/internal/domain/book"
	"github.com/xiebiao/bookstore-integration/internal/domain/order"
)

// PlaceOrderUseCase coordinates one purchase across the inventory store and
// the sales ledger.
type PlaceOrderUseCase struct {
	bookRepo  book.Repository
	orderRepo order.Repository
}

// NewPlaceOrderUseCase creates the placement use case.
func NewPlaceOrderUseCase(bookRepo book.Repository, orderRepo order.Repository) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		bookRepo:  bookRepo,
		orderRepo: orderRepo,
	}
}

// PlaceOrderRequest carries the already-validated placement inputs.
type PlaceOrderRequest struct {
	BookID   string
	Quantity int
	Customer string
}

// Execute places an order:
//
//  1. check stock sufficiency;
//  2. unknown book or stock too low both fail as ErrInsufficientStock,
//     with no side effects;
//  3. record the order in the sales ledger;
//  4. decrement the book's stock.
//
// Step 3 always runs before step 4 and there is no atomicity across the two
// stores: a fault between them leaves an order without its stock decrement.
// That window is a known, accepted trade-off of this design.
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, req PlaceOrderRequest) (*order.Order, error) {
	ok, err := uc.bookRepo.HasSufficientStock(ctx, req.BookID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, book.ErrInsufficientStock
	}

	o := order.NewOrder(req.BookID, req.Quantity, req.Customer)
	if err := uc.orderRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	if err := uc.bookRepo.DecrementStock(ctx, req.BookID, req.Quantity); err != nil {
		return nil, err
	}

	return o, nil
}

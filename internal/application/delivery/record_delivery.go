package delivery

import (
	"context"

	"github.com/xiebiao/bookstore-integration/internal/domain/delivery"
)

// RecordDeliveryUseCase appends a dispatch record for an order. The order id
// is taken at face value; the sales ledger is not consulted.
type RecordDeliveryUseCase struct {
	deliveryRepo delivery.Repository
}

// NewRecordDeliveryUseCase creates the delivery recording use case.
func NewRecordDeliveryUseCase(deliveryRepo delivery.Repository) *RecordDeliveryUseCase {
	return &RecordDeliveryUseCase{deliveryRepo: deliveryRepo}
}

// RecordDeliveryRequest carries the already-validated delivery inputs.
type RecordDeliveryRequest struct {
	OrderID string
	Address string
}

// Execute creates the delivery record with status READY_FOR_DISPATCH.
func (uc *RecordDeliveryUseCase) Execute(ctx context.Context, req RecordDeliveryRequest) (*delivery.Delivery, error) {
	d := delivery.NewDelivery(req.OrderID, req.Address)
	if err := uc.deliveryRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

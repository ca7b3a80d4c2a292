package delivery

import (
	"github.com/google/uuid"
)

// Status is the dispatch state of a delivery record.
type Status string

const (
	StatusReadyForDispatch Status = "READY_FOR_DISPATCH"
)

// Delivery links an order to a shipping address. The referenced order id is
// not cross-checked against the sales ledger.
type Delivery struct {
	DeliveryID string `json:"delivery_id"`
	OrderID    string `json:"order_id"`
	Address    string `json:"address"`
	Status     Status `json:"status"`
}

// NewDelivery builds a delivery record with a freshly generated id and the
// fixed initial status READY_FOR_DISPATCH.
func NewDelivery(orderID, address string) *Delivery {
	return &Delivery{
		DeliveryID: uuid.NewString(),
		OrderID:    orderID,
		Address:    address,
		Status:     StatusReadyForDispatch,
	}
}

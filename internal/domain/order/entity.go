package order

// Status is the lifecycle state of an order. Placement is the only
// operation, so every order is created already paid.
type Status string

const (
	StatusPaid Status = "PAID"
)

// Order is a customer's purchase of a quantity of one book. Orders are
// immutable once recorded in the ledger.
type Order struct {
	OrderID  string `json:"order_id"`
	BookID   string `json:"book_id"`
	Quantity int    `json:"quantity"`
	Customer string `json:"customer"`
	Status   Status `json:"status"`
}

// NewOrder builds an order with a freshly generated id and status PAID.
// Book existence is not validated here; that is the placement workflow's
// responsibility.
func NewOrder(bookID string, quantity int, customer string) *Order {
	return &Order{
		OrderID:  GenerateOrderID(),
		BookID:   bookID,
		Quantity: quantity,
		Customer: customer,
		Status:   StatusPaid,
	}
}

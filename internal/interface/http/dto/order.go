package dto

// PlaceOrderRequest is the POST /api/orders body.
// Field presence is checked by hand rather than with binding tags so the
// response can name every absent field in one message.
type PlaceOrderRequest struct {
	BookID   string `json:"book_id" example:"b1"`
	Quantity int    `json:"quantity" example:"2"`
	Customer string `json:"customer" example:"alice"`
}

// MissingFields lists the required fields that are absent. A non-positive
// quantity counts as absent, matching the validation the API documents.
func (r PlaceOrderRequest) MissingFields() []string {
	var missing []string
	if r.BookID == "" {
		missing = append(missing, "book_id")
	}
	if r.Quantity <= 0 {
		missing = append(missing, "quantity")
	}
	if r.Customer == "" {
		missing = append(missing, "customer")
	}
	return missing
}

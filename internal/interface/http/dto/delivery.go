package dto

// UpdateDeliveryRequest is the POST /api/delivery/update body.
type UpdateDeliveryRequest struct {
	OrderID string `json:"order_id" example:"7d3f4e0a-5a8e-4f43-8f5a-1f6f3d2b9c01"`
	Address string `json:"address" example:"221B Baker Street"`
}

// MissingFields lists the required fields that are absent.
func (r UpdateDeliveryRequest) MissingFields() []string {
	var missing []string
	if r.OrderID == "" {
		missing = append(missing, "order_id")
	}
	if r.Address == "" {
		missing = append(missing, "address")
	}
	return missing
}

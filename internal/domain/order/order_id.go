package order

import (
	"github.com/google/uuid"
)

// GenerateOrderID returns a new globally unique order identifier.
// UUIDv4 keeps collision probability negligible within a process lifetime.
func GenerateOrderID() string {
	return uuid.NewString()
}

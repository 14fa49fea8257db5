package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for the order projection.
// The dispatch core never creates orders; it reads them and writes back the
// status changes driven by the assignment lifecycle.
type OrderRepository interface {
	// Get retrieves an order projection by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Update persists the order's status. Contact metadata is never
	// written back.
	Update(ctx context.Context, aggregate *order.Order) error
}

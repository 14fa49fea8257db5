package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/rider"
)

// RiderRepository defines the read-only persistence contract for rider
// projections. Riders are managed by a separate system.
type RiderRepository interface {
	// Get retrieves a rider projection by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)
}

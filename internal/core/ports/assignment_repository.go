// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
)

// ErrActiveAssignmentExists is returned by AssignmentRepository.Add when the
// order already has an assignment that blocks a new one. The conflict is
// enforced by a partial unique index so concurrent creates cannot both win.
var ErrActiveAssignmentExists = errors.New("order already has an active assignment")

// AssignmentRepository defines the persistence contract for delivery
// assignment aggregates.
type AssignmentRepository interface {
	// Add persists a new assignment aggregate to storage.
	// Returns ErrActiveAssignmentExists when the order is already covered
	// by an assignment in a status that blocks new work.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment aggregate.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetActiveByOrderID retrieves the assignment that currently blocks new
	// work for the given order, if any. At most one such assignment can
	// exist at a time.
	GetActiveByOrderID(ctx context.Context, orderID kernel.UUID) (*assignment.Assignment, error)

	// Delete removes an assignment record. History entries referencing the
	// assignment are kept; the audit trail survives deletion.
	Delete(ctx context.Context, id kernel.UUID) error
}

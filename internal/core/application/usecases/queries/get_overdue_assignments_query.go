package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetOverdueAssignmentsQueryIsNotConstructed = errors.New(
	"GetOverdueAssignmentsQuery must be created via NewGetOverdueAssignmentsQuery constructor",
)

// GetOverdueAssignmentsQuery retrieves assignments that are still underway
// past their estimated delivery time. Feeds the overdue watchdog job.
type GetOverdueAssignmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOverdueAssignmentsQuery creates a query for overdue assignments.
// This is a parameterless query; "overdue" is judged against the clock at
// execution time.
func NewGetOverdueAssignmentsQuery() GetOverdueAssignmentsQuery {
	return GetOverdueAssignmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueAssignmentsQueryIsNotConstructed if validation fails.
func (q GetOverdueAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueAssignmentsQueryIsNotConstructed)
}

// GetOverdueAssignmentsQueryResponse is one overdue assignment with just
// enough context for an operator to chase it up.
type GetOverdueAssignmentsQueryResponse struct {
	ID                kernel.UUID
	OrderID           kernel.UUID
	RiderID           kernel.UUID
	Status            assignment.Status
	EstimatedDelivery time.Time
}

package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueAssignmentsQueryHandler finds assignments whose estimated
// delivery time has passed while they are still underway.
type GetOverdueAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueAssignmentsQueryHandler creates a handler for overdue
// assignment queries. Requires a GORM database connection.
func NewGetOverdueAssignmentsQueryHandler(db *gorm.DB) GetOverdueAssignmentsQueryHandler {
	return GetOverdueAssignmentsQueryHandler{db: db}
}

// Handle executes the query. Assignments without an estimated delivery time
// are never overdue; terminal assignments are done and excluded.
func (h GetOverdueAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueAssignmentsQuery,
) ([]GetOverdueAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			rider_id,
			status,
			estimated_delivery
		FROM assignments
		WHERE status IN (?, ?, ?)
		  AND estimated_delivery IS NOT NULL
		  AND estimated_delivery < ?
		ORDER BY estimated_delivery
	`, assignment.Assigned, assignment.PickedUp, assignment.InTransit, time.Now().UTC()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overdue := make([]GetOverdueAssignmentsQueryResponse, 0)

	for rows.Next() {
		var resp GetOverdueAssignmentsQueryResponse
		var id, orderID, riderID uuid.UUID
		var status int

		err = rows.Scan(&id, &orderID, &riderID, &status, &resp.EstimatedDelivery)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if resp.RiderID, err = kernel.UUIDFromBytes(riderID[:]); err != nil {
			return nil, err
		}
		resp.Status = assignment.Status(status)

		overdue = append(overdue, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}

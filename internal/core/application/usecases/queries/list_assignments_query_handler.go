package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAssignmentsQueryHandler reads assignment pages straight from the
// database, joining the order number and rider display fields the dashboard
// shows next to each assignment.
type ListAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewListAssignmentsQueryHandler creates a handler for assignment listings.
// Requires a GORM database connection for query execution.
func NewListAssignmentsQueryHandler(db *gorm.DB) ListAssignmentsQueryHandler {
	return ListAssignmentsQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted newest first by
// assignment time; the total counts all rows matching the filter, not just
// the returned page.
func (h ListAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query ListAssignmentsQuery,
) (ListAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListAssignmentsQueryResponse{}, err
	}

	where := " WHERE 1=1"
	args := make([]any, 0, 4)

	filter := query.Filter()
	if filter.Status != nil {
		where += " AND a.status = ?"
		args = append(args, *filter.Status)
	}
	if filter.RiderID != nil {
		where += " AND a.rider_id = ?"
		args = append(args, filter.RiderID.Bytes())
	}
	if filter.DateFrom != nil {
		where += " AND a.assigned_at >= ?"
		args = append(args, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		where += " AND a.assigned_at <= ?"
		args = append(args, *filter.DateTo)
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM assignments a"+where, args...,
	).Scan(&total).Error
	if err != nil {
		return ListAssignmentsQueryResponse{}, err
	}

	pageArgs := append(args, query.Limit(), (query.Page()-1)*query.Limit())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.order_id,
			o.order_number,
			a.rider_id,
			r.full_name,
			r.vehicle_type,
			a.status,
			a.priority,
			a.delivery_fee,
			a.estimated_delivery,
			a.assigned_by,
			a.assigned_at,
			a.updated_at
		FROM assignments a
		JOIN orders o ON o.id = a.order_id
		JOIN riders r ON r.id = a.rider_id
	`+where+`
		ORDER BY a.assigned_at DESC, a.id
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListAssignmentsQueryResponse{}, err
	}
	defer rows.Close()

	assignments := make([]AssignmentSummary, 0, query.Limit())

	for rows.Next() {
		var summary AssignmentSummary
		var id, orderID, riderID uuid.UUID
		var status, priority int
		var estimatedDelivery sql.NullTime

		err = rows.Scan(
			&id,
			&orderID,
			&summary.OrderNumber,
			&riderID,
			&summary.RiderName,
			&summary.RiderVehicleType,
			&status,
			&priority,
			&summary.DeliveryFee,
			&estimatedDelivery,
			&summary.AssignedBy,
			&summary.AssignedAt,
			&summary.UpdatedAt,
		)
		if err != nil {
			return ListAssignmentsQueryResponse{}, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListAssignmentsQueryResponse{}, err
		}
		if summary.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return ListAssignmentsQueryResponse{}, err
		}
		if summary.RiderID, err = kernel.UUIDFromBytes(riderID[:]); err != nil {
			return ListAssignmentsQueryResponse{}, err
		}

		summary.Status = assignment.Status(status)
		summary.Priority = assignment.Priority(priority)
		if estimatedDelivery.Valid {
			estimated := estimatedDelivery.Time
			summary.EstimatedDelivery = &estimated
		}

		assignments = append(assignments, summary)
	}

	if err = rows.Err(); err != nil {
		return ListAssignmentsQueryResponse{}, err
	}

	return ListAssignmentsQueryResponse{
		Assignments: assignments,
		Total:       total,
		Page:        query.Page(),
		Limit:       query.Limit(),
	}, nil
}

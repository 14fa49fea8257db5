package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAssignmentHistoryQueryHandler reads audit trail entries straight from
// the database.
type GetAssignmentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentHistoryQueryHandler creates a handler for audit trail
// queries. Requires a GORM database connection for query execution.
func NewGetAssignmentHistoryQueryHandler(db *gorm.DB) GetAssignmentHistoryQueryHandler {
	return GetAssignmentHistoryQueryHandler{db: db}
}

// Handle executes the audit trail query. Entries come back oldest first so
// the response reads as a timeline.
func (h GetAssignmentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentHistoryQuery,
) ([]GetAssignmentHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			old_status,
			new_status,
			changed_by,
			notes,
			created_at
		FROM assignment_status_history
		WHERE assignment_id = ?
		ORDER BY created_at, id
	`, query.AssignmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetAssignmentHistoryQueryResponse, 0)

	for rows.Next() {
		var entry GetAssignmentHistoryQueryResponse
		var id uuid.UUID
		var oldStatus sql.NullInt64
		var newStatus int

		err = rows.Scan(
			&id,
			&oldStatus,
			&newStatus,
			&entry.ChangedBy,
			&entry.Notes,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		if oldStatus.Valid {
			old := assignment.Status(oldStatus.Int64)
			entry.OldStatus = &old
		}
		entry.NewStatus = assignment.Status(newStatus)

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

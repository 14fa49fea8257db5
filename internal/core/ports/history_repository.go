package ports

import (
	"context"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"
)

// HistoryRepository defines the persistence contract for the assignment
// audit trail. The trail is append-only; there is no update or delete.
type HistoryRepository interface {
	// Add persists a new history entry.
	Add(ctx context.Context, entry *history.Entry) error

	// GetByAssignmentID retrieves all entries for an assignment, oldest
	// first.
	GetByAssignmentID(ctx context.Context, assignmentID kernel.UUID) ([]*history.Entry, error)
}

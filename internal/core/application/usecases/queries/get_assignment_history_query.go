package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAssignmentHistoryQueryIsNotConstructed = errors.New(
	"GetAssignmentHistoryQuery must be created via NewGetAssignmentHistoryQuery constructor",
)

// GetAssignmentHistoryQuery retrieves the audit trail of one assignment,
// oldest entry first. The trail survives assignment deletion, so entries may
// exist for assignments that no longer do.
type GetAssignmentHistoryQuery struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignmentHistoryQuery creates an audit trail query for the given
// assignment. Returns an error if the ID is invalid.
func NewGetAssignmentHistoryQuery(assignmentID kernel.UUID) (GetAssignmentHistoryQuery, error) {
	if err := assignmentID.Validate(); err != nil {
		return GetAssignmentHistoryQuery{}, err
	}

	return GetAssignmentHistoryQuery{
		assignmentID: assignmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAssignmentHistoryQueryIsNotConstructed if validation fails.
func (q GetAssignmentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentHistoryQueryIsNotConstructed)
}

// AssignmentID returns the identifier of the assignment whose trail is read.
func (q GetAssignmentHistoryQuery) AssignmentID() kernel.UUID {
	return q.assignmentID
}

// GetAssignmentHistoryQueryResponse is one audit trail entry. OldStatus is
// nil for the entry written at assignment creation.
type GetAssignmentHistoryQueryResponse struct {
	ID        kernel.UUID
	OldStatus *assignment.Status
	NewStatus assignment.Status
	ChangedBy string
	Notes     string
	CreatedAt time.Time
}

package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrUpdateAssignmentStatusCommandIsNotConstructed = errors.New(
		"UpdateAssignmentStatusCommand must be created via NewUpdateAssignmentStatusCommand constructor",
	)
	ErrChangedByIsRequired = errors.New("changed by is required")
)

// UpdateAssignmentStatusCommand represents a request to move an assignment to
// another lifecycle status, optionally updating the delivery notes, failure
// reason or proof of delivery alongside.
type UpdateAssignmentStatusCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	targetStatus assignment.Status
	changedBy    string
	change       assignment.StatusChange

	guard guard.ConstructorGuard
}

// NewUpdateAssignmentStatusCommand creates a command to change an assignment's
// status. Validates the assignment ID, the target status and the acting
// operator. Returns an error if any validation fails.
func NewUpdateAssignmentStatusCommand(
	assignmentID kernel.UUID,
	targetStatus assignment.Status,
	changedBy string,
	change assignment.StatusChange,
) (UpdateAssignmentStatusCommand, error) {
	updateCommand := UpdateAssignmentStatusCommand{
		change: change,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setAssignmentID(assignmentID),
		updateCommand.setTargetStatus(targetStatus),
		updateCommand.setChangedBy(changedBy),
	); err != nil {
		return UpdateAssignmentStatusCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateAssignmentStatusCommandIsNotConstructed if validation fails.
func (c UpdateAssignmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAssignmentStatusCommandIsNotConstructed)
}

// AssignmentID returns the identifier of the assignment to update.
func (c UpdateAssignmentStatusCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// TargetStatus returns the status the assignment should move to.
func (c UpdateAssignmentStatusCommand) TargetStatus() assignment.Status {
	return c.targetStatus
}

// ChangedBy returns the operator identity making the change.
func (c UpdateAssignmentStatusCommand) ChangedBy() string {
	return c.changedBy
}

// Change returns the optional field updates accompanying the status change.
func (c UpdateAssignmentStatusCommand) Change() assignment.StatusChange {
	return c.change
}

func (c *UpdateAssignmentStatusCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *UpdateAssignmentStatusCommand) setTargetStatus(targetStatus assignment.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}

	c.targetStatus = targetStatus
	return nil
}

func (c *UpdateAssignmentStatusCommand) setChangedBy(changedBy string) error {
	if changedBy == "" {
		return ErrChangedByIsRequired
	}

	c.changedBy = changedBy
	return nil
}

package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateAssignmentCommandIsNotConstructed = errors.New(
		"CreateAssignmentCommand must be created via NewCreateAssignmentCommand constructor",
	)
	ErrAssignedByIsRequired = errors.New("assigned by is required")
)

// CreateAssignmentCommand represents a request to assign an order to a rider.
// Encapsulates the order and rider identities, the acting operator and the
// optional delivery details captured at assignment time.
//
// Example:
//
//	cmd, err := NewCreateAssignmentCommand(orderID, riderID, "dispatcher@example.com", assignment.Details{
//	    Priority:      assignment.PriorityHigh,
//	    DeliveryNotes: "ring the bell twice",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid assignment data: %w", err)
//	}
//
//	handler := NewCreateAssignmentCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateAssignmentCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	riderID    kernel.UUID
	assignedBy string
	details    assignment.Details

	guard guard.ConstructorGuard
}

// NewCreateAssignmentCommand creates a command to assign an order to a rider.
// Validates that both IDs are valid and the acting operator is named.
// Returns an error if any validation fails.
func NewCreateAssignmentCommand(
	orderID kernel.UUID,
	riderID kernel.UUID,
	assignedBy string,
	details assignment.Details,
) (CreateAssignmentCommand, error) {
	createCommand := CreateAssignmentCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		createCommand.setOrderID(orderID),
		createCommand.setRiderID(riderID),
		createCommand.setAssignedBy(assignedBy),
	); err != nil {
		return CreateAssignmentCommand{}, err
	}

	return createCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAssignmentCommandIsNotConstructed if validation fails.
func (c CreateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssignmentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c CreateAssignmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RiderID returns the identifier of the rider taking the delivery.
func (c CreateAssignmentCommand) RiderID() kernel.UUID {
	return c.riderID
}

// AssignedBy returns the operator identity making the assignment.
func (c CreateAssignmentCommand) AssignedBy() string {
	return c.assignedBy
}

// Details returns the optional delivery details captured at assignment time.
func (c CreateAssignmentCommand) Details() assignment.Details {
	return c.details
}

func (c *CreateAssignmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateAssignmentCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *CreateAssignmentCommand) setAssignedBy(assignedBy string) error {
	if assignedBy == "" {
		return ErrAssignedByIsRequired
	}

	c.assignedBy = assignedBy
	return nil
}

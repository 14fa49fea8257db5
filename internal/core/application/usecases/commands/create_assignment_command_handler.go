package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// ErrRiderUnavailable is returned when the requested rider is off duty or
// deactivated and must not receive new assignments.
var ErrRiderUnavailable = errors.New("rider is not available for new assignments")

// CreateAssignmentCommandHandler handles the business logic for assigning an
// order to a rider. Enforces the one-active-assignment-per-order rule and the
// rider availability check, moves the order to dispatched_to_rider, and writes
// the first audit trail entry, all inside one transaction.
//
// Example:
//
//	handler := NewCreateAssignmentCommandHandler(uowFactory)
//	cmd, _ := NewCreateAssignmentCommand(orderID, riderID, "dispatcher@example.com", assignment.Details{})
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
//	fmt.Printf("assignment %s created", created.ID())
type CreateAssignmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateAssignmentCommandHandler creates a handler for assignment creation.
// Requires a UoWFactory for transactional persistence.
func NewCreateAssignmentCommandHandler(uowFactory UoWFactory) CreateAssignmentCommandHandler {
	return CreateAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment creation command and returns the created
// aggregate.
//
// Flow: load the order, reject if another assignment still blocks it, load the
// rider and check availability, insert the assignment in assigned status, move
// the order to dispatched_to_rider and record the creation history entry. The
// conflict check is repeated by the database through a partial unique index,
// so two concurrent creates for one order cannot both commit.
func (h *CreateAssignmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateAssignmentCommand,
) (*assignment.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()
	orderRepo := uow.OrderRepository()
	riderRepo := uow.RiderRepository()
	historyRepo := uow.HistoryRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	active, err := assignmentRepo.GetActiveByOrderID(ctx, cmd.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if active != nil {
		return nil, fmt.Errorf("%w: assignment %s is %s",
			ports.ErrActiveAssignmentExists, active.ID(), active.Status())
	}

	rdr, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return nil, err
	}
	if !rdr.IsAvailable() {
		return nil, fmt.Errorf("%w: rider %s is %s",
			ErrRiderUnavailable, rdr.FullName(), rdr.Status())
	}

	created, err := assignment.NewAssignment(
		kernel.NewUUID(), cmd.OrderID(), cmd.RiderID(),
		cmd.AssignedBy(), cmd.Details(), time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = assignmentRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	ord.DispatchToRider()
	if err = orderRepo.Update(ctx, ord); err != nil {
		return nil, err
	}

	entry, err := history.NewEntry(
		created.ID(), nil, created.Status(),
		cmd.AssignedBy(), cmd.Details().DeliveryNotes, created.AssignedAt(),
	)
	if err != nil {
		return nil, err
	}

	if err = historyRepo.Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

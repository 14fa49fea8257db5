package commands

import (
	"context"
	"errors"
	"fmt"
)

// ErrAssignmentInProgress is returned when deleting an assignment that is
// in transit or already delivered. Those records must be failed or kept.
var ErrAssignmentInProgress = errors.New("assignment cannot be deleted in its current status")

// DeleteAssignmentCommandHandler handles assignment deletion. Removes the
// assignment row, sends the order back to processing and leaves the audit
// trail untouched, all inside one transaction.
type DeleteAssignmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteAssignmentCommandHandler creates a handler for assignment deletion.
// Requires a UoWFactory for transactional persistence.
func NewDeleteAssignmentCommandHandler(uowFactory UoWFactory) DeleteAssignmentCommandHandler {
	return DeleteAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command. Rejects assignments that are in
// transit or delivered.
func (h *DeleteAssignmentCommandHandler) Handle(ctx context.Context, cmd DeleteAssignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()
	orderRepo := uow.OrderRepository()

	doomed, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	if !doomed.IsDeletable() {
		return fmt.Errorf("%w: assignment %s is %s",
			ErrAssignmentInProgress, doomed.ID(), doomed.Status())
	}

	if err = assignmentRepo.Delete(ctx, doomed.ID()); err != nil {
		return err
	}

	ord, err := orderRepo.Get(ctx, doomed.OrderID())
	if err != nil {
		return err
	}

	ord.RevertToProcessing()
	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/history"
)

// UpdateAssignmentStatusCommandHandler handles assignment status changes.
// Applies the state machine under the configured transition policy, persists
// the assignment, mirrors the change onto the order where the status demands
// it, and appends the audit trail entry, all inside one transaction.
type UpdateAssignmentStatusCommandHandler struct {
	uowFactory UoWFactory
	policy     assignment.TransitionPolicy
}

// NewUpdateAssignmentStatusCommandHandler creates a handler for status change
// operations. The policy decides whether out-of-order transitions are
// tolerated (permissive, the default) or rejected (strict).
func NewUpdateAssignmentStatusCommandHandler(
	uowFactory UoWFactory,
	policy assignment.TransitionPolicy,
) UpdateAssignmentStatusCommandHandler {
	return UpdateAssignmentStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the status change command and returns the updated
// aggregate.
//
// The order coupling follows the target status alone: delivered marks the
// order delivered, failed reverts it to processing, every other status leaves
// the order untouched.
func (h *UpdateAssignmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateAssignmentStatusCommand,
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
	historyRepo := uow.HistoryRepository()

	updated, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return nil, err
	}

	previousStatus := updated.Status()

	if err = updated.ChangeStatus(cmd.TargetStatus(), cmd.Change(), time.Now().UTC(), h.policy); err != nil {
		return nil, err
	}

	if err = assignmentRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	switch updated.Status().OrderEffect() {
	case assignment.EffectOrderDelivered:
		ord, getErr := orderRepo.Get(ctx, updated.OrderID())
		if getErr != nil {
			return nil, getErr
		}
		ord.MarkDelivered()
		if err = orderRepo.Update(ctx, ord); err != nil {
			return nil, err
		}
	case assignment.EffectOrderProcessing:
		ord, getErr := orderRepo.Get(ctx, updated.OrderID())
		if getErr != nil {
			return nil, getErr
		}
		ord.RevertToProcessing()
		if err = orderRepo.Update(ctx, ord); err != nil {
			return nil, err
		}
	case assignment.EffectNone:
	}

	entry, err := history.NewEntry(
		updated.ID(), &previousStatus, updated.Status(),
		cmd.ChangedBy(), cmd.Change().DeliveryNotes, updated.UpdatedAt(),
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

	return updated, nil
}

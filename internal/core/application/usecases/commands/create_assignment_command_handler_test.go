package commands_test

import (
	"errors"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/rider"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, id kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(id, "ORD-2024-00042", status,
		"Jamie Doe", "+31611111111", "Keizersgracht 1, Amsterdam")
	require.NoError(t, err)
	return o
}

func newTestRider(t *testing.T, id kernel.UUID, status rider.Status) *rider.Rider {
	t.Helper()

	r, err := rider.RestoreRider(id, "Alex Kim", "+31622222222", "bicycle", status)
	require.NoError(t, err)
	return r
}

func TestCreateAssignmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	cmd, err := commands.NewCreateAssignmentCommand(orderID, riderID, "dispatcher@example.com",
		assignment.Details{Priority: assignment.PriorityHigh, DeliveryNotes: "ring twice"})
	require.NoError(t, err)

	testOrder := newTestOrder(t, orderID, order.Processing)
	testRider := newTestRider(t, riderID, rider.Active)

	assignmentRepo := new(MockAssignmentRepository)
	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		assignmentRepo.On("GetActiveByOrderID", ctx, orderID).Return(nil, errs.ErrObjectNotFound).Once(),
		riderRepo.On("Get", ctx, riderID).Return(testRider, nil).Once(),
		assignmentRepo.On("Add", ctx, mock.AnythingOfType("*assignment.Assignment")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		historyRepo.On("Add", ctx, mock.AnythingOfType("*history.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateAssignmentCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, orderID, created.OrderID())
	assert.Equal(t, riderID, created.RiderID())
	assert.Equal(t, assignment.Assigned, created.Status())
	assert.Equal(t, assignment.PriorityHigh, created.Priority())

	// The order leaves processing inside the same transaction.
	updatedOrder := orderRepo.Calls[1].Arguments[1].(*order.Order)
	assert.Equal(t, order.DispatchedToRider, updatedOrder.Status())

	// The creation entry has no previous status.
	entry := historyRepo.Calls[0].Arguments[1].(*history.Entry)
	assert.Nil(t, entry.OldStatus())
	assert.Equal(t, assignment.Assigned, entry.NewStatus())
	assert.Equal(t, "dispatcher@example.com", entry.ChangedBy())

	assignmentRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	riderRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateAssignmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateAssignmentCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewCreateAssignmentCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateAssignmentCommandIsNotConstructed)
	assert.Nil(t, created)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateAssignmentCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateAssignmentCommand(orderID, kernel.NewUUID(),
		"dispatcher@example.com", assignment.Details{})
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateAssignmentCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, created)
}

func TestCreateAssignmentCommandHandler_Handle_ActiveAssignmentExists(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	cmd, err := commands.NewCreateAssignmentCommand(orderID, riderID,
		"dispatcher@example.com", assignment.Details{})
	require.NoError(t, err)

	testOrder := newTestOrder(t, orderID, order.DispatchedToRider)
	existing, err := assignment.NewAssignment(kernel.NewUUID(), orderID, kernel.NewUUID(),
		"dispatcher@example.com", assignment.Details{}, time.Now().UTC())
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		assignmentRepo.On("GetActiveByOrderID", ctx, orderID).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateAssignmentCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, ports.ErrActiveAssignmentExists)
	assert.Contains(t, err.Error(), existing.ID().String())
	assert.Nil(t, created)
}

func TestCreateAssignmentCommandHandler_Handle_RiderUnavailable(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	cmd, err := commands.NewCreateAssignmentCommand(orderID, riderID,
		"dispatcher@example.com", assignment.Details{})
	require.NoError(t, err)

	testOrder := newTestOrder(t, orderID, order.Processing)
	testRider := newTestRider(t, riderID, rider.OffDuty)

	assignmentRepo := new(MockAssignmentRepository)
	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		assignmentRepo.On("GetActiveByOrderID", ctx, orderID).Return(nil, errs.ErrObjectNotFound).Once(),
		riderRepo.On("Get", ctx, riderID).Return(testRider, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateAssignmentCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRiderUnavailable)
	assert.Contains(t, err.Error(), "off_duty")
	assert.Nil(t, created)
}

func TestCreateAssignmentCommandHandler_Handle_InsertConflict(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	cmd, err := commands.NewCreateAssignmentCommand(orderID, riderID,
		"dispatcher@example.com", assignment.Details{})
	require.NoError(t, err)

	testOrder := newTestOrder(t, orderID, order.Processing)
	testRider := newTestRider(t, riderID, rider.Active)

	assignmentRepo := new(MockAssignmentRepository)
	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockUoW)

	// A concurrent create won the race between the guard read and the insert;
	// the partial unique index reports it through Add.
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		assignmentRepo.On("GetActiveByOrderID", ctx, orderID).Return(nil, errs.ErrObjectNotFound).Once(),
		riderRepo.On("Get", ctx, riderID).Return(testRider, nil).Once(),
		assignmentRepo.On("Add", ctx, mock.AnythingOfType("*assignment.Assignment")).
			Return(ports.ErrActiveAssignmentExists).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateAssignmentCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, ports.ErrActiveAssignmentExists)
	assert.Nil(t, created)
}

func TestCreateAssignmentCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateAssignmentCommand(kernel.NewUUID(), kernel.NewUUID(),
		"dispatcher@example.com", assignment.Details{})
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateAssignmentCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
	assert.Nil(t, created)
}

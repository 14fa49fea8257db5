package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateAssignmentCommand(t *testing.T) {
	t.Run("creates a valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		riderID := kernel.NewUUID()
		details := assignment.Details{
			Priority:      assignment.PriorityHigh,
			DeliveryNotes: "leave at the door",
		}

		cmd, err := commands.NewCreateAssignmentCommand(orderID, riderID, "dispatcher@example.com", details)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, riderID, cmd.RiderID())
		assert.Equal(t, "dispatcher@example.com", cmd.AssignedBy())
		assert.Equal(t, details, cmd.Details())
	})

	t.Run("returns an error when order ID is empty", func(t *testing.T) {
		_, err := commands.NewCreateAssignmentCommand(
			kernel.UUID{}, kernel.NewUUID(), "dispatcher@example.com", assignment.Details{})

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("returns an error when rider ID is empty", func(t *testing.T) {
		_, err := commands.NewCreateAssignmentCommand(
			kernel.NewUUID(), kernel.UUID{}, "dispatcher@example.com", assignment.Details{})

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("returns an error when assigned by is empty", func(t *testing.T) {
		_, err := commands.NewCreateAssignmentCommand(
			kernel.NewUUID(), kernel.NewUUID(), "", assignment.Details{})

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrAssignedByIsRequired)
	})

	t.Run("zero-value command fails validation", func(t *testing.T) {
		cmd := commands.CreateAssignmentCommand{}

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateAssignmentCommandIsNotConstructed)
	})
}

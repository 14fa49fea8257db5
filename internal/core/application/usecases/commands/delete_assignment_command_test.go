package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteAssignmentCommand(t *testing.T) {
	t.Run("creates a valid command", func(t *testing.T) {
		assignmentID := kernel.NewUUID()

		cmd, err := commands.NewDeleteAssignmentCommand(assignmentID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, assignmentID, cmd.AssignmentID())
	})

	t.Run("returns an error when assignment ID is empty", func(t *testing.T) {
		_, err := commands.NewDeleteAssignmentCommand(kernel.UUID{})

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero-value command fails validation", func(t *testing.T) {
		cmd := commands.DeleteAssignmentCommand{}

		assert.ErrorIs(t, cmd.Validate(), commands.ErrDeleteAssignmentCommandIsNotConstructed)
	})
}

package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreOrder(t *testing.T) {
	t.Run("reconstructs a valid order projection", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.RestoreOrder(id, "ORD-2024-00042", order.Processing,
			"Jamie Doe", "+31611111111", "Keizersgracht 1, Amsterdam")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, id, o.ID())
		assert.Equal(t, "ORD-2024-00042", o.OrderNumber())
		assert.Equal(t, order.Processing, o.Status())
		assert.Equal(t, "Jamie Doe", o.CustomerName())
		assert.Equal(t, "+31611111111", o.CustomerPhone())
		assert.Equal(t, "Keizersgracht 1, Amsterdam", o.ShippingAddress())
	})

	t.Run("returns an error when ID is empty", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.UUID{}, "ORD-1", order.Processing, "", "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("returns an error when order number is empty", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "", order.Processing, "", "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderNumberIsRequired)
	})

	t.Run("returns an error when status is invalid", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "ORD-1", order.Unknown, "", "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("returns an error for a nil order", func(t *testing.T) {
		var o *order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("returns an error for a zero-value order", func(t *testing.T) {
		o := &order.Order{}

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_StatusTransitions(t *testing.T) {
	restore := func(t *testing.T, status order.Status) *order.Order {
		t.Helper()

		o, err := order.RestoreOrder(kernel.NewUUID(), "ORD-7", status, "", "", "")
		require.NoError(t, err)
		return o
	}

	t.Run("DispatchToRider moves the order out of processing", func(t *testing.T) {
		o := restore(t, order.Processing)

		o.DispatchToRider()

		assert.Equal(t, order.DispatchedToRider, o.Status())
	})

	t.Run("MarkDelivered completes the order", func(t *testing.T) {
		o := restore(t, order.DispatchedToRider)

		o.MarkDelivered()

		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("RevertToProcessing sends the order back for re-triage", func(t *testing.T) {
		o := restore(t, order.DispatchedToRider)

		o.RevertToProcessing()

		assert.Equal(t, order.Processing, o.Status())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "processing", order.Processing.String())
	assert.Equal(t, "dispatched_to_rider", order.DispatchedToRider.String())
	assert.Equal(t, "delivered", order.Delivered.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(9).String())
}

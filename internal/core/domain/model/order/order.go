package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the RestoreOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")

	// ErrOrderNumberIsRequired is returned when the human-readable order
	// number is missing.
	ErrOrderNumberIsRequired = errors.New("order number is required")
)

// Order is this core's view of a storefront order: its identity, the
// human-readable order number, a mutable status restricted to the subset in
// this package, and read-only contact metadata used for list display.
//
// Orders are never created here; RestoreOrder only reconstructs records the
// storefront already owns.
type Order struct {
	id          kernel.UUID
	orderNumber string
	status      Status

	// Read-only shipping/contact metadata; carried for display, never
	// written back.
	customerName    string
	customerPhone   string
	shippingAddress string

	guard guard.ConstructorGuard
}

// RestoreOrder reconstructs an order projection from the order store.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	status Status,
	customerName string,
	customerPhone string,
	shippingAddress string,
) (*Order, error) {
	o := &Order{
		customerName:    customerName,
		customerPhone:   customerPhone,
		shippingAddress: shippingAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built through RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Status returns the current order status.
func (o *Order) Status() Status {
	return o.status
}

// CustomerName returns the read-only customer name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the read-only customer phone number.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// ShippingAddress returns the read-only shipping address.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// DispatchToRider marks the order as handed to a rider. Applied when an
// assignment is created for it.
func (o *Order) DispatchToRider() {
	o.status = DispatchedToRider
}

// MarkDelivered marks the order as delivered. Applied when its assignment
// reaches the delivered status.
func (o *Order) MarkDelivered() {
	o.status = Delivered
}

// RevertToProcessing sends the order back for re-triage. Applied when its
// assignment fails or is deleted.
func (o *Order) RevertToProcessing() {
	o.status = Processing
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

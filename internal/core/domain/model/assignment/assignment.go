package assignment

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment instance was
	// not created through NewAssignment or RestoreAssignment.
	ErrAssignmentIsNotConstructed = errors.New(
		"Assignment must be created via NewAssignment or RestoreAssignment constructor",
	)

	// ErrAssignedByIsRequired is returned when the authorizing caller identity
	// is missing.
	ErrAssignedByIsRequired = errors.New("assignedBy is required")
)

// TransitionPolicy selects how strictly ChangeStatus validates transitions.
type TransitionPolicy int

const (
	// PolicyPermissive accepts any valid status as a transition target and
	// derives side effects from the target alone. This is the default: it
	// tolerates out-of-order status reports from the field, such as a rider
	// confirming delivery without the app ever recording pickup.
	PolicyPermissive TransitionPolicy = iota

	// PolicyStrict enforces the forward-only transition graph; see
	// Status.CanTransitionTo.
	PolicyStrict
)

// Details carries the optional attributes accepted at assignment creation.
type Details struct {
	Priority          Priority
	DeliveryNotes     string
	DeliveryFee       decimal.Decimal
	EstimatedDelivery *time.Time
}

// StatusChange carries the optional attributes accepted alongside a status
// transition. Empty strings leave the corresponding field unchanged;
// FailureReason is only stored when the target status is Failed.
type StatusChange struct {
	DeliveryNotes   string
	FailureReason   string
	ProofOfDelivery string
}

// Snapshot is the full persisted state of an assignment, used by
// RestoreAssignment when reconstructing the aggregate from storage.
type Snapshot struct {
	DeliveryNotes     string
	ProofOfDelivery   string
	FailureReason     string
	DeliveryFee       decimal.Decimal
	EstimatedDelivery *time.Time
	AssignedAt        time.Time
	PickedUpAt        *time.Time
	InTransitAt       *time.Time
	DeliveredAt       *time.Time
	FailedAt          *time.Time
	UpdatedAt         time.Time
}

// Assignment is the aggregate root binding one order to one rider for
// delivery.
//
// Assignment maintains these invariants:
//   - it references exactly one order and exactly one rider
//   - its status is one of the six lifecycle values, starting at Assigned
//   - stage timestamps (pickedUpAt, inTransitAt, deliveredAt, failedAt) are
//     set exactly once, the first time the corresponding status is reached,
//     and never cleared or overwritten
//   - failureReason is only populated on a Failed transition
//   - it records the identity of the caller that authorized it
//
// The single-active-assignment-per-order invariant spans aggregates and is
// enforced by the persistence layer.
type Assignment struct {
	id      kernel.UUID
	orderID kernel.UUID
	riderID kernel.UUID

	status   Status
	priority Priority

	deliveryNotes     string
	deliveryFee       decimal.Decimal
	estimatedDelivery *time.Time
	proofOfDelivery   string
	failureReason     string

	assignedBy string

	assignedAt  time.Time
	pickedUpAt  *time.Time
	inTransitAt *time.Time
	deliveredAt *time.Time
	failedAt    *time.Time
	updatedAt   time.Time

	guard guard.ConstructorGuard
}

// NewAssignment creates a new Assignment in Assigned status. This is the only
// way a fresh assignment comes into existence; transitions happen exclusively
// through ChangeStatus afterwards.
//
// A zero Details.Priority defaults to PriorityNormal. assignedBy is the
// identity of the authorizing caller and is required.
func NewAssignment(
	id kernel.UUID,
	orderID kernel.UUID,
	riderID kernel.UUID,
	assignedBy string,
	details Details,
	at time.Time,
) (*Assignment, error) {
	if details.Priority == PriorityUnknown {
		details.Priority = PriorityNormal
	}

	a := &Assignment{
		status:            Assigned,
		deliveryNotes:     details.DeliveryNotes,
		deliveryFee:       details.DeliveryFee,
		estimatedDelivery: details.EstimatedDelivery,
		assignedAt:        at,
		updatedAt:         at,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setRiderID(riderID),
		a.setAssignedBy(assignedBy),
		a.setPriority(details.Priority),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an Assignment from persisted state. It
// validates identities and enum values but performs no transition checks:
// whatever state was persisted is taken as-is.
func RestoreAssignment(
	id kernel.UUID,
	orderID kernel.UUID,
	riderID kernel.UUID,
	status Status,
	priority Priority,
	assignedBy string,
	snapshot Snapshot,
) (*Assignment, error) {
	a := &Assignment{
		deliveryNotes:     snapshot.DeliveryNotes,
		deliveryFee:       snapshot.DeliveryFee,
		estimatedDelivery: snapshot.EstimatedDelivery,
		proofOfDelivery:   snapshot.ProofOfDelivery,
		failureReason:     snapshot.FailureReason,
		assignedAt:        snapshot.AssignedAt,
		pickedUpAt:        snapshot.PickedUpAt,
		inTransitAt:       snapshot.InTransitAt,
		deliveredAt:       snapshot.DeliveredAt,
		failedAt:          snapshot.FailedAt,
		updatedAt:         snapshot.UpdatedAt,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setRiderID(riderID),
		a.setAssignedBy(assignedBy),
		a.setPriority(priority),
		a.setStatus(status),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Assignment was built through a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// ChangeStatus transitions the assignment to the target status and applies
// the timestamp side effects for it.
//
// Under PolicyPermissive any of the six valid statuses is accepted as target,
// regardless of the current state; side effects depend solely on the target.
// Under PolicyStrict the transition must be a legal edge of the forward-only
// graph.
//
// Side effects are idempotent with respect to timestamps: a stage timestamp
// already set is never overwritten, no matter how often or in which order the
// status is reported. FailureReason from change is stored only when the
// target is Failed; DeliveryNotes and ProofOfDelivery are updated whenever
// provided.
func (a *Assignment) ChangeStatus(target Status, change StatusChange, at time.Time, policy TransitionPolicy) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if policy == PolicyStrict && !a.status.CanTransitionTo(target) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("transition from %s to %s is not allowed", a.status, target),
		)
	}

	switch target {
	case PickedUp:
		if a.pickedUpAt == nil {
			a.pickedUpAt = &at
		}
	case InTransit:
		if a.inTransitAt == nil {
			a.inTransitAt = &at
		}
	case Delivered:
		if a.deliveredAt == nil {
			a.deliveredAt = &at
		}
	case Failed:
		if a.failedAt == nil {
			a.failedAt = &at
		}
		if change.FailureReason != "" {
			a.failureReason = change.FailureReason
		}
	}

	if change.DeliveryNotes != "" {
		a.deliveryNotes = change.DeliveryNotes
	}
	if change.ProofOfDelivery != "" {
		a.proofOfDelivery = change.ProofOfDelivery
	}

	a.status = target
	a.updatedAt = at
	return nil
}

// IsDeletable reports whether the assignment may be removed: an assignment
// actively in progress (InTransit) or already completed (Delivered) cannot be
// deleted.
func (a *Assignment) IsDeletable() bool {
	return a.status != InTransit && a.status != Delivered
}

// IsEqual compares two assignments by identity.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the identifier of the linked order.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// RiderID returns the identifier of the assigned rider.
func (a *Assignment) RiderID() kernel.UUID {
	return a.riderID
}

// Status returns the current lifecycle status.
func (a *Assignment) Status() Status {
	return a.status
}

// Priority returns the assignment priority.
func (a *Assignment) Priority() Priority {
	return a.priority
}

// DeliveryNotes returns the free-form notes for the rider.
func (a *Assignment) DeliveryNotes() string {
	return a.deliveryNotes
}

// DeliveryFee returns the fee charged for this delivery.
func (a *Assignment) DeliveryFee() decimal.Decimal {
	return a.deliveryFee
}

// EstimatedDelivery returns the expected delivery time, nil when unset.
func (a *Assignment) EstimatedDelivery() *time.Time {
	return a.estimatedDelivery
}

// ProofOfDelivery returns the recorded proof of delivery, empty when unset.
func (a *Assignment) ProofOfDelivery() string {
	return a.proofOfDelivery
}

// FailureReason returns the recorded failure reason, empty unless the
// assignment has failed.
func (a *Assignment) FailureReason() string {
	return a.failureReason
}

// AssignedBy returns the identity of the caller that created the assignment.
func (a *Assignment) AssignedBy() string {
	return a.assignedBy
}

// AssignedAt returns the creation time.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// PickedUpAt returns when the order was first reported picked up, nil if never.
func (a *Assignment) PickedUpAt() *time.Time {
	return a.pickedUpAt
}

// InTransitAt returns when the order first went in transit, nil if never.
func (a *Assignment) InTransitAt() *time.Time {
	return a.inTransitAt
}

// DeliveredAt returns when the order was first reported delivered, nil if never.
func (a *Assignment) DeliveredAt() *time.Time {
	return a.deliveredAt
}

// FailedAt returns when the assignment first failed, nil if never.
func (a *Assignment) FailedAt() *time.Time {
	return a.failedAt
}

// UpdatedAt returns the time of the last mutation.
func (a *Assignment) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}

func (a *Assignment) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	a.riderID = riderID
	return nil
}

func (a *Assignment) setAssignedBy(assignedBy string) error {
	if assignedBy == "" {
		return ErrAssignedByIsRequired
	}
	a.assignedBy = assignedBy
	return nil
}

func (a *Assignment) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	a.priority = priority
	return nil
}

func (a *Assignment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}

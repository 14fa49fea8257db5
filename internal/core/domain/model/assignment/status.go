package assignment

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery assignment.
//
// State transitions (strict policy):
//
//	Assigned ──> PickedUp ──> InTransit ──> Delivered
//	    │            │            │
//	    └────────────┴────────────┴──> Failed / Returned
//
// Delivered, Failed and Returned are terminal. Under the permissive policy
// any valid status is accepted as a transition target; see
// Assignment.ChangeStatus.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Assigned is the initial status, produced only by assignment creation.
	Assigned

	// PickedUp indicates the rider has collected the order.
	PickedUp

	// InTransit indicates the rider is en route to the customer.
	InTransit

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Failed indicates the delivery attempt failed. Terminal; the linked
	// order reverts to processing for re-triage.
	Failed

	// Returned indicates the order came back undelivered. Terminal.
	Returned
)

// OrderEffect describes the order-status side effect a transition carries.
type OrderEffect int

const (
	// EffectNone leaves the linked order untouched.
	EffectNone OrderEffect = iota

	// EffectOrderDelivered marks the linked order delivered.
	EffectOrderDelivered

	// EffectOrderProcessing reverts the linked order to processing so it can
	// be re-triaged (typically reassigned to another rider).
	EffectOrderProcessing
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Failed:    "failed",
		Returned:  "returned",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Failed:    "failed",
		Returned:  "returned",
	}
}

// StatusFromString parses the wire representation of a status
// (e.g. "picked_up"). Returns a ValueIsInvalidError for anything outside the
// six valid values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid assignment status", s),
	)
}

// Validate checks that the Status is one of the six valid lifecycle values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status ("assigned",
// "picked_up", ...). Implements fmt.Stringer; safe on any value, returning
// "unknown" for invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further business-meaningful transition is
// expected from this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed || s == Returned
}

// BlocksNewAssignment reports whether an assignment in this status counts as
// active for the single-active-assignment invariant. Failed and returned
// assignments release the order for re-assignment; a delivered one does not
// (a delivered order is never reassigned).
func (s Status) BlocksNewAssignment() bool {
	return s != Failed && s != Returned
}

// CanTransitionTo reports whether the strict transition graph allows moving
// from s to target: each stage advances to the next one, any non-terminal
// stage may fail or be returned, terminal stages accept nothing.
func (s Status) CanTransitionTo(target Status) bool {
	if s.IsTerminal() {
		return false
	}
	if target == Failed || target == Returned {
		return true
	}

	switch s {
	case Assigned:
		return target == PickedUp
	case InTransit:
		return target == Delivered
	case PickedUp:
		return target == InTransit
	default:
		return false
	}
}

// OrderEffect returns the order-status side effect of reaching this status:
// delivered marks the order delivered, failed reverts it to processing,
// everything else leaves the order alone.
func (s Status) OrderEffect() OrderEffect {
	switch s {
	case Delivered:
		return EffectOrderDelivered
	case Failed:
		return EffectOrderProcessing
	default:
		return EffectNone
	}
}

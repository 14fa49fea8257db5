package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the subset of order statuses the dispatch core may read or write.
//
//	Processing ──> DispatchedToRider ──> Delivered
//	     ^                │
//	     └────────────────┘
//	 (failed delivery reverts for re-triage)
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Processing means the order awaits (re-)assignment to a rider.
	Processing

	// DispatchedToRider means an active assignment exists for the order.
	DispatchedToRider

	// Delivered means the order reached the customer.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "unknown",
		Processing:        "processing",
		DispatchedToRider: "dispatched_to_rider",
		Delivered:         "delivered",
	}
}

// Validate checks that the Status is one of the values this core may handle.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the wire representation of the status. Implements
// fmt.Stringer; returns "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

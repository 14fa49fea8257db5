package rider

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is a rider's duty status as recorded in the rider store.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Active means the rider is on duty and may take assignments.
	Active

	// OffDuty means the rider is temporarily unavailable.
	OffDuty

	// Inactive means the rider is deactivated and must not receive work.
	Inactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Active:   "active",
		OffDuty:  "off_duty",
		Inactive: "inactive",
	}
}

// StatusFromString parses the wire representation of a rider status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid rider status", s))
}

// Validate checks that the Status is one of the defined duty statuses.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid rider status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid rider status", s))
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

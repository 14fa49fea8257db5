package assignment

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Priority represents the urgency of a delivery assignment. It carries no
// lifecycle rules; dispatchers use it to order their work queues.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityLow is for deliveries without any time pressure.
	PriorityLow

	// PriorityNormal is the default for new assignments.
	PriorityNormal

	// PriorityHigh marks deliveries that should jump the queue.
	PriorityHigh

	// PriorityUrgent marks deliveries needing immediate attention.
	PriorityUrgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "unknown",
		PriorityLow:     "low",
		PriorityNormal:  "normal",
		PriorityHigh:    "high",
		PriorityUrgent:  "urgent",
	}
}

// PriorityFromString parses the wire representation of a priority. The empty
// string maps to PriorityNormal, matching the creation default.
func PriorityFromString(s string) (Priority, error) {
	if s == "" {
		return PriorityNormal, nil
	}
	for priority, str := range getPriorityStrings() {
		if priority != PriorityUnknown && str == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority",
		fmt.Errorf("%q is not a valid assignment priority", s),
	)
}

// Validate checks that the Priority is one of the four valid values.
func (p Priority) Validate() error {
	if p == PriorityUnknown {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the wire representation of the priority. Implements
// fmt.Stringer; returns "unknown" for invalid values.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "unknown"
}

package order

import (
	"fmt"

	"pocketmart/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a small
// state machine so that status changes follow the delivery workflow.
//
// State transitions:
//
//	Placed ──> On Way ──> Delivered
//
// The "On Way" transition happens only through the assignment workflow,
// and "Delivered" only through delivery completion.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status when a client places an order.
	Placed

	// OnWay indicates the order has been assigned to a delivery person
	// and is out for delivery.
	OnWay

	// Delivered indicates the order reached the client.
	// This is a final state with no further transitions.
	Delivered
)

// statusStrings maps statuses to their persisted representations.
// The strings match the values the store and API expose, including the
// space in "On Way".
func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Placed:    "Placed",
		OnWay:     "On Way",
		Delivered: "Delivered",
	}
}

// validStatusStrings excludes Unknown to support validation and parsing.
func validStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:    "Placed",
		OnWay:     "On Way",
		Delivered: "Delivered",
	}
}

// StatusFromString parses a persisted status value.
// Returns an error for anything that is not a valid status string.
func StatusFromString(s string) (Status, error) {
	for status, str := range validStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the persisted name of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Assign transitions the status to OnWay.
// Only a Placed order can be assigned; assigning an order that is already
// on its way or delivered is rejected, which (together with the uniqueness
// constraint on deliveries) forbids double assignment.
func (s Status) Assign() (Status, error) {
	if s != Placed {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot assign order in %q status", s))
	}
	return OnWay, nil
}

// Complete transitions the status to Delivered.
// Only an order on its way can be completed.
func (s Status) Complete() (Status, error) {
	if s != OnWay {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot complete order in %q status", s))
	}
	return Delivered, nil
}

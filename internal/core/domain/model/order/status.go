package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Open ──> Assigned ──> Completed
//	  ^         │
//	  └─────────┘
//	   (reversion)
//
// Completed is final. Reversion back to Open happens when a courier
// update shrinks its capacity below the assigned load.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Open is the initial status. Open orders are waiting for assignment.
	Open

	// Assigned indicates the order belongs to exactly one courier.
	Assigned

	// Completed indicates the order has been delivered. Final state.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Open:      "open",
		Assigned:  "assigned",
		Completed: "complete",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:      "open",
		Assigned:  "assigned",
		Completed: "complete",
	}
}

// StatusFromString parses a persisted status name.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", name))
}

// Validate checks that the status is one of Open, Assigned, Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
// Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateAssign checks that the status allows assignment without
// performing the transition. Only open orders may be assigned.
func (s Status) ValidateAssign() error {
	if s != Open {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to assign", s))
	}
	return nil
}

// ValidateCanHaveCourier validates the consistency between order status
// and courier linkage. Assigned and completed orders keep their courier,
// open orders must not have one.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != Assigned && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a courier", s))
	}

	if !courier && (s == Assigned || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no courier", s))
	}

	return nil
}

// Assign transitions Open -> Assigned.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return Unknown, err
	}

	return Assigned, nil
}

// Complete transitions Assigned -> Completed.
func (s Status) Complete() (Status, error) {
	if s != Assigned {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to complete", s))
	}

	return Completed, nil
}

// Reopen transitions Assigned -> Open. Used when an assignment is
// reverted; completed orders can never be reopened.
func (s Status) Reopen() (Status, error) {
	if s != Assigned {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to reopen", s))
	}

	return Open, nil
}

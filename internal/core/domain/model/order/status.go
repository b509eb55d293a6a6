package order

import (
	"fmt"

	"fleetdispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a cargo order.
//
// State transitions:
//
//	Pending ──> Loading ──> InTransit ──> Completed
//	   │           │            │
//	   └───────────┴────────────┴──> Cancelled
//
// Completed and Cancelled are terminal, immutable thereafter. An order enters
// Loading only through a successful assignment, which also stamps its start time.
type Status int

const (
	// Unknown represents an invalid or undefined status and catches
	// uninitialized values.
	Unknown Status = iota

	// Pending is the initial status: the order waits for assignment.
	Pending

	// Loading means the order is bound to a vehicle and driver and being loaded.
	Loading

	// InTransit means the order is underway to its destination.
	InTransit

	// Completed means the order was delivered. Terminal.
	Completed

	// Cancelled means the order was withdrawn. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Loading:   "Loading",
		InTransit: "InTransit",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Loading:   "Loading",
		InTransit: "InTransit",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsActive reports whether the order currently holds an active vehicle binding.
func (s Status) IsActive() bool {
	return s == Loading || s == InTransit
}

// ValidateAssign checks that the order may be assigned without transitioning.
// Only Pending orders are assignable; the Pending to Loading edge is irreversible
// through assignment.
func (s Status) ValidateAssign() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveBinding validates consistency between status and vehicle binding:
// Pending orders carry none, active and Completed orders must carry one, and
// Cancelled orders may carry one from before cancellation.
func (s Status) ValidateCanHaveBinding(bound bool) error {
	if bound && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a binding", s.String()),
		)
	}

	if !bound && (s.IsActive() || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no binding", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Loading. Valid only from Pending.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}
	return Loading, nil
}

// StartTransit transitions the status to InTransit. Valid only from Loading.
func (s Status) StartTransit() (Status, error) {
	if s != Loading {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to start transit", s.String()),
		)
	}
	return InTransit, nil
}

// Complete transitions the status to Completed. Valid only from InTransit.
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled. Valid from any non-terminal status.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}

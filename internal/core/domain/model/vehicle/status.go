package vehicle

import (
	"fmt"

	"fleetdispatch/internal/pkg/errs"
)

// Status represents the operational state of a vehicle.
//
// State transitions:
//
//	Idle ──> Loading ──> InTransit ──> Idle
//	  any ──> Exception ──> (restored by resolving all exception records)
//
// Flagging a vehicle as Exception does not touch any active order binding: a
// vehicle can be in Exception while its order proceeds. Restoring from Exception
// returns the vehicle to the phase its active order implies, or to Idle.
type Status int

const (
	// Unknown represents an invalid or undefined status and catches
	// uninitialized values.
	Unknown Status = iota

	// Idle means the vehicle is available for assignment.
	Idle

	// Loading means the vehicle has an order bound and is being loaded.
	Loading

	// InTransit means the vehicle is underway with its bound order.
	InTransit

	// Exception means at least one unresolved exception record references
	// the vehicle. No new order may be assigned while flagged.
	Exception
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Idle:      "Idle",
		Loading:   "Loading",
		InTransit: "InTransit",
		Exception: "Exception",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Idle:      "Idle",
		Loading:   "Loading",
		InTransit: "InTransit",
		Exception: "Exception",
	}
}

// Validate checks that the Status is one of the defined operational states.
// Used when reconstructing vehicles from persistence or external input.
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

// StatusFromString parses a status name as received from list filters.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// StartLoading transitions the status to Loading.
// Only an Idle vehicle may take a new order.
func (s Status) StartLoading() (Status, error) {
	if s != Idle {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to start loading", s.String()),
		)
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

// Release transitions the status back to Idle when an order completes or is
// cancelled. Valid from Loading and InTransit.
func (s Status) Release() (Status, error) {
	if s != Loading && s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to release", s.String()),
		)
	}
	return Idle, nil
}

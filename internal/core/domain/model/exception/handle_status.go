package exception

import (
	"fmt"

	"fleetdispatch/internal/pkg/errs"
)

// HandleStatus represents the handling state of an exception record.
//
// State transitions:
//
//	Unprocessed ──> Processing ──> Resolved
//	      └────────────────────────────┘
//
// Resolved is terminal. A vehicle stays flagged Exception while any record
// referencing it is not Resolved.
type HandleStatus int

const (
	// UnknownHandleStatus represents an invalid or undefined handling state.
	UnknownHandleStatus HandleStatus = iota

	// Unprocessed is the initial state of every recorded exception.
	Unprocessed

	// Processing means an operator is actively handling the exception.
	Processing

	// Resolved means the exception was dealt with. Terminal.
	Resolved
)

func getHandleStatusStrings() map[HandleStatus]string {
	return map[HandleStatus]string{
		UnknownHandleStatus: "Unknown",
		Unprocessed:         "Unprocessed",
		Processing:          "Processing",
		Resolved:            "Resolved",
	}
}

func getValidHandleStatusStrings() map[HandleStatus]string {
	//nolint:exhaustive // UnknownHandleStatus is intentionally excluded as it's invalid
	return map[HandleStatus]string{
		Unprocessed: "Unprocessed",
		Processing:  "Processing",
		Resolved:    "Resolved",
	}
}

// Validate checks that the HandleStatus is one of the defined handling states.
func (s HandleStatus) Validate() error {
	if _, ok := getValidHandleStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("handleStatus", fmt.Errorf("%d is not a valid handle status", s))
	}
	return nil
}

// String returns the human-readable name of the handling state.
// Implements fmt.Stringer and is safe on any value.
func (s HandleStatus) String() string {
	if str, ok := getHandleStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsResolved reports whether the record no longer keeps its vehicle flagged.
func (s HandleStatus) IsResolved() bool {
	return s == Resolved
}

// StartProcessing transitions the state to Processing. Valid only from Unprocessed.
func (s HandleStatus) StartProcessing() (HandleStatus, error) {
	if s != Unprocessed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"handleStatus",
			fmt.Errorf("%s is not a valid handle status to start processing", s.String()),
		)
	}
	return Processing, nil
}

// Resolve transitions the state to Resolved. Valid from Unprocessed and Processing.
func (s HandleStatus) Resolve() (HandleStatus, error) {
	if s != Unprocessed && s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"handleStatus",
			fmt.Errorf("%s is not a valid handle status to resolve", s.String()),
		)
	}
	return Resolved, nil
}

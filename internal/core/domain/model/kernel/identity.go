package kernel

import (
	"strings"

	"fleetdispatch/internal/pkg/errs"
)

// Domain identity errors returned when validating zero-value identities.
var (
	ErrPlateNumberIsRequired = errs.NewValueIsRequiredError("plateNumber")
	ErrDriverIDIsRequired    = errs.NewValueIsRequiredError("driverId")
	ErrOrderIDIsRequired     = errs.NewValueIsRequiredError("orderId")
)

// PlateNumber is the natural identity of a vehicle. It is a non-empty string,
// stored and compared exactly as registered (surrounding whitespace stripped).
type PlateNumber struct {
	value string
}

// NewPlateNumber creates a PlateNumber from its string form.
// Returns ErrPlateNumberIsRequired when the trimmed value is empty.
func NewPlateNumber(value string) (PlateNumber, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return PlateNumber{}, ErrPlateNumberIsRequired
	}
	return PlateNumber{value: value}, nil
}

// String returns the plate number as registered.
func (p PlateNumber) String() string {
	return p.value
}

// IsEqual reports whether two plate numbers identify the same vehicle.
func (p PlateNumber) IsEqual(other PlateNumber) bool {
	return p.value == other.value
}

// Validate returns ErrPlateNumberIsRequired for the zero value.
func (p PlateNumber) Validate() error {
	if p.value == "" {
		return ErrPlateNumberIsRequired
	}
	return nil
}

// DriverID is the natural identity of a driver, assigned by the fleet operator.
type DriverID struct {
	value string
}

// NewDriverID creates a DriverID from its string form.
// Returns ErrDriverIDIsRequired when the trimmed value is empty.
func NewDriverID(value string) (DriverID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DriverID{}, ErrDriverIDIsRequired
	}
	return DriverID{value: value}, nil
}

// String returns the driver id as assigned.
func (d DriverID) String() string {
	return d.value
}

// IsEqual reports whether two driver ids identify the same driver.
func (d DriverID) IsEqual(other DriverID) bool {
	return d.value == other.value
}

// Validate returns ErrDriverIDIsRequired for the zero value.
func (d DriverID) Validate() error {
	if d.value == "" {
		return ErrDriverIDIsRequired
	}
	return nil
}

// OrderID is the natural identity of a cargo order.
type OrderID struct {
	value string
}

// NewOrderID creates an OrderID from its string form.
// Returns ErrOrderIDIsRequired when the trimmed value is empty.
func NewOrderID(value string) (OrderID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return OrderID{}, ErrOrderIDIsRequired
	}
	return OrderID{value: value}, nil
}

// String returns the order id as assigned.
func (o OrderID) String() string {
	return o.value
}

// IsEqual reports whether two order ids identify the same order.
func (o OrderID) IsEqual(other OrderID) bool {
	return o.value == other.value
}

// Validate returns ErrOrderIDIsRequired for the zero value.
func (o OrderID) Validate() error {
	if o.value == "" {
		return ErrOrderIDIsRequired
	}
	return nil
}

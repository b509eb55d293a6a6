// Package driver contains the Driver aggregate: the person licensed to operate
// a fleet's vehicles. Drivers are registered once and referenced by assignments
// and exception records through their natural id.
package driver

import (
	"errors"
	"fmt"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

// maxLicenseLevel bounds the license grading used by the fleet operator.
const maxLicenseLevel = 5

// ErrDriverIsNotConstructed is returned when a Driver instance was not created
// through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver is the aggregate root for a fleet driver.
//
// Invariants:
//   - Identified by a valid driver id and owned by exactly one fleet
//   - Name is non-empty; license level is within 1..5
//   - A driver may only be bound to vehicles of their own fleet
//
// The phone number is optional contact data and carries no validation beyond
// what the operator enters.
type Driver struct {
	id           kernel.DriverID
	name         string
	licenseLevel int
	phone        string
	fleetID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewDriver registers a new driver for a fleet.
func NewDriver(id kernel.DriverID, name string, licenseLevel int, phone string, fleetID kernel.UUID) (*Driver, error) {
	driver := &Driver{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setLicenseLevel(licenseLevel),
		driver.setFleetID(fleetID),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(id kernel.DriverID, name string, licenseLevel int, phone string, fleetID kernel.UUID) (*Driver, error) {
	return NewDriver(id, name, licenseLevel, phone, fleetID)
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by driver id.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's identifier.
func (d *Driver) ID() kernel.DriverID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// LicenseLevel returns the driver's license grading.
func (d *Driver) LicenseLevel() int {
	return d.licenseLevel
}

// Phone returns the driver's contact number, possibly empty.
func (d *Driver) Phone() string {
	return d.phone
}

// FleetID returns the owning fleet's identifier.
func (d *Driver) FleetID() kernel.UUID {
	return d.fleetID
}

// BelongsTo reports whether the driver belongs to the given fleet.
func (d *Driver) BelongsTo(fleetID kernel.UUID) bool {
	return d.fleetID.IsEqual(fleetID)
}

func (d *Driver) setID(id kernel.DriverID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setLicenseLevel(level int) error {
	if level < 1 || level > maxLicenseLevel {
		return errs.NewValueIsOutOfRangeErrorWithCause("licenseLevel", level, 1, maxLicenseLevel,
			fmt.Errorf("%d is outside the license grading", level))
	}
	d.licenseLevel = level
	return nil
}

func (d *Driver) setFleetID(fleetID kernel.UUID) error {
	if err := fleetID.Validate(); err != nil {
		return err
	}
	d.fleetID = fleetID
	return nil
}

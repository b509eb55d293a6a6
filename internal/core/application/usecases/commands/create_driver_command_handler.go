package commands

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/model/driver"
	"fleetdispatch/internal/pkg/errs"
)

// ErrDuplicateDriverID is returned when a driver with the same ID is already
// registered.
var ErrDuplicateDriverID = errors.New("driver with this ID already exists")

// CreateDriverCommandHandler handles the business logic for driver registration.
// Verifies the owning fleet exists before persisting the driver.
type CreateDriverCommandHandler struct {
	uowFactory CreateDriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(uowFactory CreateDriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver creation command.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.FleetRepository().Get(ctx, cmd.FleetID()); err != nil {
		return err
	}

	driverEntity, err := driver.NewDriver(
		cmd.DriverID(),
		cmd.Name(),
		cmd.LicenseLevel(),
		cmd.Phone(),
		cmd.FleetID(),
	)
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Add(ctx, driverEntity); err != nil {
		if errors.Is(err, errs.ErrStateConflict) {
			return ErrDuplicateDriverID
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/pkg/errs"
)

// ErrDuplicatePlate is returned when a vehicle with the same plate number
// is already registered.
var ErrDuplicatePlate = errors.New("vehicle with this plate number already exists")

// CreateVehicleCommandHandler handles the business logic for vehicle registration.
// Verifies the owning fleet exists before persisting the vehicle.
type CreateVehicleCommandHandler struct {
	uowFactory CreateVehicleUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration.
func NewCreateVehicleCommandHandler(uowFactory CreateVehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle creation command.
// Fails with errs.ErrObjectNotFound when the fleet does not exist and with
// ErrDuplicatePlate when the plate number is already taken.
func (h CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
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

	vehicleEntity, err := vehicle.NewVehicle(cmd.Plate(), cmd.FleetID(), cmd.Capacity())
	if err != nil {
		return err
	}

	if err = uow.VehicleRepository().Add(ctx, vehicleEntity); err != nil {
		if errors.Is(err, errs.ErrStateConflict) {
			return ErrDuplicatePlate
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

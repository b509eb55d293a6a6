package commands

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/vehicle"
	"fleetdispatch/internal/pkg/errs"
)

// ErrExceptionAlreadyResolved is returned when the record was resolved before.
var ErrExceptionAlreadyResolved = errors.New("exception record is already resolved")

// ResolveExceptionCommandHandler marks an exception record as handled. Once
// the involved vehicle has no unresolved records left, the vehicle's
// Exception flag is cleared: it returns to the phase of its active order, or
// to Idle when no order is bound.
type ResolveExceptionCommandHandler struct {
	uowFactory ResolveExceptionUoWFactory
}

// NewResolveExceptionCommandHandler creates a handler for exception resolution.
func NewResolveExceptionCommandHandler(uowFactory ResolveExceptionUoWFactory) ResolveExceptionCommandHandler {
	return ResolveExceptionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the exception resolution command.
func (h ResolveExceptionCommandHandler) Handle(ctx context.Context, cmd ResolveExceptionCommand) error {
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

	exceptionRepo := uow.ExceptionRepository()

	record, err := exceptionRepo.GetForUpdate(ctx, cmd.RecordID())
	if err != nil {
		return err
	}

	if record.HandleStatus().IsResolved() {
		return ErrExceptionAlreadyResolved
	}

	if err = record.Resolve(); err != nil {
		return err
	}

	if err = exceptionRepo.Update(ctx, record); err != nil {
		return err
	}

	unresolved, err := exceptionRepo.CountUnresolvedByVehicle(ctx, record.VehiclePlate())
	if err != nil {
		return err
	}

	if unresolved == 0 {
		if err = h.restoreVehicle(ctx, uow, record.VehiclePlate()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// restoreVehicle clears the vehicle's Exception flag. The target status is
// derived from the vehicle's active order so an interrupted trip resumes
// where it left off.
func (h ResolveExceptionCommandHandler) restoreVehicle(
	ctx context.Context,
	uow ResolveExceptionUoW,
	plate kernel.PlateNumber,
) error {
	vehicleRepo := uow.VehicleRepository()

	vehicleEntity, err := vehicleRepo.GetForUpdate(ctx, plate)
	if err != nil {
		return err
	}

	if vehicleEntity.Status() != vehicle.Exception {
		return nil
	}

	target := vehicle.Idle

	activeOrder, err := uow.OrderRepository().GetActiveByVehicle(ctx, plate)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// no active order, vehicle goes back to Idle
	case err != nil:
		return err
	case activeOrder.Status() == order.Loading:
		target = vehicle.Loading
	case activeOrder.Status() == order.InTransit:
		target = vehicle.InTransit
	}

	if err = vehicleEntity.RestoreTo(target); err != nil {
		return err
	}

	return vehicleRepo.Update(ctx, vehicleEntity)
}

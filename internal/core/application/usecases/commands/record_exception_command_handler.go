package commands

import (
	"context"

	"fleetdispatch/internal/core/domain/model/exception"
	"fleetdispatch/internal/core/ports"
)

// RecordExceptionCommandHandler files an exception report and flags the
// involved vehicle. The vehicle's active order binding is left untouched;
// flagging an already flagged vehicle just adds another record.
type RecordExceptionCommandHandler struct {
	uowFactory RecordExceptionUoWFactory
	clock      ports.Clock
}

// NewRecordExceptionCommandHandler creates a handler for exception intake.
func NewRecordExceptionCommandHandler(
	uowFactory RecordExceptionUoWFactory,
	clock ports.Clock,
) RecordExceptionCommandHandler {
	return RecordExceptionCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the exception report command.
// Fails with errs.ErrObjectNotFound when the vehicle or driver does not exist.
func (h RecordExceptionCommandHandler) Handle(ctx context.Context, cmd RecordExceptionCommand) error {
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

	vehicleRepo := uow.VehicleRepository()

	vehicleEntity, err := vehicleRepo.GetForUpdate(ctx, cmd.VehiclePlate())
	if err != nil {
		return err
	}

	if _, err = uow.DriverRepository().Get(ctx, cmd.DriverID()); err != nil {
		return err
	}

	record, err := exception.NewRecord(
		cmd.RecordID(),
		cmd.VehiclePlate(),
		cmd.DriverID(),
		cmd.ExceptionType(),
		cmd.SpecificEvent(),
		cmd.Description(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.ExceptionRepository().Add(ctx, record); err != nil {
		return err
	}

	vehicleEntity.MarkException()
	if err = vehicleRepo.Update(ctx, vehicleEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/services"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"
)

// AssignOrderCommandHandler orchestrates manual order assignment.
// Locks the order and vehicle rows, runs the assignment preconditions and
// updates both aggregates within a single transaction.
//
// Preconditions are checked in a fixed order and the first failure wins:
// order assignable, vehicle available, driver in fleet, cargo fits. A missing
// entity reports the same error as a failing check on that entity.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory, clock)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrOverloadRejected):
//	    log.Println("Cargo exceeds vehicle capacity")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignOrderCommandHandler struct {
	uowFactory AssignOrderUoWFactory
	clock      ports.Clock
}

// NewAssignOrderCommandHandler creates a handler for manual order assignment.
func NewAssignOrderCommandHandler(uowFactory AssignOrderUoWFactory, clock ports.Clock) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order assignment command.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	vehicleRepo := uow.VehicleRepository()

	orderEntity, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return services.ErrOrderNotAssignable
	}
	if err != nil {
		return err
	}
	// Fail on the order before touching the vehicle or driver.
	if err = orderEntity.ValidateAssign(); err != nil {
		return services.ErrOrderNotAssignable
	}

	vehicleEntity, err := vehicleRepo.GetForUpdate(ctx, cmd.Plate())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return services.ErrVehicleUnavailable
	}
	if err != nil {
		return err
	}

	driverEntity, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return services.ErrDriverFleetMismatch
	}
	if err != nil {
		return err
	}

	err = services.NewOrderAssignment().Assign(orderEntity, vehicleEntity, driverEntity, h.clock.Now())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, vehicleEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

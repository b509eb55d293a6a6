package commands

import (
	"context"

	"fleetdispatch/internal/core/domain/model/fleet"
)

// CreateFleetCommandHandler handles the business logic for fleet registration.
type CreateFleetCommandHandler struct {
	uowFactory CreateFleetUoWFactory
}

// NewCreateFleetCommandHandler creates a handler for fleet registration.
func NewCreateFleetCommandHandler(uowFactory CreateFleetUoWFactory) CreateFleetCommandHandler {
	return CreateFleetCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the fleet creation command.
// Creates a new fleet entity and persists it within a transaction.
func (h CreateFleetCommandHandler) Handle(ctx context.Context, cmd CreateFleetCommand) error {
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

	fleetRepo := uow.FleetRepository()
	fleetEntity, err := fleet.NewFleet(cmd.FleetID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = fleetRepo.Add(ctx, fleetEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

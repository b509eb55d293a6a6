package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/guard"
)

var ErrResolveExceptionCommandIsNotConstructed = errors.New(
	"ResolveExceptionCommand must be created via NewResolveExceptionCommand constructor",
)

// ResolveExceptionCommand represents a request to mark an exception record as
// handled.
type ResolveExceptionCommand struct { //nolint:recvcheck //using for validation
	recordID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResolveExceptionCommand creates a command to resolve an exception record.
func NewResolveExceptionCommand(recordID kernel.UUID) (ResolveExceptionCommand, error) {
	if err := recordID.Validate(); err != nil {
		return ResolveExceptionCommand{}, err
	}

	return ResolveExceptionCommand{
		recordID: recordID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveExceptionCommand) Validate() error {
	return c.guard.Validate(ErrResolveExceptionCommandIsNotConstructed)
}

// RecordID returns the exception record ID from the command.
func (c ResolveExceptionCommand) RecordID() kernel.UUID {
	return c.recordID
}

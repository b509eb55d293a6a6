package commands_test

import (
	"testing"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cargo, err := kernel.NewCargo(4000, 15)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(mustOrderID("O-1"), "Warehouse 7", cargo)

	require.NoError(t, err)
	assert.Equal(t, "O-1", cmd.OrderID().String())
	assert.Equal(t, "Warehouse 7", cmd.Destination())
	assert.True(t, cmd.Cargo().IsEqual(cargo))
}

func TestNewCreateOrderCommand_EmptyDestination(t *testing.T) {
	cargo, err := kernel.NewCargo(4000, 15)
	require.NoError(t, err)

	_, err = commands.NewCreateOrderCommand(mustOrderID("O-1"), "", cargo)

	require.ErrorIs(t, err, commands.ErrDestinationIsRequired)
}

func TestNewCreateOrderCommand_InvalidCargo(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(mustOrderID("O-1"), "Warehouse 7", kernel.Cargo{})

	require.Error(t, err)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}

package commands_test

import (
	"testing"

	"fleetdispatch/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateFleetCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateFleetCommand("North Region")

	require.NoError(t, err)
	assert.Equal(t, "North Region", cmd.Name())
	assert.NoError(t, cmd.FleetID().Validate())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateFleetCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateFleetCommand("")

	require.ErrorIs(t, err, commands.ErrFleetNameIsRequired)
}

func TestCreateFleetCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateFleetCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateFleetCommandIsNotConstructed)
}

func TestNewCreateFleetCommand_GeneratesUniqueIDs(t *testing.T) {
	first, err := commands.NewCreateFleetCommand("Fleet A")
	require.NoError(t, err)
	second, err := commands.NewCreateFleetCommand("Fleet B")
	require.NoError(t, err)

	assert.False(t, first.FleetID().IsEqual(second.FleetID()))
}

package commands_test

import (
	"testing"
	"time"

	"freightcore/internal/core/application/usecases/commands"
	"freightcore/internal/core/domain/model/kernel"
	"freightcore/internal/core/domain/model/shipment"
	"freightcore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParty(t *testing.T, name, address, email string) shipment.Party {
	t.Helper()
	p, err := shipment.NewParty(name, address, email)
	require.NoError(t, err)
	return p
}

func TestNewCreateShipmentCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	shipper := mustParty(t, "Acme Exports", "", "")

	cmd, err := commands.NewCreateShipmentCommand(
		id, shipment.ModeRoRo, nil,
		shipper, shipment.Party{}, shipment.Party{},
		shipment.Route{}, shipment.Cargo{},
	)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ShipmentID())
	assert.Equal(t, shipment.ModeRoRo, cmd.Mode())
	assert.Nil(t, cmd.OwnerRef())
	assert.Nil(t, cmd.Status())
	assert.Nil(t, cmd.Reference())
	assert.Equal(t, "Acme Exports", cmd.Shipper().Name())
}

func TestNewCreateShipmentCommand_InvalidShipmentID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateShipmentCommand(
		invalidID, shipment.ModeRoRo, nil,
		shipment.Party{}, shipment.Party{}, shipment.Party{},
		shipment.Route{}, shipment.Cargo{},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateShipmentCommand_InvalidMode(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewCreateShipmentCommand(
		id, shipment.ModeUnknown, nil,
		shipment.Party{}, shipment.Party{}, shipment.Party{},
		shipment.Route{}, shipment.Cargo{},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateShipmentCommand_InvalidOwnerRef(t *testing.T) {
	id := kernel.NewUUID()
	badOwner := kernel.UUID{}
	_, err := commands.NewCreateShipmentCommand(
		id, shipment.ModeAir, &badOwner,
		shipment.Party{}, shipment.Party{}, shipment.Party{},
		shipment.Route{}, shipment.Cargo{},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateShipmentCommand_WithStatus(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		id, shipment.ModeFCL, nil,
		mustParty(t, "Acme Exports", "", ""), shipment.Party{}, shipment.Party{},
		shipment.Route{}, shipment.Cargo{},
	)
	require.NoError(t, err)

	cmd, err = cmd.WithStatus(shipment.UnderReview)
	require.NoError(t, err)
	require.NotNil(t, cmd.Status())
	assert.Equal(t, shipment.UnderReview, *cmd.Status())

	_, err = cmd.WithStatus(shipment.Unknown)
	require.Error(t, err)
}

func TestCreateShipmentCommand_WithReference(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		id, shipment.ModeRoRo, nil,
		mustParty(t, "Acme Exports", "", ""), shipment.Party{}, shipment.Party{},
		shipment.Route{}, shipment.Cargo{},
	)
	require.NoError(t, err)

	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	ref, err := shipment.NewReference(shipment.ModeRoRo, day, 7)
	require.NoError(t, err)

	cmd, err = cmd.WithReference(ref)
	require.NoError(t, err)
	require.NotNil(t, cmd.Reference())
	assert.Equal(t, "ELX-RORO-250115-0007", cmd.Reference().Value())

	_, err = cmd.WithReference(shipment.Reference{})
	require.Error(t, err)
}

func TestCreateShipmentCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateShipmentCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateShipmentCommandIsNotConstructed)
}

package commands

import (
	"errors"

	"freightcore/internal/core/domain/model/kernel"
	"freightcore/internal/core/domain/model/shipment"
	"freightcore/internal/pkg/guard"
)

var (
	ErrTransitionShipmentCommandIsNotConstructed = errors.New(
		"TransitionShipmentCommand must be created via NewTransitionShipmentCommand constructor",
	)
)

// TransitionShipmentCommand represents a request to advance a shipment to a
// new lifecycle status, optionally patching its booking details in the same
// step (e.g. attaching the customer account on approval).
//
// Example:
//
//	cmd, err := NewTransitionShipmentCommand(shipmentID, shipment.Pending, shipment.Patch{OwnerRef: &accountID})
//	if err != nil {
//	    return err
//	}
//
//	handler := NewTransitionShipmentCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
type TransitionShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	target     shipment.Status
	patch      shipment.Patch

	guard guard.ConstructorGuard
}

// NewTransitionShipmentCommand creates a command to advance a shipment's status.
// Validates that the shipment ID and the target status are valid; whether the
// transition itself is legal is decided against the loaded record.
func NewTransitionShipmentCommand(
	shipmentID kernel.UUID,
	target shipment.Status,
	patch shipment.Patch,
) (TransitionShipmentCommand, error) {
	cmd := TransitionShipmentCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setTarget(target),
	); err != nil {
		return TransitionShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionShipmentCommandIsNotConstructed if validation fails.
func (c TransitionShipmentCommand) Validate() error {
	return c.guard.Validate(ErrTransitionShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to advance.
func (c TransitionShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Target returns the requested new status.
func (c TransitionShipmentCommand) Target() shipment.Status {
	return c.target
}

// Patch returns the partial details update to merge before validation.
func (c TransitionShipmentCommand) Patch() shipment.Patch {
	return c.patch
}

func (c *TransitionShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *TransitionShipmentCommand) setTarget(target shipment.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

package commands

import (
	"errors"

	"freightcore/internal/core/domain/model/kernel"
	"freightcore/internal/core/domain/model/shipment"
	"freightcore/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents a request to register a new shipment,
// either an anonymous quote request or a committed booking.
//
// The initial status may be given explicitly (data import, portal flows that
// know where the record belongs); when absent, a request without an owning
// customer account becomes a request_received lead and a request with one
// becomes a pending booking. A reference may likewise be supplied for
// imported records; newly booked shipments get theirs allocated.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(shipmentID, shipment.ModeRoRo, nil, details)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
//	fmt.Printf("Shipment %s registered", created.Reference())
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	mode       shipment.TransportMode
	status     *shipment.Status
	reference  *shipment.Reference
	ownerRef   *kernel.UUID
	shipper    shipment.Party
	consignee  shipment.Party
	notify     shipment.Party
	route      shipment.Route
	cargo      shipment.Cargo

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates that the shipment ID and transport mode are valid; the field
// requirements of the resolved initial status are enforced by the handler
// through the domain model.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	mode shipment.TransportMode,
	ownerRef *kernel.UUID,
	shipper shipment.Party,
	consignee shipment.Party,
	notify shipment.Party,
	route shipment.Route,
	cargo shipment.Cargo,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		shipper:   shipper,
		consignee: consignee,
		notify:    notify,
		route:     route,
		cargo:     cargo,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setMode(mode),
		cmd.setOwnerRef(ownerRef),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// WithStatus returns a copy of the command carrying an explicit initial status.
func (c CreateShipmentCommand) WithStatus(status shipment.Status) (CreateShipmentCommand, error) {
	if err := status.Validate(); err != nil {
		return CreateShipmentCommand{}, err
	}
	c.status = &status
	return c, nil
}

// WithReference returns a copy of the command carrying a pre-assigned
// reference, used when importing records that already own one.
func (c CreateShipmentCommand) WithReference(reference shipment.Reference) (CreateShipmentCommand, error) {
	if err := reference.Validate(); err != nil {
		return CreateShipmentCommand{}, err
	}
	c.reference = &reference
	return c, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Mode returns the transport category of the shipment.
func (c CreateShipmentCommand) Mode() shipment.TransportMode {
	return c.mode
}

// Status returns the explicit initial status, or nil when the handler should
// resolve it from the request shape.
func (c CreateShipmentCommand) Status() *shipment.Status {
	return c.status
}

// Reference returns the pre-assigned reference, or nil when one must be allocated.
func (c CreateShipmentCommand) Reference() *shipment.Reference {
	return c.reference
}

// OwnerRef returns the owning customer account, or nil for anonymous leads.
func (c CreateShipmentCommand) OwnerRef() *kernel.UUID {
	return c.ownerRef
}

// Shipper returns the shipper party.
func (c CreateShipmentCommand) Shipper() shipment.Party {
	return c.shipper
}

// Consignee returns the consignee party.
func (c CreateShipmentCommand) Consignee() shipment.Party {
	return c.consignee
}

// Notify returns the notify party.
func (c CreateShipmentCommand) Notify() shipment.Party {
	return c.notify
}

// Route returns the origin/destination route.
func (c CreateShipmentCommand) Route() shipment.Route {
	return c.route
}

// Cargo returns the cargo description.
func (c CreateShipmentCommand) Cargo() shipment.Cargo {
	return c.cargo
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setMode(mode shipment.TransportMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.mode = mode
	return nil
}

func (c *CreateShipmentCommand) setOwnerRef(ownerRef *kernel.UUID) error {
	if ownerRef == nil {
		return nil
	}
	if err := ownerRef.Validate(); err != nil {
		return err
	}

	c.ownerRef = ownerRef
	return nil
}

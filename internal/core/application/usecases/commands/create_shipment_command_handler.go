package commands

import (
	"context"
	"errors"
	"time"

	"freightcore/internal/core/domain/model/shipment"
	"freightcore/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles the business logic for shipment
// registration: it resolves the initial lifecycle status, validates the
// request against the lifecycle policy, allocates and formats the shipment
// reference, and persists the record as one unit of work.
//
// A creation request either succeeds completely or leaves nothing behind;
// no partial record is ever persisted.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	cmd, _ := NewCreateShipmentCommand(kernel.NewUUID(), shipment.ModeRoRo, nil, shipper, consignee, notify, route, cargo)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("shipment creation failed: %w", err)
//	}
//	fmt.Printf("registered as %s", created.Reference())
type CreateShipmentCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
// Requires a UoWFactory spanning the shipment repository and the sequence allocator.
func NewCreateShipmentCommandHandler(uowFactory UoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes the shipment creation command.
//
// The initial status is the command's explicit status when present; otherwise
// an ownerless request is treated as an anonymous lead (request_received) and
// an owned one as a committed booking (pending). When the command carries no
// reference, one is allocated: the counter key combines the mode code with
// the calendar day of allocation, the sequence allocator hands out the next
// value atomically, and the reference formatter stamps the result.
//
// If persistence reports a collision on the reference unique index, creation
// is retried exactly once with a freshly drawn sequence before the error
// surfaces. A retry never reuses a previously drawn sequence value.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	status := h.resolveInitialStatus(cmd)

	created, err := h.createOnce(ctx, cmd, status)
	if err != nil && errors.Is(err, errs.ErrReferenceCollision) && cmd.Reference() == nil {
		// An imported shipment with a pre-assigned reference can occupy a
		// number the counter has not handed out yet. Counter draws commit
		// outside the rolled-back unit of work, so the retry gets a fresh one.
		created, err = h.createOnce(ctx, cmd, status)
	}

	return created, err
}

// resolveInitialStatus picks the lifecycle status a new record starts in.
func (h *CreateShipmentCommandHandler) resolveInitialStatus(cmd CreateShipmentCommand) shipment.Status {
	if cmd.Status() != nil {
		return *cmd.Status()
	}
	if cmd.OwnerRef() == nil {
		return shipment.RequestReceived
	}
	return shipment.Pending
}

// createOnce runs one full allocation-and-persist attempt in its own unit of
// work, so a failed attempt rolls back completely before any retry.
func (h *CreateShipmentCommandHandler) createOnce(
	ctx context.Context,
	cmd CreateShipmentCommand,
	status shipment.Status,
) (*shipment.Shipment, error) {
	now := h.now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reference, err := h.resolveReference(ctx, uow, cmd, now)
	if err != nil {
		return nil, err
	}

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(),
		reference,
		status,
		shipment.Details{
			TransportMode: cmd.Mode(),
			OwnerRef:      cmd.OwnerRef(),
			Shipper:       cmd.Shipper(),
			Consignee:     cmd.Consignee(),
			Notify:        cmd.Notify(),
			Route:         cmd.Route(),
			Cargo:         cmd.Cargo(),
		},
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// resolveReference returns the command's pre-assigned reference, or allocates
// a new one from the counter for the mode and calendar day.
func (h *CreateShipmentCommandHandler) resolveReference(
	ctx context.Context,
	uow UoW,
	cmd CreateShipmentCommand,
	now time.Time,
) (shipment.Reference, error) {
	if cmd.Reference() != nil {
		return *cmd.Reference(), nil
	}

	key, err := shipment.CounterKey(cmd.Mode(), now)
	if err != nil {
		return shipment.Reference{}, err
	}

	sequence, err := uow.SequenceAllocator().Next(ctx, key)
	if err != nil {
		return shipment.Reference{}, err
	}

	return shipment.NewReference(cmd.Mode(), now, sequence)
}

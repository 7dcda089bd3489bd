package commands

import (
	"context"
	"errors"
	"time"

	"freightcore/internal/core/domain/model/shipment"
	"freightcore/internal/pkg/errs"
)

// transitionAttempts bounds the automatic revalidate-and-retry on lost
// optimistic-lock races before the conflict surfaces to the caller.
const transitionAttempts = 2

// TransitionShipmentCommandHandler handles the business logic for advancing a
// shipment through its lifecycle: it loads the current record, checks the
// requested edge against the state machine, merges the patch, revalidates the
// merged result against the lifecycle policy for the target status, and
// persists via a version-conditional update.
//
// Concurrent transitions on the same shipment are serialized by that
// conditional update: the loser of a race gets one automatic retry against
// the now-current record, then a ConcurrentModificationError.
type TransitionShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	now        func() time.Time
}

// NewTransitionShipmentCommandHandler creates a handler for shipment status
// transitions. Requires a ShipmentUoWFactory for transactional persistence.
func NewTransitionShipmentCommandHandler(uowFactory ShipmentUoWFactory) TransitionShipmentCommandHandler {
	return TransitionShipmentCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes the transition command.
//
// Rejections:
//   - IllegalTransitionError when the requested status is not reachable from
//     the record's current status
//   - ValueIsRequiredError / ValueIsInvalidError when the merged record does
//     not satisfy the target status's field policy, including any attempt to
//     change the assigned reference
//   - ConcurrentModificationError when another writer wins the race twice
//
// On success the updated record is returned; on any rejection the stored
// record is left untouched.
func (h *TransitionShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < transitionAttempts; attempt++ {
		updated, err := h.transitionOnce(ctx, cmd)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, errs.ErrConcurrentModification) {
			return nil, err
		}
		// Lost the race; re-fetch and revalidate against the current record.
		lastErr = err
	}

	return nil, lastErr
}

// transitionOnce runs one load-validate-persist attempt in its own unit of work.
func (h *TransitionShipmentCommandHandler) transitionOnce(
	ctx context.Context,
	cmd TransitionShipmentCommand,
) (*shipment.Shipment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()

	aggregate, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ApplyPatch(cmd.Patch()); err != nil {
		return nil, err
	}

	if err = aggregate.TransitionTo(cmd.Target(), h.now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

package queries

import (
	"errors"
	"time"

	"freightcore/internal/core/domain/model/kernel"
	"freightcore/internal/pkg/guard"
)

var (
	ErrGetStalledShipmentsQueryIsNotConstructed = errors.New(
		"GetStalledShipmentsQuery must be created via NewGetStalledShipmentsQuery constructor",
	)
)

// GetStalledShipmentsQuery retrieves active bookings that have not moved for
// too long: every non-terminal operational shipment whose last status change
// happened before the cutoff. Feeds the ops attention list.
//
// Example:
//
//	query, err := NewGetStalledShipmentsQuery(time.Now().UTC().Add(-48 * time.Hour))
//	if err != nil {
//	    return err
//	}
//	handler := NewGetStalledShipmentsQueryHandler(db)
//
//	stalled, err := handler.Handle(ctx, query)
type GetStalledShipmentsQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetStalledShipmentsQuery creates a query for shipments untouched since
// the cutoff instant. The cutoff must be non-zero.
func NewGetStalledShipmentsQuery(cutoff time.Time) (GetStalledShipmentsQuery, error) {
	if cutoff.IsZero() {
		return GetStalledShipmentsQuery{}, errors.New("cutoff must not be zero")
	}

	return GetStalledShipmentsQuery{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStalledShipmentsQueryIsNotConstructed if validation fails.
func (q GetStalledShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetStalledShipmentsQueryIsNotConstructed)
}

// Cutoff returns the instant before which a status change counts as stale.
func (q GetStalledShipmentsQuery) Cutoff() time.Time {
	return q.cutoff
}

// GetStalledShipmentsQueryResponse represents one stalled shipment row.
type GetStalledShipmentsQueryResponse struct {
	ID        kernel.UUID
	Reference string
	Status    string
	UpdatedAt time.Time
}

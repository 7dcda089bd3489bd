package queries

import (
	"errors"
	"time"

	"freightcore/internal/core/domain/model/kernel"
	"freightcore/internal/core/domain/model/shipment"
	"freightcore/internal/pkg/guard"
)

var (
	ErrGetShipmentByReferenceQueryIsNotConstructed = errors.New(
		"GetShipmentByReferenceQuery must be created via NewGetShipmentByReferenceQuery constructor",
	)
)

// GetShipmentByReferenceQuery retrieves one shipment by its assigned
// reference, the identifier customers quote in correspondence.
//
// Example:
//
//	ref, _ := shipment.ReferenceFromString("ELX-RORO-250115-0001")
//	query, _ := NewGetShipmentByReferenceQuery(ref)
//	handler := NewGetShipmentByReferenceQueryHandler(db)
//
//	record, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("lookup failed: %w", err)
//	}
//	fmt.Printf("%s is %s\n", record.Reference, record.Status)
type GetShipmentByReferenceQuery struct {
	reference shipment.Reference

	guard guard.ConstructorGuard
}

// NewGetShipmentByReferenceQuery creates a query for one shipment reference.
func NewGetShipmentByReferenceQuery(reference shipment.Reference) (GetShipmentByReferenceQuery, error) {
	if err := reference.Validate(); err != nil {
		return GetShipmentByReferenceQuery{}, err
	}

	return GetShipmentByReferenceQuery{
		reference: reference,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentByReferenceQueryIsNotConstructed if validation fails.
func (q GetShipmentByReferenceQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByReferenceQueryIsNotConstructed)
}

// Reference returns the queried shipment reference.
func (q GetShipmentByReferenceQuery) Reference() shipment.Reference {
	return q.reference
}

// GetShipmentByReferenceQueryResponse is the read model of one shipment as
// exposed to tracking views. Statuses and modes carry their wire names.
type GetShipmentByReferenceQueryResponse struct {
	ID            kernel.UUID
	Reference     string
	Status        string
	TransportMode string
	ShipperName   string
	ConsigneeName string
	Origin        string
	Destination   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

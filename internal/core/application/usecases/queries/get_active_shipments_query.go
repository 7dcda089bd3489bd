// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"freightcore/internal/core/domain/model/kernel"
	"freightcore/internal/pkg/guard"
)

var (
	ErrGetActiveShipmentsQueryIsNotConstructed = errors.New(
		"GetActiveShipmentsQuery must be created via NewGetActiveShipmentsQuery constructor",
	)
)

// GetActiveShipmentsQuery retrieves all bookings currently moving through the
// physical journey, i.e. every non-terminal operational shipment. Leads and
// delivered or cancelled records are excluded.
//
// Example:
//
//	query := NewGetActiveShipmentsQuery()
//	handler := NewGetActiveShipmentsQueryHandler(db)
//
//	active, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active shipments: %w", err)
//	}
//	fmt.Printf("%d shipments on the water\n", len(active))
type GetActiveShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveShipmentsQuery creates a query to retrieve active shipments.
// This is a parameterless query that fetches the live operational board.
func NewGetActiveShipmentsQuery() GetActiveShipmentsQuery {
	return GetActiveShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveShipmentsQueryIsNotConstructed if validation fails.
func (q GetActiveShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveShipmentsQueryIsNotConstructed)
}

// GetActiveShipmentsQueryResponse represents one active shipment row on the
// operational board. Statuses and modes carry their wire names.
type GetActiveShipmentsQueryResponse struct {
	ID            kernel.UUID
	Reference     string
	Status        string
	TransportMode string
	Origin        string
	Destination   string
}

package ports

import (
	"context"

	"freightcore/internal/core/domain/model/kernel"
	"freightcore/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Provides methods for storing, retrieving, and querying shipments with their
// complete booking state.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// Fails with a ReferenceCollisionError if the shipment's reference is
	// already taken (defended against even though atomic sequence allocation
	// makes it structurally impossible).
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate using a
	// version-conditional write: the row is only replaced when its stored
	// version still equals the version the aggregate was loaded with.
	// Fails with a ConcurrentModificationError when another writer got there
	// first; callers should re-fetch and retry.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByReference retrieves a shipment aggregate by its assigned reference.
	GetByReference(ctx context.Context, reference shipment.Reference) (*shipment.Shipment, error)

	// GetAllActive retrieves all shipments in a non-terminal operational
	// status, i.e. bookings currently moving through the physical journey.
	GetAllActive(ctx context.Context) ([]*shipment.Shipment, error)

	// GetAllInStatus retrieves all shipments currently in the given status.
	GetAllInStatus(ctx context.Context, status shipment.Status) ([]*shipment.Shipment, error)
}

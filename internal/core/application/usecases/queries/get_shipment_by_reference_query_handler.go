package queries

import (
	"context"
	"time"

	"freightcore/internal/core/domain/model/kernel"
	"freightcore/internal/core/domain/model/shipment"
	"freightcore/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentByReferenceQueryHandler looks one shipment up by reference.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetShipmentByReferenceQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentByReferenceQueryHandler creates a handler for reference lookups.
// Requires a GORM database connection for query execution.
func NewGetShipmentByReferenceQueryHandler(db *gorm.DB) GetShipmentByReferenceQueryHandler {
	return GetShipmentByReferenceQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no shipment
// carries the queried reference.
func (h GetShipmentByReferenceQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByReferenceQuery,
) (GetShipmentByReferenceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentByReferenceQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			status,
			transport_mode,
			shipper_name,
			consignee_name,
			origin,
			destination,
			created_at,
			updated_at
		FROM shipments
		WHERE reference = ?
	`, query.Reference().Value()).Rows()
	if err != nil {
		return GetShipmentByReferenceQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetShipmentByReferenceQueryResponse{}, err
		}
		return GetShipmentByReferenceQueryResponse{},
			errs.NewObjectNotFoundError("reference", query.Reference().Value())
	}

	var resp GetShipmentByReferenceQueryResponse
	var id uuid.UUID
	var status, mode int
	var createdAt, updatedAt time.Time

	err = rows.Scan(
		&id,
		&resp.Reference,
		&status,
		&mode,
		&resp.ShipperName,
		&resp.ConsigneeName,
		&resp.Origin,
		&resp.Destination,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return GetShipmentByReferenceQueryResponse{}, err
	}

	shipmentID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetShipmentByReferenceQueryResponse{}, idErr
	}
	resp.ID = shipmentID
	resp.Status = shipment.Status(status).String()
	resp.TransportMode = shipment.TransportMode(mode).String()
	resp.CreatedAt = createdAt
	resp.UpdatedAt = updatedAt

	if err = rows.Err(); err != nil {
		return GetShipmentByReferenceQueryResponse{}, err
	}

	return resp, nil
}

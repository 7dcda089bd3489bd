package queries

import (
	"context"

	"freightcore/internal/core/domain/model/kernel"
	"freightcore/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveShipmentsQueryHandler retrieves the operational board from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetActiveShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveShipmentsQueryHandler creates a handler for active shipment queries.
// Requires a GORM database connection for query execution.
func NewGetActiveShipmentsQueryHandler(db *gorm.DB) GetActiveShipmentsQueryHandler {
	return GetActiveShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all active shipments.
// Active means any operational status before the terminal pair, pending
// through cleared. Results are sorted by reference for consistent output.
func (h GetActiveShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveShipmentsQuery,
) ([]GetActiveShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetActiveShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			status,
			transport_mode,
			origin,
			destination
		FROM shipments
		WHERE status BETWEEN ? AND ?
		ORDER BY reference
	`, shipment.Pending, shipment.Cleared).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveShipmentsQueryResponse
		var id uuid.UUID
		var status, mode int

		err = rows.Scan(
			&id,
			&resp.Reference,
			&status,
			&mode,
			&resp.Origin,
			&resp.Destination,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = shipmentID
		resp.Status = shipment.Status(status).String()
		resp.TransportMode = shipment.TransportMode(mode).String()
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}

package queries

import (
	"context"

	"freightcore/internal/core/domain/model/kernel"
	"freightcore/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStalledShipmentsQueryHandler retrieves stalled bookings from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetStalledShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetStalledShipmentsQueryHandler creates a handler for stalled shipment queries.
// Requires a GORM database connection for query execution.
func NewGetStalledShipmentsQueryHandler(db *gorm.DB) GetStalledShipmentsQueryHandler {
	return GetStalledShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all stalled shipments: non-terminal
// operational records whose updated_at precedes the cutoff. Results are
// sorted oldest first so the longest-stuck shipments lead the report.
func (h GetStalledShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetStalledShipmentsQuery,
) ([]GetStalledShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetStalledShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			status,
			updated_at
		FROM shipments
		WHERE status BETWEEN ? AND ?
		  AND updated_at < ?
		ORDER BY updated_at
	`, shipment.Pending, shipment.Cleared, query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStalledShipmentsQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.Reference,
			&status,
			&resp.UpdatedAt,
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
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDailySequenceUsageQueryHandler reports per-mode counter usage for a day.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetDailySequenceUsageQueryHandler struct {
	db *gorm.DB
}

// NewGetDailySequenceUsageQueryHandler creates a handler for counter usage queries.
// Requires a GORM database connection for query execution.
func NewGetDailySequenceUsageQueryHandler(db *gorm.DB) GetDailySequenceUsageQueryHandler {
	return GetDailySequenceUsageQueryHandler{db: db}
}

// Handle executes the query. Counter keys end in the YYMMDD day suffix, so
// one day's counters are selected by suffix match. Modes that allocated
// nothing that day have no counter row and are simply absent.
func (h GetDailySequenceUsageQueryHandler) Handle(
	ctx context.Context,
	query GetDailySequenceUsageQuery,
) ([]GetDailySequenceUsageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	usage := make([]GetDailySequenceUsageQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			key,
			sequence
		FROM shipment_counters
		WHERE key LIKE ?
		ORDER BY key
	`, "%-"+query.Day().Format("060102")).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDailySequenceUsageQueryResponse

		if err = rows.Scan(&resp.Key, &resp.Used); err != nil {
			return nil, err
		}
		usage = append(usage, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return usage, nil
}

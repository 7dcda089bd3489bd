package queries

import (
	"errors"
	"time"

	"freightcore/internal/pkg/guard"
)

var (
	ErrGetDailySequenceUsageQueryIsNotConstructed = errors.New(
		"GetDailySequenceUsageQuery must be created via NewGetDailySequenceUsageQuery constructor",
	)
)

// GetDailySequenceUsageQuery reports how many references each mode counter
// handed out on one calendar day. Operations uses it to watch booking volume
// per transport mode.
//
// Example:
//
//	query, _ := NewGetDailySequenceUsageQuery(time.Now())
//	handler := NewGetDailySequenceUsageQueryHandler(db)
//
//	usage, err := handler.Handle(ctx, query)
//	for _, row := range usage {
//	    fmt.Printf("%s: %d references\n", row.Key, row.Used)
//	}
type GetDailySequenceUsageQuery struct {
	day time.Time

	guard guard.ConstructorGuard
}

// NewGetDailySequenceUsageQuery creates a usage query for one calendar day.
func NewGetDailySequenceUsageQuery(day time.Time) (GetDailySequenceUsageQuery, error) {
	return GetDailySequenceUsageQuery{
		day:   day,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDailySequenceUsageQueryIsNotConstructed if validation fails.
func (q GetDailySequenceUsageQuery) Validate() error {
	return q.guard.Validate(ErrGetDailySequenceUsageQueryIsNotConstructed)
}

// Day returns the queried calendar day.
func (q GetDailySequenceUsageQuery) Day() time.Time {
	return q.day
}

// GetDailySequenceUsageQueryResponse is one counter row: the full counter key
// and the highest sequence drawn from it, which equals the number of
// references allocated.
type GetDailySequenceUsageQueryResponse struct {
	Key  string
	Used uint64
}

package sequencerepo

import (
	"context"

	"freightcore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSequenceAllocator implements SequenceAllocator using GORM.
//
// Next runs a single INSERT ... ON CONFLICT DO UPDATE ... RETURNING statement,
// so the find-increment-or-create step is one indivisible operation inside the
// database. A read-then-write pair would admit a lost-update race under
// concurrent callers targeting the same key; the single statement cannot.
type GormSequenceAllocator struct {
	db *gorm.DB
}

// NewGormSequenceAllocator creates a new GORM sequence allocator.
func NewGormSequenceAllocator(db *gorm.DB) *GormSequenceAllocator {
	return &GormSequenceAllocator{db: db}
}

// Next atomically increments the counter for key and returns the new value,
// creating the counter at 1 when absent.
//
// For N concurrent calls with the same key the returned values are exactly
// {prevMax+1, ..., prevMax+N}, each handed to exactly one caller, in the
// database's conflict-resolution order.
//
// A transient store failure returns a StoreUnavailableError and no value.
// Retries must call Next again; a previously computed but unconfirmed value
// is never reused, because double-issuing a reference must never happen.
func (a *GormSequenceAllocator) Next(ctx context.Context, key string) (uint64, error) {
	if key == "" {
		return 0, errs.NewValueIsRequiredError("counter key")
	}

	var sequence uint64
	err := a.db.WithContext(ctx).Raw(`
		INSERT INTO shipment_counters (key, sequence)
		VALUES (?, 1)
		ON CONFLICT (key)
		DO UPDATE SET sequence = shipment_counters.sequence + 1
		RETURNING sequence
	`, key).Scan(&sequence).Error
	if err != nil {
		return 0, errs.NewStoreUnavailableError("allocate sequence", err)
	}

	return sequence, nil
}

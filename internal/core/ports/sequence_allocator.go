// Package ports defines repository interfaces for the freight domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
)

// SequenceAllocator owns the named monotonic counters behind shipment
// reference numbering.
//
// Next performs a single atomic "increment and return, create at 1 if absent"
// operation against the backing store. It is the only operation in the core
// that must be linearizable: for N concurrent calls with the same key the
// returned values are exactly {prevMax+1, ..., prevMax+N}, each handed to
// exactly one caller. The return order need not match call-issue order.
//
// Keys combine a transport mode code and a calendar day (see
// shipment.CounterKey), e.g. "RORO-250115". Counters are created lazily on
// first allocation and never deleted.
//
// On transient store failure Next returns a StoreUnavailableError and no
// value; callers must abort the whole operation rather than fabricate a
// sequence, and any retry must call Next again instead of reusing a
// previously computed but unconfirmed value.
type SequenceAllocator interface {
	Next(ctx context.Context, key string) (uint64, error)
}

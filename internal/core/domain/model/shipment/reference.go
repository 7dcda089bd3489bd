package shipment

import (
	"fmt"
	"regexp"
	"time"

	"freightcore/internal/pkg/errs"
	"freightcore/internal/pkg/guard"
)

// OrgPrefix is the organization prefix stamped on every shipment reference.
const OrgPrefix = "ELX"

// referenceDayLayout renders a calendar day as YYMMDD for references and counter keys.
const referenceDayLayout = "060102"

// ErrReferenceIsNotConstructed is returned when attempting to use an improperly
// initialized Reference. References must be created via NewReference or
// ReferenceFromString.
var ErrReferenceIsNotConstructed = errs.NewValueIsRequiredError(
	"reference must be created via NewReference or ReferenceFromString")

var referencePattern = regexp.MustCompile(`^[A-Z]{2,5}-[A-Z]{2,5}-\d{6}-\d{4,}$`)

// Reference is the globally unique, human-readable shipment identifier.
// It is assigned exactly once at allocation time and never regenerated:
// format "<ORG>-<MODECODE>-<YYMMDD>-<zero-padded sequence>",
// e.g. "ELX-RORO-250115-0001".
//
// Reference is an immutable value object. The zero value is invalid and
// fails validation; use the constructors.
type Reference struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewReference formats a shipment reference from the transport mode, the
// calendar day of allocation and the allocated sequence number.
//
// The sequence is zero-padded to four digits; higher sequences keep their
// natural width. Formatting is deterministic: the same inputs always produce
// the same reference.
//
// Returns an error if the mode is out of domain or the sequence is zero.
func NewReference(mode TransportMode, day time.Time, sequence uint64) (Reference, error) {
	code, err := mode.Code()
	if err != nil {
		return Reference{}, err
	}

	if sequence == 0 {
		return Reference{}, errs.NewValueIsInvalidErrorWithCause(
			"sequence",
			fmt.Errorf("sequence numbering starts at 1, got 0"),
		)
	}

	return Reference{
		value: fmt.Sprintf("%s-%s-%s-%04d", OrgPrefix, code, day.Format(referenceDayLayout), sequence),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ReferenceFromString reconstructs a Reference from its persisted form.
// Returns an error if the string does not match the reference format.
func ReferenceFromString(value string) (Reference, error) {
	if !referencePattern.MatchString(value) {
		return Reference{}, errs.NewValueIsInvalidErrorWithCause(
			"referenceId",
			fmt.Errorf("%q does not match the reference format", value),
		)
	}

	return Reference{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// CounterKey derives the sequence counter key for a transport mode on a
// calendar day, e.g. "RORO-250115". All allocations for the same mode and day
// draw from the same counter.
func CounterKey(mode TransportMode, day time.Time) (string, error) {
	code, err := mode.Code()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", code, day.Format(referenceDayLayout)), nil
}

// Value returns the reference as a string.
func (r Reference) Value() string {
	return r.value
}

// String implements fmt.Stringer.
func (r Reference) String() string {
	return r.value
}

// IsEqual compares two references by value.
func (r Reference) IsEqual(other Reference) bool {
	return r.value == other.value
}

// Validate checks that the Reference was properly constructed.
func (r Reference) Validate() error {
	return r.guard.Validate(ErrReferenceIsNotConstructed)
}

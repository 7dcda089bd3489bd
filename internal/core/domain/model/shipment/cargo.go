package shipment

import (
	"fmt"

	"github.com/shopspring/decimal"

	"freightcore/internal/pkg/errs"
)

// Cargo describes the goods being shipped. The declared value uses decimal
// arithmetic so customs figures survive round-tripping through persistence.
//
// Cargo is immutable. The zero value describes "no cargo details yet".
type Cargo struct {
	description   string
	weightKg      decimal.Decimal
	declaredValue decimal.Decimal
}

// NewCargo creates a Cargo description. Weight and declared value must not be
// negative; both may be zero while a lead is still being scoped.
func NewCargo(description string, weightKg, declaredValue decimal.Decimal) (Cargo, error) {
	if weightKg.IsNegative() {
		return Cargo{}, errs.NewValueIsInvalidErrorWithCause(
			"cargo.weightKg",
			fmt.Errorf("weight must not be negative, got %s", weightKg),
		)
	}

	if declaredValue.IsNegative() {
		return Cargo{}, errs.NewValueIsInvalidErrorWithCause(
			"cargo.declaredValue",
			fmt.Errorf("declared value must not be negative, got %s", declaredValue),
		)
	}

	return Cargo{description: description, weightKg: weightKg, declaredValue: declaredValue}, nil
}

// Description returns the cargo description.
func (c Cargo) Description() string { return c.description }

// WeightKg returns the cargo weight in kilograms.
func (c Cargo) WeightKg() decimal.Decimal { return c.weightKg }

// DeclaredValue returns the declared customs value.
func (c Cargo) DeclaredValue() decimal.Decimal { return c.declaredValue }

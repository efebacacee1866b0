package part

import (
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

// Stock is a value object counting the units of a part on the shelf.
// It never goes negative: depleting more units than available fails with a
// business-rule error instead of wrapping around.
//
// Stock is immutable; Add and Remove return new values.
type Stock struct {
	units int
}

// NewStock creates a Stock with the given unit count.
// Returns an error if the count is negative. Zero is valid: a part can be
// listed before any units arrive.
func NewStock(units int) (Stock, error) {
	if units < 0 {
		return Stock{}, errs.NewValueIsInvalidError("stock cannot be negative")
	}
	return Stock{units: units}, nil
}

// Units returns the unit count.
func (s Stock) Units() int {
	return s.units
}

// Has reports whether at least the given quantity is on the shelf.
func (s Stock) Has(quantity kernel.Quantity) bool {
	return s.units >= quantity.Value()
}

// Add returns a Stock with the quantity added.
func (s Stock) Add(quantity kernel.Quantity) Stock {
	return Stock{units: s.units + quantity.Value()}
}

// Remove returns a Stock with the quantity taken off the shelf.
// Returns a business-rule error when the quantity exceeds the available
// units.
func (s Stock) Remove(quantity kernel.Quantity) (Stock, error) {
	if !s.Has(quantity) {
		return Stock{}, errs.NewBusinessRuleError("insufficient stock")
	}
	return Stock{units: s.units - quantity.Value()}, nil
}

// IsEmpty reports whether no units are on the shelf.
func (s Stock) IsEmpty() bool {
	return s.units == 0
}

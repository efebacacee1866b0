package kernel

import (
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed indicates that a Price was not properly initialized
// through one of the constructor functions.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("Price must be created via NewPrice, PriceFromFloat, PriceFromString, or ZeroPrice")

// Price is a value object that represents a non-negative monetary amount.
// It wraps an arbitrary-precision decimal so subtotals and totals never
// accumulate floating-point error.
//
// The zero value of Price is invalid; construct one with NewPrice,
// PriceFromFloat, PriceFromString, or ZeroPrice. Price is immutable, every
// arithmetic method returns a new value.
type Price struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice creates a Price from a decimal amount.
// Returns an error if the amount is negative.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidError("price")
	}
	return Price{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// PriceFromFloat creates a Price from a float64 amount, typically one decoded
// from a request body. Returns an error if the amount is negative.
func PriceFromFloat(amount float64) (Price, error) {
	return NewPrice(decimal.NewFromFloat(amount))
}

// PriceFromString parses a Price from its decimal string representation,
// typically one read back from the database.
func PriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(amount)
}

// ZeroPrice creates a valid Price of zero. New work orders start with a zero
// total until line items are priced in.
func ZeroPrice() Price {
	return Price{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Amount returns the underlying decimal value.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Float64 returns the amount as a float64 for serialization.
// Precision loss is acceptable at the presentation boundary only.
func (p Price) Float64() float64 {
	f, _ := p.amount.Float64()
	return f
}

// String returns the decimal string representation of the amount.
func (p Price) String() string {
	return p.amount.String()
}

// Add returns a new Price holding the sum of both amounts.
func (p Price) Add(other Price) Price {
	return Price{amount: p.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// MulQuantity returns a new Price holding the amount multiplied by a quantity.
func (p Price) MulQuantity(q Quantity) Price {
	return Price{
		amount: p.amount.Mul(decimal.NewFromInt(int64(q.Value()))),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsZero reports whether the amount is exactly zero.
func (p Price) IsZero() bool {
	return p.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero.
func (p Price) IsPositive() bool {
	return p.amount.IsPositive()
}

// IsEqual compares two Prices by amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// Validate checks if the Price was properly constructed.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

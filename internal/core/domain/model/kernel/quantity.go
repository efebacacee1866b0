package kernel

import (
	"strconv"

	"workshop/internal/pkg/errs"
)

// Quantity is a value object that represents a strictly positive count of
// services or parts on a work-order line item.
//
// The zero value of Quantity is invalid; construct one with NewQuantity.
type Quantity struct {
	value int
}

// NewQuantity creates a Quantity from an integer count.
// Returns an error if the count is zero or negative.
func NewQuantity(value int) (Quantity, error) {
	if value <= 0 {
		return Quantity{}, errs.NewValueIsInvalidError("quantity must be greater than zero")
	}
	return Quantity{value: value}, nil
}

// Value returns the count.
func (q Quantity) Value() int {
	return q.value
}

// Add returns a new Quantity holding the sum of both counts.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value + other.value}
}

// String returns the decimal string form of the count.
func (q Quantity) String() string {
	return strconv.Itoa(q.value)
}

// IsEqual compares two Quantities by count.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value == other.value
}

// Validate checks if the Quantity holds a positive count.
// A zero value Quantity fails validation.
func (q Quantity) Validate() error {
	if q.value <= 0 {
		return errs.NewValueIsInvalidError("quantity must be greater than zero")
	}
	return nil
}

// Package part provides the Part aggregate: a stocked spare part with a
// unit price and a shelf count. Depleting stock is guarded so a part can
// never be billed beyond what the shop actually holds.
package part

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

// ErrPartIsNotConstructed is returned when a Part instance was not created
// through NewPart or RestorePart.
var ErrPartIsNotConstructed = errors.New("Part must be created via NewPart or RestorePart")

const minPartNameLength = 2

// Part is the aggregate root for a spare part in stock.
//
// Invariants:
//   - The name has at least two characters
//   - The unit price is never negative
//   - Stock never goes negative
type Part struct {
	id    kernel.UUID
	name  string
	code  string
	price kernel.Price
	stock Stock

	isConstructed bool
}

// NewPart creates a part with a fresh identifier.
// The code is an optional shop-internal reference and may be empty.
func NewPart(name, code string, price kernel.Price, stock Stock) (*Part, error) {
	p := &Part{
		id:            kernel.NewUUID(),
		code:          code,
		stock:         stock,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePart recreates a part from persistence with its original identifier.
func RestorePart(id kernel.UUID, name, code string, price kernel.Price, stock Stock) (*Part, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	p, err := NewPart(name, code, price, stock)
	if err != nil {
		return nil, err
	}
	p.id = id
	return p, nil
}

// Validate ensures the Part was properly constructed.
func (p *Part) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartIsNotConstructed
	}
	return nil
}

// IsEqual compares two parts by their unique identifiers.
func (p *Part) IsEqual(other *Part) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the part's unique identifier.
func (p *Part) ID() kernel.UUID {
	return p.id
}

// Name returns the part's display name.
func (p *Part) Name() string {
	return p.name
}

// Code returns the shop-internal reference code, possibly empty.
func (p *Part) Code() string {
	return p.code
}

// Price returns the current unit price.
func (p *Part) Price() kernel.Price {
	return p.price
}

// Stock returns the current shelf count.
func (p *Part) Stock() Stock {
	return p.stock
}

// HasStock reports whether the given quantity can be taken off the shelf.
func (p *Part) HasStock(quantity kernel.Quantity) bool {
	return p.stock.Has(quantity)
}

// Restock adds units to the shelf.
func (p *Part) Restock(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}

	p.stock = p.stock.Add(quantity)
	return nil
}

// Deplete takes units off the shelf, typically when a part is billed on a
// work order. Returns a business-rule error when the quantity exceeds the
// available units.
func (p *Part) Deplete(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}

	stock, err := p.stock.Remove(quantity)
	if err != nil {
		return err
	}
	p.stock = stock
	return nil
}

// UpdatePrice replaces the unit price. Existing work-order line items keep
// their snapshot and are unaffected.
func (p *Part) UpdatePrice(price kernel.Price) error {
	return p.setPrice(price)
}

func (p *Part) setName(name string) error {
	if len(name) < minPartNameLength {
		return errs.NewValueIsInvalidError("part name must have at least 2 characters")
	}
	p.name = name
	return nil
}

func (p *Part) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

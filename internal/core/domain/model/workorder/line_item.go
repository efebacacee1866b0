package workorder

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem")

// ItemKind distinguishes the two kinds of work-order line items:
// labor from the service catalog and parts from stock.
type ItemKind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown ItemKind = iota

	// KindService references an entry in the service catalog.
	KindService

	// KindPart references a part in stock.
	KindPart
)

// ItemKindFromString parses an ItemKind from its canonical string form
// ("service" or "part").
func ItemKindFromString(value string) (ItemKind, error) {
	switch value {
	case "":
		return KindUnknown, errs.NewValueIsRequiredError("item kind")
	case "service":
		return KindService, nil
	case "part":
		return KindPart, nil
	default:
		return KindUnknown, errs.NewValueIsInvalidError("item kind")
	}
}

// String returns the canonical name of the kind.
func (k ItemKind) String() string {
	switch k {
	case KindService:
		return "service"
	case KindPart:
		return "part"
	default:
		return "unknown"
	}
}

// Validate checks if the ItemKind value is valid.
func (k ItemKind) Validate() error {
	if k != KindService && k != KindPart {
		return errs.NewValueIsInvalidError("item kind")
	}
	return nil
}

// LineItem is an entity representing one budgeted line of a work order:
// a quantity of either a catalog service or a stocked part, priced with a
// snapshot of the unit price taken when the item was added. Later catalog
// or part price changes never affect an existing line item.
//
// LineItem is immutable after construction; WithQuantity returns a new
// instance. Two line items are considered the same line when they reference
// the same kind and the same catalog/part entry, regardless of quantity.
type LineItem struct {
	id            kernel.UUID
	orderID       kernel.UUID
	kind          ItemKind
	referencedID  kernel.UUID
	quantity      kernel.Quantity
	unitPrice     kernel.Price
	isConstructed bool
}

// NewLineItem creates a line item for a work order with a fresh identifier.
//
// Parameters:
//   - orderID: the owning work order
//   - kind: service or part
//   - referencedID: the catalog service or part being billed
//   - quantity: how many units (must be positive)
//   - unitPrice: the price snapshot per unit
func NewLineItem(
	orderID kernel.UUID,
	kind ItemKind,
	referencedID kernel.UUID,
	quantity kernel.Quantity,
	unitPrice kernel.Price,
) (*LineItem, error) {
	item := &LineItem{
		id:            kernel.NewUUID(),
		isConstructed: true,
	}

	if err := errors.Join(
		item.setOrderID(orderID),
		item.setKind(kind),
		item.setReferencedID(referencedID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreLineItem recreates a line item from persistence.
// Unlike NewLineItem it requires the original identifier. A stored item with
// any missing field is corrupted, so failures surface as a business-rule
// error wrapping the field problem.
func RestoreLineItem(
	id kernel.UUID,
	orderID kernel.UUID,
	kind ItemKind,
	referencedID kernel.UUID,
	quantity kernel.Quantity,
	unitPrice kernel.Price,
) (*LineItem, error) {
	item := &LineItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setKind(kind),
		item.setReferencedID(referencedID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, errs.NewBusinessRuleErrorWithCause("cannot restore line item", err)
	}

	return item, nil
}

// Validate ensures the LineItem was properly constructed.
func (i *LineItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// IsEqual reports whether both items bill the same thing.
// Equality compares kind and referenced entry only; identifier, owning order
// and quantity do not participate.
func (i *LineItem) IsEqual(other *LineItem) bool {
	return other != nil && i.kind == other.kind && i.referencedID.IsEqual(other.referencedID)
}

// ID returns the line item's unique identifier.
func (i *LineItem) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the owning work order.
func (i *LineItem) OrderID() kernel.UUID {
	return i.orderID
}

// BelongsToOrder reports whether the item is owned by the given work order.
func (i *LineItem) BelongsToOrder(orderID kernel.UUID) bool {
	return i.orderID.IsEqual(orderID)
}

// Kind returns whether the item bills a service or a part.
func (i *LineItem) Kind() ItemKind {
	return i.kind
}

// ReferencedID returns the identifier of the billed catalog service or part.
func (i *LineItem) ReferencedID() kernel.UUID {
	return i.referencedID
}

// Quantity returns how many units the item bills.
func (i *LineItem) Quantity() kernel.Quantity {
	return i.quantity
}

// UnitPrice returns the per-unit price snapshot.
func (i *LineItem) UnitPrice() kernel.Price {
	return i.unitPrice
}

// Subtotal returns quantity times the unit-price snapshot.
func (i *LineItem) Subtotal() kernel.Price {
	return i.unitPrice.MulQuantity(i.quantity)
}

// WithQuantity returns a copy of the item billing a different quantity.
// The original item is left untouched.
func (i *LineItem) WithQuantity(quantity kernel.Quantity) (*LineItem, error) {
	if err := quantity.Validate(); err != nil {
		return nil, err
	}

	clone := *i
	clone.quantity = quantity
	return &clone, nil
}

func (i *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *LineItem) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

func (i *LineItem) setKind(kind ItemKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	i.kind = kind
	return nil
}

func (i *LineItem) setReferencedID(referencedID kernel.UUID) error {
	if err := referencedID.Validate(); err != nil {
		return err
	}
	i.referencedID = referencedID
	return nil
}

func (i *LineItem) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice kernel.Price) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

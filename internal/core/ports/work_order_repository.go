// Package ports defines repository interfaces for the workshop domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work-order
// aggregates and their line items. An aggregate is always stored and loaded
// as a whole: Get returns the order with every line item attached, and
// Update persists the order row together with its items.
type WorkOrderRepository interface {
	// Add persists a new work-order aggregate with its line items.
	Add(ctx context.Context, aggregate *workorder.WorkOrder, items []*workorder.LineItem) error

	// Update persists changes to an existing work-order aggregate.
	// The items slice replaces the stored line items.
	Update(ctx context.Context, aggregate *workorder.WorkOrder, items []*workorder.LineItem) error

	// Get retrieves a work-order aggregate by its unique identifier.
	// Returns an object-not-found error when no order exists.
	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)

	// GetItems retrieves the line items of a work order.
	GetItems(ctx context.Context, orderID kernel.UUID) ([]*workorder.LineItem, error)

	// Delete removes a work-order aggregate with its line items.
	Delete(ctx context.Context, id kernel.UUID) error
}

package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/part"
)

// PartRepository defines the persistence contract for part aggregates.
type PartRepository interface {
	// Add persists a new part aggregate to storage.
	Add(ctx context.Context, aggregate *part.Part) error

	// Update persists changes to an existing part aggregate,
	// including its shelf count.
	Update(ctx context.Context, aggregate *part.Part) error

	// Get retrieves a part aggregate by its unique identifier.
	// Returns an object-not-found error when no part exists.
	Get(ctx context.Context, id kernel.UUID) (*part.Part, error)
}

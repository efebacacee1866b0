package ports

import (
	"context"

	"workshop/internal/core/domain/model/catalog"
	"workshop/internal/core/domain/model/kernel"
)

// CatalogRepository defines the persistence contract for catalog service
// aggregates.
type CatalogRepository interface {
	// Add persists a new catalog service to storage.
	Add(ctx context.Context, aggregate *catalog.Service) error

	// Update persists changes to an existing catalog service.
	Update(ctx context.Context, aggregate *catalog.Service) error

	// Get retrieves a catalog service by its unique identifier.
	// Returns an object-not-found error when no service exists.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Service, error)
}

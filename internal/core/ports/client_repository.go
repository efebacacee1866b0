package ports

import (
	"context"

	"workshop/internal/core/domain/model/client"
	"workshop/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for client aggregates.
type ClientRepository interface {
	// Add persists a new client to storage.
	Add(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client by its unique identifier.
	// Returns an object-not-found error when no client exists.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)
}

// VehicleRepository defines the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	// Add persists a new vehicle to storage.
	Add(ctx context.Context, aggregate *client.Vehicle) error

	// Get retrieves a vehicle by its unique identifier.
	// Returns an object-not-found error when no vehicle exists.
	Get(ctx context.Context, id kernel.UUID) (*client.Vehicle, error)
}

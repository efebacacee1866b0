package queries

import (
	"context"

	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetClientsQueryHandler lists registered clients from the database.
type GetClientsQueryHandler struct {
	db *gorm.DB
}

// NewGetClientsQueryHandler creates a handler for client listings.
func NewGetClientsQueryHandler(db *gorm.DB) GetClientsQueryHandler {
	return GetClientsQueryHandler{db: db}
}

// Handle executes the client listing query. Results are sorted by name.
func (h GetClientsQueryHandler) Handle(
	ctx context.Context,
	query GetClientsQuery,
) ([]GetClientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			document
		FROM clients
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]GetClientsQueryResponse, 0)
	for rows.Next() {
		var (
			resp GetClientsQueryResponse
			id   uuid.UUID
		)

		if err = rows.Scan(&id, &resp.Name, &resp.Document); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		clients = append(clients, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}

package queries

import (
	"context"

	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetServicesQueryHandler lists the service catalog from the database.
type GetServicesQueryHandler struct {
	db *gorm.DB
}

// NewGetServicesQueryHandler creates a handler for catalog listings.
func NewGetServicesQueryHandler(db *gorm.DB) GetServicesQueryHandler {
	return GetServicesQueryHandler{db: db}
}

// Handle executes the catalog listing query. Results are sorted by name.
func (h GetServicesQueryHandler) Handle(
	ctx context.Context,
	query GetServicesQuery,
) ([]GetServicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price
		FROM services
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]GetServicesQueryResponse, 0)
	for rows.Next() {
		var (
			resp  GetServicesQueryResponse
			id    uuid.UUID
			price decimal.Decimal
		)

		if err = rows.Scan(&id, &resp.Name, &price); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.Price, err = kernel.NewPrice(price); err != nil {
			return nil, err
		}

		services = append(services, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}

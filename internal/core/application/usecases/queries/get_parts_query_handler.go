package queries

import (
	"context"

	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPartsQueryHandler lists the part stock from the database.
type GetPartsQueryHandler struct {
	db *gorm.DB
}

// NewGetPartsQueryHandler creates a handler for stock listings.
func NewGetPartsQueryHandler(db *gorm.DB) GetPartsQueryHandler {
	return GetPartsQueryHandler{db: db}
}

// Handle executes the stock listing query. Results are sorted by name.
func (h GetPartsQueryHandler) Handle(
	ctx context.Context,
	query GetPartsQuery,
) ([]GetPartsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			code,
			price,
			units
		FROM parts
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parts := make([]GetPartsQueryResponse, 0)
	for rows.Next() {
		var (
			resp  GetPartsQueryResponse
			id    uuid.UUID
			price decimal.Decimal
		)

		if err = rows.Scan(&id, &resp.Name, &resp.Code, &price, &resp.Units); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.Price, err = kernel.NewPrice(price); err != nil {
			return nil, err
		}

		parts = append(parts, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parts, nil
}

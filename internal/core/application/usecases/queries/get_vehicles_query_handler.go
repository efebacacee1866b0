package queries

import (
	"context"

	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVehiclesQueryHandler lists registered vehicles from the database.
type GetVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetVehiclesQueryHandler creates a handler for vehicle listings.
func NewGetVehiclesQueryHandler(db *gorm.DB) GetVehiclesQueryHandler {
	return GetVehiclesQueryHandler{db: db}
}

// Handle executes the vehicle listing query. Results are sorted by plate.
func (h GetVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetVehiclesQuery,
) ([]GetVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			client_id,
			plate,
			model,
			year
		FROM vehicles
	`
	args := make([]any, 0, 1)
	if query.ClientID() != nil {
		sql += " WHERE client_id = ?"
		args = append(args, query.ClientID().String())
	}
	sql += " ORDER BY plate"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]GetVehiclesQueryResponse, 0)
	for rows.Next() {
		var (
			resp     GetVehiclesQueryResponse
			id       uuid.UUID
			clientID uuid.UUID
		)

		if err = rows.Scan(&id, &clientID, &resp.Plate, &resp.Model, &resp.Year); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}

		vehicles = append(vehicles, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}

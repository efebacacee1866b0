package queries

import (
	"context"
	"sort"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetWorkOrdersQueryHandler lists work orders from the database as a work
// queue. Active statuses come first, ordered by how close the order is to
// completion, with older orders ahead of newer ones within a status.
type GetWorkOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkOrdersQueryHandler creates a handler for work-queue listings.
func NewGetWorkOrdersQueryHandler(db *gorm.DB) GetWorkOrdersQueryHandler {
	return GetWorkOrdersQueryHandler{db: db}
}

// Handle executes the listing query with the requested filters.
func (h GetWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrdersQuery,
) ([]GetWorkOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := strings.Builder{}
	sql.WriteString(`
		SELECT
			id,
			client_id,
			vehicle_id,
			status,
			total,
			created_at
		FROM work_orders
	`)

	conds := make([]string, 0, 3)
	args := make([]any, 0, 3)
	if query.ClientID() != nil {
		conds = append(conds, "client_id = ?")
		args = append(args, query.ClientID().String())
	}
	if query.VehicleID() != nil {
		conds = append(conds, "vehicle_id = ?")
		args = append(args, query.VehicleID().String())
	}
	if query.Status() != nil {
		conds = append(conds, "status = ?")
		args = append(args, query.Status().String())
	}
	if len(conds) > 0 {
		sql.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sql.WriteString(" ORDER BY created_at")

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetWorkOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp      GetWorkOrdersQueryResponse
			id        uuid.UUID
			clientID  uuid.NullUUID
			vehicleID uuid.NullUUID
			status    string
			total     decimal.Decimal
		)

		if err = rows.Scan(&id, &clientID, &vehicleID, &status, &total, &resp.CreatedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ClientID, err = optionalUUID(clientID); err != nil {
			return nil, err
		}
		if resp.VehicleID, err = optionalUUID(vehicleID); err != nil {
			return nil, err
		}
		if resp.Status, err = workorder.StatusFromString(status); err != nil {
			return nil, err
		}
		if resp.Total, err = kernel.NewPrice(total); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	// Work-queue ordering is a domain concern, so it lives on Status
	// rather than in SQL.
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Status.Priority() < orders[j].Status.Priority()
	})

	return orders, nil
}

// optionalUUID converts a nullable database UUID to a domain identifier.
func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}

	converted, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

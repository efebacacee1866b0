package queries

import (
	"context"
	"database/sql"
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetWorkOrderByIDQueryHandler retrieves one work order with its line items
// from the database.
type GetWorkOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkOrderByIDQueryHandler creates a handler for the detail view.
func NewGetWorkOrderByIDQueryHandler(db *gorm.DB) GetWorkOrderByIDQueryHandler {
	return GetWorkOrderByIDQueryHandler{db: db}
}

// Handle executes the detail query. Returns an object-not-found error when
// no work order exists with the requested identifier.
func (h GetWorkOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrderByIDQuery,
) (GetWorkOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWorkOrderByIDQueryResponse{}, err
	}

	resp, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetWorkOrderByIDQueryResponse{}, err
	}

	resp.Items, err = h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetWorkOrderByIDQueryResponse{}, err
	}

	return resp, nil
}

func (h GetWorkOrderByIDQueryHandler) loadOrder(
	ctx context.Context, orderID kernel.UUID,
) (GetWorkOrderByIDQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			vehicle_id,
			status,
			total,
			started_at,
			ended_at,
			created_at,
			updated_at
		FROM work_orders
		WHERE id = ?
	`, orderID.String()).Row()

	var (
		resp      GetWorkOrderByIDQueryResponse
		id        uuid.UUID
		clientID  uuid.NullUUID
		vehicleID uuid.NullUUID
		status    string
		total     decimal.Decimal
		startedAt sql.NullTime
		endedAt   sql.NullTime
	)

	err := row.Scan(
		&id, &clientID, &vehicleID, &status, &total,
		&startedAt, &endedAt, &resp.CreatedAt, &resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetWorkOrderByIDQueryResponse{}, errs.NewObjectNotFoundError("orderId", orderID.String())
	}
	if err != nil {
		return GetWorkOrderByIDQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetWorkOrderByIDQueryResponse{}, err
	}
	if resp.ClientID, err = optionalUUID(clientID); err != nil {
		return GetWorkOrderByIDQueryResponse{}, err
	}
	if resp.VehicleID, err = optionalUUID(vehicleID); err != nil {
		return GetWorkOrderByIDQueryResponse{}, err
	}
	if resp.Status, err = workorder.StatusFromString(status); err != nil {
		return GetWorkOrderByIDQueryResponse{}, err
	}
	if resp.Total, err = kernel.NewPrice(total); err != nil {
		return GetWorkOrderByIDQueryResponse{}, err
	}
	if startedAt.Valid {
		resp.StartedAt = &startedAt.Time
	}
	if endedAt.Valid {
		resp.EndedAt = &endedAt.Time
	}

	return resp, nil
}

func (h GetWorkOrderByIDQueryHandler) loadItems(
	ctx context.Context, orderID kernel.UUID,
) ([]WorkOrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			referenced_id,
			quantity,
			unit_price
		FROM work_order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]WorkOrderItemResponse, 0)
	for rows.Next() {
		var (
			item         WorkOrderItemResponse
			id           uuid.UUID
			kind         string
			referencedID uuid.UUID
			unitPrice    decimal.Decimal
		)

		if err = rows.Scan(&id, &kind, &referencedID, &item.Quantity, &unitPrice); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.Kind, err = workorder.ItemKindFromString(kind); err != nil {
			return nil, err
		}
		if item.ReferencedID, err = kernel.UUIDFromBytes(referencedID[:]); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = kernel.NewPrice(unitPrice); err != nil {
			return nil, err
		}
		if item.Subtotal, err = kernel.NewPrice(unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))); err != nil {
			return nil, err
		}

		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

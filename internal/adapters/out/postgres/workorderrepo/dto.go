// Package workorderrepo persists work-order aggregates and their line items.
// It maps the aggregate to two tables: the order row and one row per line
// item, restoring the full aggregate on load.
package workorderrepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the database representation of a work order.
// The status is stored in its canonical string form so rows stay readable
// and the work-queue query can filter on it directly.
type OrderDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID  *uuid.UUID      `gorm:"type:uuid;index"`
	VehicleID *uuid.UUID      `gorm:"type:uuid;index"`
	Status    string          `gorm:"type:varchar(32);index"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2)"`
	StartedAt *time.Time
	EndedAt   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "work_orders".
func (OrderDTO) TableName() string {
	return "work_orders"
}

// LineItemDTO is the database representation of one budgeted line.
type LineItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	Kind         string    `gorm:"type:varchar(16)"`
	ReferencedID uuid.UUID `gorm:"type:uuid"`
	Quantity     int
	UnitPrice    decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName overrides GORM's default naming to use "work_order_items".
func (LineItemDTO) TableName() string {
	return "work_order_items"
}

func fromDomain(order *workorder.WorkOrder) OrderDTO {
	return OrderDTO{
		ID:        order.ID().Bytes(),
		ClientID:  optionalBytes(order.ClientID()),
		VehicleID: optionalBytes(order.VehicleID()),
		Status:    order.Status().String(),
		Total:     order.Total().Amount(),
		StartedAt: order.ExecutionPeriod().StartedAt(),
		EndedAt:   order.ExecutionPeriod().EndedAt(),
		CreatedAt: order.CreatedAt(),
		UpdatedAt: order.UpdatedAt(),
	}
}

func itemFromDomain(item *workorder.LineItem) LineItemDTO {
	return LineItemDTO{
		ID:           item.ID().Bytes(),
		OrderID:      item.OrderID().Bytes(),
		Kind:         item.Kind().String(),
		ReferencedID: item.ReferencedID().Bytes(),
		Quantity:     item.Quantity().Value(),
		UnitPrice:    item.UnitPrice().Amount(),
	}
}

func toDomain(dto OrderDTO) (*workorder.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := optionalUUID(dto.ClientID)
	if err != nil {
		return nil, err
	}
	vehicleID, err := optionalUUID(dto.VehicleID)
	if err != nil {
		return nil, err
	}

	status, err := workorder.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewPrice(dto.Total)
	if err != nil {
		return nil, err
	}

	period, err := workorder.RestoreExecutionPeriod(dto.StartedAt, dto.EndedAt)
	if err != nil {
		return nil, err
	}

	return workorder.RestoreWorkOrder(
		id, clientID, vehicleID, status, total, period, dto.CreatedAt, dto.UpdatedAt,
	)
}

func itemToDomain(dto LineItemDTO) (*workorder.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	referencedID, err := kernel.UUIDFromBytes(dto.ReferencedID[:])
	if err != nil {
		return nil, err
	}

	kind, err := workorder.ItemKindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}
	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewPrice(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return workorder.RestoreLineItem(id, orderID, kind, referencedID, quantity, unitPrice)
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

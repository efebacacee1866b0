// Package partrepo persists part aggregates with their shelf counts.
package partrepo

import (
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/part"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartDTO is the database representation of a part in stock.
type PartDTO struct {
	ID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name  string          `gorm:"type:varchar(255)"`
	Code  string          `gorm:"type:varchar(64);index"`
	Price decimal.Decimal `gorm:"type:numeric(12,2)"`
	Units int
}

// TableName overrides GORM's default naming to use "parts".
func (PartDTO) TableName() string {
	return "parts"
}

func fromDomain(p *part.Part) PartDTO {
	return PartDTO{
		ID:    p.ID().Bytes(),
		Name:  p.Name(),
		Code:  p.Code(),
		Price: p.Price().Amount(),
		Units: p.Stock().Units(),
	}
}

func toDomain(dto PartDTO) (*part.Part, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	stock, err := part.NewStock(dto.Units)
	if err != nil {
		return nil, err
	}

	return part.RestorePart(id, dto.Name, dto.Code, price, stock)
}

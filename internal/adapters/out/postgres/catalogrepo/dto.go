// Package catalogrepo persists service catalog aggregates.
package catalogrepo

import (
	"workshop/internal/core/domain/model/catalog"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceDTO is the database representation of a catalog service.
type ServiceDTO struct {
	ID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name  string          `gorm:"type:varchar(255)"`
	Price decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName overrides GORM's default naming to use "services".
func (ServiceDTO) TableName() string {
	return "services"
}

func fromDomain(svc *catalog.Service) ServiceDTO {
	return ServiceDTO{
		ID:    svc.ID().Bytes(),
		Name:  svc.Name(),
		Price: svc.Price().Amount(),
	}
}

func toDomain(dto ServiceDTO) (*catalog.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreService(id, dto.Name, price)
}

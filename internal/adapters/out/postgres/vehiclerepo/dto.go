// Package vehiclerepo persists vehicle aggregates.
package vehiclerepo

import (
	"workshop/internal/core/domain/model/client"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// VehicleDTO is the database representation of a registered vehicle.
type VehicleDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID uuid.UUID `gorm:"type:uuid;index"`
	Plate    string    `gorm:"type:varchar(16);index"`
	Model    string    `gorm:"type:varchar(255)"`
	Year     int
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(v *client.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:       v.ID().Bytes(),
		ClientID: v.ClientID().Bytes(),
		Plate:    v.Plate(),
		Model:    v.Model(),
		Year:     v.Year(),
	}
}

func toDomain(dto VehicleDTO) (*client.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	return client.RestoreVehicle(id, clientID, dto.Plate, dto.Model, dto.Year)
}

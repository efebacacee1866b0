// Package clientrepo persists client aggregates.
package clientrepo

import (
	"workshop/internal/core/domain/model/client"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO is the database representation of a registered client.
type ClientDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255)"`
	Document string    `gorm:"type:varchar(64);index"`
}

// TableName overrides GORM's default naming to use "clients".
func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(c *client.Client) ClientDTO {
	return ClientDTO{
		ID:       c.ID().Bytes(),
		Name:     c.Name(),
		Document: c.Document(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(id, dto.Name, dto.Document)
}

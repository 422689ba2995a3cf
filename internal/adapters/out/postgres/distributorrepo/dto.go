// Package distributorrepo implements the repository pattern for distributor
// profiles.
package distributorrepo

import (
	"supplytrace/internal/core/domain/model/distributor"
	"supplytrace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DistributorDTO represents the database structure for persisting distributors.
type DistributorDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	BusinessName string
}

// TableName specifies the database table name for distributor entities.
func (DistributorDTO) TableName() string {
	return "distributors"
}

func fromDomain(aggregate *distributor.Distributor) DistributorDTO {
	return DistributorDTO{
		ID:           aggregate.ID().Bytes(),
		UserID:       aggregate.UserID().Bytes(),
		BusinessName: aggregate.BusinessName(),
	}
}

func toDomain(dto DistributorDTO) (*distributor.Distributor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return distributor.RestoreDistributor(id, userID, dto.BusinessName)
}

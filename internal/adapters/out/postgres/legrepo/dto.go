// Package legrepo implements the repository pattern for custody hop
// aggregates, mapping between the leg domain model and its database rows.
package legrepo

import (
	"time"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/leg"

	"github.com/google/uuid"
)

// LegDTO represents the database structure for persisting custody hops.
// Exactly one of the sender columns is set; the recipient column is set only
// for distributor-bound hops.
type LegDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;index:idx_legs_order_number,unique"`
	LegNumber         int       `gorm:"index:idx_legs_order_number,unique"`
	FromType          int
	FromSupplierID    *uuid.UUID `gorm:"type:uuid"`
	FromDistributorID *uuid.UUID `gorm:"type:uuid;index"`
	ToType            int
	ToDistributorID   *uuid.UUID `gorm:"type:uuid;index"`
	TransporterID     uuid.UUID  `gorm:"type:uuid;index"`
	Status            int        `gorm:"index"`
	CreatedAt         time.Time
}

// TableName specifies the database table name for leg entities.
func (LegDTO) TableName() string {
	return "legs"
}

func fromDomain(aggregate *leg.Leg) LegDTO {
	dto := LegDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		LegNumber:     aggregate.LegNumber(),
		FromType:      int(aggregate.FromType()),
		ToType:        int(aggregate.ToType()),
		TransporterID: aggregate.TransporterID().Bytes(),
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
	}

	if id := aggregate.FromSupplierID(); id != nil {
		raw := id.Bytes()
		dto.FromSupplierID = &raw
	}
	if id := aggregate.FromDistributorID(); id != nil {
		raw := id.Bytes()
		dto.FromDistributorID = &raw
	}
	if id := aggregate.ToDistributorID(); id != nil {
		raw := id.Bytes()
		dto.ToDistributorID = &raw
	}

	return dto
}

func toDomain(dto LegDTO) (*leg.Leg, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	transporterID, err := kernel.UUIDFromBytes(dto.TransporterID[:])
	if err != nil {
		return nil, err
	}

	fromSupplierID, err := optionalUUID(dto.FromSupplierID)
	if err != nil {
		return nil, err
	}
	fromDistributorID, err := optionalUUID(dto.FromDistributorID)
	if err != nil {
		return nil, err
	}
	toDistributorID, err := optionalUUID(dto.ToDistributorID)
	if err != nil {
		return nil, err
	}

	return leg.RestoreLeg(
		id,
		orderID,
		dto.LegNumber,
		leg.PartyType(dto.FromType),
		fromSupplierID,
		fromDistributorID,
		leg.PartyType(dto.ToType),
		toDistributorID,
		transporterID,
		leg.Status(dto.Status),
		dto.CreatedAt,
	)
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

// Package transporterrepo implements the repository pattern for carriers.
package transporterrepo

import (
	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/transporter"

	"github.com/google/uuid"
)

// TransporterDTO represents the database structure for persisting carriers.
// Exactly one of the owner columns is set.
type TransporterDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	VehicleNumber string
	SupplierID    *uuid.UUID `gorm:"type:uuid;index"`
	DistributorID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for transporter entities.
func (TransporterDTO) TableName() string {
	return "transporters"
}

func fromDomain(aggregate *transporter.Transporter) TransporterDTO {
	dto := TransporterDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		VehicleNumber: aggregate.VehicleNumber(),
	}

	if id := aggregate.SupplierID(); id != nil {
		raw := id.Bytes()
		dto.SupplierID = &raw
	}
	if id := aggregate.DistributorID(); id != nil {
		raw := id.Bytes()
		dto.DistributorID = &raw
	}

	return dto
}

func toDomain(dto TransporterDTO) (*transporter.Transporter, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var supplierID *kernel.UUID
	if dto.SupplierID != nil {
		sID, supErr := kernel.UUIDFromBytes((*dto.SupplierID)[:])
		if supErr != nil {
			return nil, supErr
		}
		supplierID = &sID
	}

	var distributorID *kernel.UUID
	if dto.DistributorID != nil {
		dID, distErr := kernel.UUIDFromBytes((*dto.DistributorID)[:])
		if distErr != nil {
			return nil, distErr
		}
		distributorID = &dID
	}

	return transporter.RestoreTransporter(id, dto.Name, dto.VehicleNumber, supplierID, distributorID)
}

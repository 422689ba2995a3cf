// Package supplierrepo implements the repository pattern for supplier
// profiles.
package supplierrepo

import (
	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/supplier"

	"github.com/google/uuid"
)

// SupplierDTO represents the database structure for persisting suppliers.
// The key columns are empty strings until the profile is provisioned.
type SupplierDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	BusinessName   string
	WarehouseID    uuid.UUID `gorm:"type:uuid"`
	PublicKey      string
	PrivateKeyHash string
}

// TableName specifies the database table name for supplier entities.
func (SupplierDTO) TableName() string {
	return "suppliers"
}

func fromDomain(aggregate *supplier.Supplier) SupplierDTO {
	return SupplierDTO{
		ID:             aggregate.ID().Bytes(),
		UserID:         aggregate.UserID().Bytes(),
		BusinessName:   aggregate.BusinessName(),
		WarehouseID:    aggregate.WarehouseID().Bytes(),
		PublicKey:      aggregate.PublicKey(),
		PrivateKeyHash: aggregate.PrivateKeyHash(),
	}
}

func toDomain(dto SupplierDTO) (*supplier.Supplier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	return supplier.RestoreSupplier(
		id,
		userID,
		dto.BusinessName,
		warehouseID,
		dto.PublicKey,
		dto.PrivateKeyHash,
	)
}

// Package productrepo implements the repository pattern for catalog items.
package productrepo

import (
	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting catalog items.
type ProductDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	SupplierID     uuid.UUID `gorm:"type:uuid;index"`
	Name           string
	Category       string
	BatchNo        string
	UnitPriceCents int64
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:             aggregate.ID().Bytes(),
		SupplierID:     aggregate.SupplierID().Bytes(),
		Name:           aggregate.Name(),
		Category:       aggregate.Category(),
		BatchNo:        aggregate.BatchNo(),
		UnitPriceCents: aggregate.UnitPrice().Cents(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPriceCents)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, supplierID, dto.Name, dto.Category, dto.BatchNo, unitPrice)
}

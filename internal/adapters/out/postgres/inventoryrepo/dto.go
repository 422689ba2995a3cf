// Package inventoryrepo implements the repository pattern for warehouse
// stock records.
package inventoryrepo

import (
	"supplytrace/internal/core/domain/model/inventory"
	"supplytrace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InventoryDTO represents the database structure for persisting stock.
// One row per product per warehouse.
type InventoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WarehouseID uuid.UUID `gorm:"type:uuid;index:idx_inventory_warehouse_product,unique"`
	ProductID   uuid.UUID `gorm:"type:uuid;index:idx_inventory_warehouse_product,unique"`
	Quantity    int
}

// TableName specifies the database table name for inventory entities.
func (InventoryDTO) TableName() string {
	return "inventories"
}

func fromDomain(aggregate *inventory.Inventory) InventoryDTO {
	return InventoryDTO{
		ID:          aggregate.ID().Bytes(),
		WarehouseID: aggregate.WarehouseID().Bytes(),
		ProductID:   aggregate.ProductID().Bytes(),
		Quantity:    aggregate.Quantity(),
	}
}

func toDomain(dto InventoryDTO) (*inventory.Inventory, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return inventory.RestoreInventory(id, warehouseID, productID, dto.Quantity)
}

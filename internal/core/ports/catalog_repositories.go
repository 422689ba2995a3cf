package ports

import (
	"context"

	"supplytrace/internal/core/domain/model/inventory"
	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog items.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}

// InventoryRepository defines the persistence contract for warehouse stock.
type InventoryRepository interface {
	// Add persists a new stock record to storage.
	Add(ctx context.Context, aggregate *inventory.Inventory) error

	// Update persists changes to an existing stock record.
	Update(ctx context.Context, aggregate *inventory.Inventory) error

	// GetByWarehouseAndProduct retrieves the stock record for a product in a
	// warehouse.
	GetByWarehouseAndProduct(ctx context.Context, warehouseID, productID kernel.UUID) (*inventory.Inventory, error)

	// GetByWarehouseAndProductForUpdate retrieves the stock record and
	// row-locks it for the remainder of the transaction. Concurrent
	// approvals of orders for the same product serialize on this lock, so
	// stock can never be reserved below zero.
	GetByWarehouseAndProductForUpdate(ctx context.Context, warehouseID, productID kernel.UUID) (*inventory.Inventory, error)
}

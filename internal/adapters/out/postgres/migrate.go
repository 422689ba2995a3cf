package postgres

import (
	"supplytrace/internal/adapters/out/postgres/distributorrepo"
	"supplytrace/internal/adapters/out/postgres/inventoryrepo"
	"supplytrace/internal/adapters/out/postgres/legrepo"
	"supplytrace/internal/adapters/out/postgres/orderrepo"
	"supplytrace/internal/adapters/out/postgres/outboxrepo"
	"supplytrace/internal/adapters/out/postgres/productrepo"
	"supplytrace/internal/adapters/out/postgres/supplierrepo"
	"supplytrace/internal/adapters/out/postgres/trackingrepo"
	"supplytrace/internal/adapters/out/postgres/transporterrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table of the persistence layer.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&supplierrepo.SupplierDTO{},
		&distributorrepo.DistributorDTO{},
		&productrepo.ProductDTO{},
		&inventoryrepo.InventoryDTO{},
		&transporterrepo.TransporterDTO{},
		&orderrepo.OrderDTO{},
		&legrepo.LegDTO{},
		&trackingrepo.TrackingEventDTO{},
		&outboxrepo.OutboxMessageDTO{},
	)
}

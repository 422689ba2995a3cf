package inventoryrepo

import (
	"context"
	"errors"
	"fmt"

	"supplytrace/internal/core/domain/model/inventory"
	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new stock record to the database.
func (r *GormInventoryRepository) Add(ctx context.Context, aggregate *inventory.Inventory) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing stock record to the database.
// Quantity can legitimately reach zero, so the update selects the column
// explicitly rather than relying on non-zero field detection.
func (r *GormInventoryRepository) Update(ctx context.Context, aggregate *inventory.Inventory) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&InventoryDTO{}).
		Where("id = ?", dto.ID).
		Select("quantity").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByWarehouseAndProduct retrieves the stock record for a product in a
// warehouse.
func (r *GormInventoryRepository) GetByWarehouseAndProduct(
	ctx context.Context,
	warehouseID, productID kernel.UUID,
) (*inventory.Inventory, error) {
	return r.get(ctx, warehouseID, productID, false)
}

// GetByWarehouseAndProductForUpdate retrieves the stock record and row-locks
// it until the surrounding transaction ends.
func (r *GormInventoryRepository) GetByWarehouseAndProductForUpdate(
	ctx context.Context,
	warehouseID, productID kernel.UUID,
) (*inventory.Inventory, error) {
	return r.get(ctx, warehouseID, productID, true)
}

func (r *GormInventoryRepository) get(
	ctx context.Context,
	warehouseID, productID kernel.UUID,
	forUpdate bool,
) (*inventory.Inventory, error) {
	if err := errors.Join(warehouseID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto InventoryDTO
	err := tx.First(&dto, "warehouse_id = ? AND product_id = ?", warehouseID.Bytes(), productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(
				"inventory", fmt.Sprintf("%s/%s", warehouseID, productID),
			)
		}
		return nil, err
	}

	return toDomain(dto)
}

package legrepo

import (
	"context"
	"errors"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/leg"
	"supplytrace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLegRepository implements LegRepository using GORM.
type GormLegRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLegRepository creates a new GORM leg repository.
func NewGormLegRepository(db *gorm.DB, tracker aggregateTracker) *GormLegRepository {
	return &GormLegRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new leg to the database.
func (r *GormLegRepository) Add(ctx context.Context, aggregate *leg.Leg) error {
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

// Update saves an existing leg to the database.
func (r *GormLegRepository) Update(ctx context.Context, aggregate *leg.Leg) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LegDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a leg by ID.
func (r *GormLegRepository) Get(ctx context.Context, id kernel.UUID) (*leg.Leg, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LegDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("leg", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves every leg of an order ordered by leg number.
func (r *GormLegRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*leg.Leg, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LegDTO
	err := r.db.WithContext(ctx).
		Order("leg_number").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	legs := make([]*leg.Leg, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		legs = append(legs, l)
	}

	return legs, nil
}

// GetLastByOrder retrieves the highest-numbered leg of an order.
func (r *GormLegRepository) GetLastByOrder(ctx context.Context, orderID kernel.UUID) (*leg.Leg, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto LegDTO
	err := r.db.WithContext(ctx).
		Order("leg_number DESC").
		First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("leg", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// HasActiveByTransporter reports whether the transporter carries any hop
// that has not reached a terminal status.
func (r *GormLegRepository) HasActiveByTransporter(ctx context.Context, transporterID kernel.UUID) (bool, error) {
	if err := transporterID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&LegDTO{}).
		Where("transporter_id = ? AND status IN ?", transporterID.Bytes(), []int{
			int(leg.Pending), int(leg.Accepted), int(leg.InTransit),
		}).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

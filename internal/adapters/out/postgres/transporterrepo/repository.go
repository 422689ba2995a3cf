package transporterrepo

import (
	"context"
	"errors"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/transporter"
	"supplytrace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransporterRepository implements TransporterRepository using GORM.
type GormTransporterRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransporterRepository creates a new GORM transporter repository.
func NewGormTransporterRepository(db *gorm.DB, tracker aggregateTracker) *GormTransporterRepository {
	return &GormTransporterRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new transporter to the database.
func (r *GormTransporterRepository) Add(ctx context.Context, aggregate *transporter.Transporter) error {
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

// Get retrieves a transporter by ID.
func (r *GormTransporterRepository) Get(ctx context.Context, id kernel.UUID) (*transporter.Transporter, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransporterDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transporter", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a transporter from the database.
func (r *GormTransporterRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TransporterDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("transporter", id.String())
	}

	return nil
}

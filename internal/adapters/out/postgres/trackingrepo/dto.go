// Package trackingrepo implements the repository for the append-only audit
// trail.
package trackingrepo

import (
	"time"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// TrackingEventDTO represents the database structure for audit trail rows.
// Rows are insert-only.
type TrackingEventDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;index"`
	LegID       *uuid.UUID `gorm:"type:uuid"`
	EventType   int
	Description string
	OccurredAt  time.Time `gorm:"index"`
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

func fromDomain(event *tracking.TrackingEvent) TrackingEventDTO {
	dto := TrackingEventDTO{
		ID:          event.ID().Bytes(),
		OrderID:     event.OrderID().Bytes(),
		EventType:   int(event.Type()),
		Description: event.Description(),
		OccurredAt:  event.OccurredAt(),
	}

	if id := event.LegID(); id != nil {
		raw := id.Bytes()
		dto.LegID = &raw
	}

	return dto
}

func toDomain(dto TrackingEventDTO) (*tracking.TrackingEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var legID *kernel.UUID
	if dto.LegID != nil {
		lID, legErr := kernel.UUIDFromBytes((*dto.LegID)[:])
		if legErr != nil {
			return nil, legErr
		}
		legID = &lID
	}

	return tracking.RestoreEvent(
		id,
		orderID,
		legID,
		tracking.EventType(dto.EventType),
		dto.Description,
		dto.OccurredAt,
	)
}

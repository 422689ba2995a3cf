package ports

import (
	"context"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for the append-only
// audit trail. Events are never updated or deleted.
type TrackingRepository interface {
	// Add appends a tracking event.
	Add(ctx context.Context, event *tracking.TrackingEvent) error

	// GetAllByOrder retrieves all events of an order in chronological order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*tracking.TrackingEvent, error)
}

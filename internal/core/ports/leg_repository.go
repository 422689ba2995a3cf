package ports

import (
	"context"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/leg"
)

// LegRepository defines the persistence contract for custody hop aggregates.
type LegRepository interface {
	// Add persists a new leg aggregate to storage.
	Add(ctx context.Context, aggregate *leg.Leg) error

	// Update persists changes to an existing leg aggregate.
	Update(ctx context.Context, aggregate *leg.Leg) error

	// Get retrieves a leg aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*leg.Leg, error)

	// GetAllByOrder retrieves every leg of an order ordered by leg number.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*leg.Leg, error)

	// GetLastByOrder retrieves the highest-numbered leg of an order, or an
	// ObjectNotFoundError when the order has no legs yet.
	GetLastByOrder(ctx context.Context, orderID kernel.UUID) (*leg.Leg, error)

	// HasActiveByTransporter reports whether the transporter carries any leg
	// in Pending, Accepted or InTransit status. Used by the transporter
	// deletion guard.
	HasActiveByTransporter(ctx context.Context, transporterID kernel.UUID) (bool, error)
}

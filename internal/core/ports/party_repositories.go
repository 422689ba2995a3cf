package ports

import (
	"context"

	"supplytrace/internal/core/domain/model/distributor"
	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/supplier"
	"supplytrace/internal/core/domain/model/transporter"
)

// SupplierRepository defines the persistence contract for supplier profiles.
type SupplierRepository interface {
	// Add persists a new supplier aggregate to storage.
	Add(ctx context.Context, aggregate *supplier.Supplier) error

	// Update persists changes to an existing supplier aggregate.
	Update(ctx context.Context, aggregate *supplier.Supplier) error

	// Get retrieves a supplier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error)
}

// DistributorRepository defines the persistence contract for distributor profiles.
type DistributorRepository interface {
	// Add persists a new distributor aggregate to storage.
	Add(ctx context.Context, aggregate *distributor.Distributor) error

	// Get retrieves a distributor aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*distributor.Distributor, error)
}

// TransporterRepository defines the persistence contract for carriers.
type TransporterRepository interface {
	// Add persists a new transporter aggregate to storage.
	Add(ctx context.Context, aggregate *transporter.Transporter) error

	// Get retrieves a transporter aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*transporter.Transporter, error)

	// Delete removes a transporter from storage. Callers must first check
	// the active-leg guard through LegRepository.HasActiveByTransporter.
	Delete(ctx context.Context, id kernel.UUID) error
}

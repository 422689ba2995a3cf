// Package ports defines repository interfaces for the supply chain domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate and row-locks it for the
	// remainder of the transaction. Used by commands that race on the same
	// order, such as approval and cancellation.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByCustomer retrieves all orders placed by a customer,
	// newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllBySupplier retrieves all orders addressed to a supplier,
	// newest first.
	GetAllBySupplier(ctx context.Context, supplierID kernel.UUID) ([]*order.Order, error)
}

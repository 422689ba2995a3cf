// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"supplytrace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface that covers the aggregates
// it touches, so tests only mock what a command actually uses.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LegRepoFactory provides access to the leg repository within a transaction.
	LegRepoFactory interface {
		LegRepository() ports.LegRepository
	}

	// SupplierRepoFactory provides access to the supplier repository within a transaction.
	SupplierRepoFactory interface {
		SupplierRepository() ports.SupplierRepository
	}

	// DistributorRepoFactory provides access to the distributor repository within a transaction.
	DistributorRepoFactory interface {
		DistributorRepository() ports.DistributorRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// TransporterRepoFactory provides access to the transporter repository within a transaction.
	TransporterRepoFactory interface {
		TransporterRepository() ports.TransporterRepository
	}

	// TrackingRepoFactory provides access to the tracking repository within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// OutboxRepoFactory provides access to the outbox repository within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// TrailFactories is the slice of a unit of work every state-changing
	// command shares: the audit trail plus the notification outbox.
	TrailFactories interface {
		TrackingRepoFactory
		OutboxRepoFactory
	}

	// OrderUoW manages transactions for order placement and supplier
	// rejection: order, catalog and availability lookups, and the supplier
	// identity check.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		SupplierRepoFactory
		InventoryRepoFactory
		TrailFactories
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ApprovalUoW manages transactions for order approval, which is the
	// widest command: it authenticates the supplier key, reserves stock,
	// signs the order and opens the first custody hop.
	ApprovalUoW interface {
		TxManager
		OrderRepoFactory
		SupplierRepoFactory
		ProductRepoFactory
		InventoryRepoFactory
		DistributorRepoFactory
		TransporterRepoFactory
		LegRepoFactory
		TrailFactories
	}

	// ApprovalUoWFactory creates new approval unit of work instances.
	ApprovalUoWFactory interface {
		Create() ApprovalUoW
	}

	// CancelUoW manages transactions for customer cancellation: the order,
	// its hops, and the stock to return for approved orders.
	CancelUoW interface {
		TxManager
		OrderRepoFactory
		LegRepoFactory
		SupplierRepoFactory
		InventoryRepoFactory
		TrailFactories
	}

	// CancelUoWFactory creates new cancellation unit of work instances.
	CancelUoWFactory interface {
		Create() CancelUoW
	}

	// ChainUoW manages transactions for custody hop transitions: accept,
	// reject, ship, receive, and the customer's delivery confirmation.
	ChainUoW interface {
		TxManager
		OrderRepoFactory
		LegRepoFactory
		TrailFactories
	}

	// ChainUoWFactory creates new custody chain unit of work instances.
	ChainUoWFactory interface {
		Create() ChainUoW
	}

	// ForwardUoW manages transactions for commands that open a new custody
	// hop after the first: forwarding and the two reassignment flows.
	ForwardUoW interface {
		TxManager
		OrderRepoFactory
		LegRepoFactory
		DistributorRepoFactory
		TransporterRepoFactory
		TrailFactories
	}

	// ForwardUoWFactory creates new forwarding unit of work instances.
	ForwardUoWFactory interface {
		Create() ForwardUoW
	}

	// VerifyUoW manages transactions for package verification: the order and
	// its signature, the final hop, and the supplier's public key.
	VerifyUoW interface {
		TxManager
		OrderRepoFactory
		LegRepoFactory
		SupplierRepoFactory
		TrailFactories
	}

	// VerifyUoWFactory creates new verification unit of work instances.
	VerifyUoWFactory interface {
		Create() VerifyUoW
	}

	// KeysUoW manages transactions for supplier key provisioning.
	KeysUoW interface {
		TxManager
		SupplierRepoFactory
		OutboxRepoFactory
	}

	// KeysUoWFactory creates new key provisioning unit of work instances.
	KeysUoWFactory interface {
		Create() KeysUoW
	}

	// FleetUoW manages transactions for transporter fleet maintenance.
	FleetUoW interface {
		TxManager
		TransporterRepoFactory
		LegRepoFactory
		SupplierRepoFactory
		DistributorRepoFactory
	}

	// FleetUoWFactory creates new fleet unit of work instances.
	FleetUoWFactory interface {
		Create() FleetUoW
	}

	// OutboxUoW manages transactions for the outbox dispatcher.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)

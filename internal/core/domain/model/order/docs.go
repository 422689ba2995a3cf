// Package order provides domain entities and business logic for order
// management in the supply chain system. It implements the Order aggregate
// root with lifecycle management, state transitions, and the chain-of-custody
// signature bundle.
//
// The package includes:
//   - Order: The aggregate root managing order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Signature: The all-or-nothing signature bundle attached at approval
//
// Key business rules:
//   - Orders must have valid customer, supplier and product identifiers,
//     a positive quantity, a positive total, and a delivery address
//   - Order status follows the workflow Pending -> Approved -> InProgress -> Delivered,
//     with PendingReassign recovering from first-leg rejection and Cancelled
//     reachable before shipment
//   - The signature bundle is issued exactly once, at approval, together with
//     the status transition
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

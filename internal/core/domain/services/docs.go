// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the supply chain system. It implements
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - CustodySigner: a domain service producing and checking the two-tier
//     signature chain attached to approved orders
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services

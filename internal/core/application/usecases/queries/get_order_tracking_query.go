// Package queries contains read-only operations for the supply chain system.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return plain response structs, bypassing the domain
// aggregates.
package queries

import (
	"errors"
	"time"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/guard"
)

var ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
	"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
)

// GetOrderTrackingQuery retrieves the full custody history of an order: its
// current status, every hop of the chain and the chronological audit trail.
//
// Example:
//
//	query, err := NewGetOrderTrackingQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderTrackingQueryHandler(db)
//
//	trail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get tracking: %w", err)
//	}
//	fmt.Printf("Order %s is %s after %d hops\n", trail.OrderID, trail.Status, len(trail.Legs))
type GetOrderTrackingQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTrackingQuery creates a query for an order's custody history.
func NewGetOrderTrackingQuery(orderID kernel.UUID) (GetOrderTrackingQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTrackingQuery{}, err
	}

	return GetOrderTrackingQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

// OrderID returns the identifier of the tracked order.
func (q GetOrderTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

// TrackingLegResponse is one custody hop in the tracking response.
type TrackingLegResponse struct {
	LegID         kernel.UUID
	LegNumber     int
	FromType      string
	ToType        string
	Status        string
	TransporterID kernel.UUID
}

// TrackingEventResponse is one audit trail entry in the tracking response.
type TrackingEventResponse struct {
	EventType   string
	Description string
	OccurredAt  time.Time
}

// GetOrderTrackingQueryResponse is the full custody history of an order.
type GetOrderTrackingQueryResponse struct {
	OrderID kernel.UUID
	Status  string
	Legs    []TrackingLegResponse
	Events  []TrackingEventResponse
}

package queries

import (
	"errors"
	"time"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/guard"
)

var ErrGetOrderQrQueryIsNotConstructed = errors.New(
	"GetOrderQrQuery must be created via NewGetOrderQrQuery constructor",
)

// GetOrderQrQuery retrieves the package token of a signed order so the
// customer can render it as a QR code. Scoped to the ordering customer.
type GetOrderQrQuery struct {
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQrQuery creates a query for an order's package token.
func NewGetOrderQrQuery(orderID, customerID kernel.UUID) (GetOrderQrQuery, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return GetOrderQrQuery{}, err
	}

	return GetOrderQrQuery{
		orderID:    orderID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQrQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQrQueryIsNotConstructed)
}

// OrderID returns the identifier of the queried order.
func (q GetOrderQrQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CustomerID returns the requesting customer's identifier.
func (q GetOrderQrQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetOrderQrQueryResponse carries the package token of a signed order.
type GetOrderQrQueryResponse struct {
	OrderID  kernel.UUID
	QrToken  string
	SignedAt time.Time
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"supplytrace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQrQueryHandler reads a signed order's package token from the
// database.
type GetOrderQrQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQrQueryHandler creates a handler for package token queries.
func NewGetOrderQrQueryHandler(db *gorm.DB) GetOrderQrQueryHandler {
	return GetOrderQrQueryHandler{db: db}
}

// Handle executes the token query. Orders that exist but were never signed
// have no token and come back as not found, as do orders belonging to a
// different customer.
func (h GetOrderQrQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQrQuery,
) (GetOrderQrQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQrQueryResponse{}, err
	}

	response := GetOrderQrQueryResponse{
		OrderID: query.OrderID(),
	}

	var (
		customerID uuid.UUID
		qrToken    sql.NullString
		signedAt   sql.NullTime
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			customer_id,
			qr_token,
			signed_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()
	if err := row.Scan(&customerID, &qrToken, &signedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQrQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetOrderQrQueryResponse{}, err
	}

	if customerID != query.CustomerID().Bytes() {
		return GetOrderQrQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if !qrToken.Valid || qrToken.String == "" {
		return GetOrderQrQueryResponse{}, errs.NewObjectNotFoundError("qrToken", query.OrderID())
	}

	response.QrToken = qrToken.String
	response.SignedAt = signedAt.Time

	return response, nil
}

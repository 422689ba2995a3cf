package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/leg"
	"supplytrace/internal/core/domain/model/order"
	"supplytrace/internal/core/domain/model/tracking"
	"supplytrace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler reads an order's custody history straight
// from the database.
type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTrackingQueryHandler creates a handler for tracking queries.
// Requires a GORM database connection for query execution.
func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

// Handle executes the tracking query. Hops come back ordered by leg number
// and audit entries chronologically.
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (GetOrderTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	response := GetOrderTrackingQueryResponse{
		OrderID: query.OrderID(),
		Legs:    make([]TrackingLegResponse, 0),
		Events:  make([]TrackingEventResponse, 0),
	}

	var orderStatus int
	row := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()
	if err := row.Scan(&orderStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderTrackingQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetOrderTrackingQueryResponse{}, err
	}
	response.Status = order.Status(orderStatus).String()

	legRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			leg_number,
			from_type,
			to_type,
			status,
			transporter_id
		FROM legs
		WHERE order_id = ?
		ORDER BY leg_number
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	defer legRows.Close()

	for legRows.Next() {
		var (
			legResp       TrackingLegResponse
			id            uuid.UUID
			transporterID uuid.UUID
			fromType      int
			toType        int
			legStatus     int
		)

		err = legRows.Scan(
			&id,
			&legResp.LegNumber,
			&fromType,
			&toType,
			&legStatus,
			&transporterID,
		)
		if err != nil {
			return GetOrderTrackingQueryResponse{}, err
		}

		legResp.FromType = leg.PartyType(fromType).String()
		legResp.ToType = leg.PartyType(toType).String()
		legResp.Status = leg.Status(legStatus).String()

		legResp.LegID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return GetOrderTrackingQueryResponse{}, err
		}
		legResp.TransporterID, err = kernel.UUIDFromBytes(transporterID[:])
		if err != nil {
			return GetOrderTrackingQueryResponse{}, err
		}

		response.Legs = append(response.Legs, legResp)
	}
	if err = legRows.Err(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	eventRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			event_type,
			description,
			occurred_at
		FROM tracking_events
		WHERE order_id = ?
		ORDER BY occurred_at
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	defer eventRows.Close()

	for eventRows.Next() {
		var (
			eventResp  TrackingEventResponse
			eventType  int
			occurredAt time.Time
		)

		err = eventRows.Scan(
			&eventType,
			&eventResp.Description,
			&occurredAt,
		)
		if err != nil {
			return GetOrderTrackingQueryResponse{}, err
		}

		eventResp.EventType = tracking.EventType(eventType).String()
		eventResp.OccurredAt = occurredAt
		response.Events = append(response.Events, eventResp)
	}
	if err = eventRows.Err(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	return response, nil
}

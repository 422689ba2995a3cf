package commands

import (
	"context"
	"time"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/outbox"
	"supplytrace/internal/core/domain/model/tracking"
)

// OrderEventsTopic is the Kafka topic the outbox dispatcher publishes order
// lifecycle notifications to.
const OrderEventsTopic = "supplytrace.order-events"

// orderEventPayload is the JSON body of an order lifecycle notification.
type orderEventPayload struct {
	OrderID     string    `json:"orderId"`
	LegID       *string   `json:"legId,omitempty"`
	Event       string    `json:"event"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// recordTrail appends one audit trail event and its matching outbox
// notification inside the caller's transaction. Every state-changing command
// goes through here so the trail and the notification stream never diverge.
func recordTrail(
	ctx context.Context,
	uow TrailFactories,
	orderID kernel.UUID,
	legID *kernel.UUID,
	eventType tracking.EventType,
	description string,
) error {
	event, err := tracking.NewEvent(kernel.NewUUID(), orderID, legID, eventType, description)
	if err != nil {
		return err
	}

	if err = uow.TrackingRepository().Add(ctx, event); err != nil {
		return err
	}

	var legIDStr *string
	if legID != nil {
		s := legID.String()
		legIDStr = &s
	}

	message, err := outbox.NewMessage(kernel.NewUUID(), OrderEventsTopic, orderID.String(), orderEventPayload{
		OrderID:     orderID.String(),
		LegID:       legIDStr,
		Event:       eventType.String(),
		Description: description,
		OccurredAt:  event.OccurredAt(),
	})
	if err != nil {
		return err
	}

	return uow.OutboxRepository().Add(ctx, message)
}

// Package tracking contains the append-only tracking journal. Every
// state-changing operation on an order or one of its custody hops records a
// TrackingEvent; the chronological sequence is the order's audit trail.
package tracking

import (
	"errors"
	"strings"
	"time"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when a TrackingEvent instance was not
// created through the NewEvent or RestoreEvent factory methods.
var ErrEventIsNotConstructed = errors.New("TrackingEvent must be created via NewEvent constructor")

// EventType identifies the kind of lifecycle change a tracking event records.
type EventType int

const (
	EventUnknown EventType = iota
	EventOrderCreated
	EventOrderApproved
	EventOrderRejected
	EventOrderCancelled
	EventOrderReassigned
	EventOrderDelivered
	EventLegCreated
	EventLegAccepted
	EventLegRejected
	EventLegShipped
	EventLegDelivered
	EventPackageVerified
)

func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		EventUnknown:         "UNKNOWN",
		EventOrderCreated:    "ORDER_CREATED",
		EventOrderApproved:   "ORDER_APPROVED",
		EventOrderRejected:   "ORDER_REJECTED",
		EventOrderCancelled:  "ORDER_CANCELLED",
		EventOrderReassigned: "ORDER_REASSIGNED",
		EventOrderDelivered:  "ORDER_DELIVERED",
		EventLegCreated:      "LEG_CREATED",
		EventLegAccepted:     "LEG_ACCEPTED",
		EventLegRejected:     "LEG_REJECTED",
		EventLegShipped:      "LEG_SHIPPED",
		EventLegDelivered:    "LEG_DELIVERED",
		EventPackageVerified: "PACKAGE_VERIFIED",
	}
}

// String returns the wire-level name of the event type.
func (e EventType) String() string {
	if str, ok := getEventTypeStrings()[e]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks if the EventType value is valid.
func (e EventType) Validate() error {
	if _, ok := getEventTypeStrings()[e]; !ok || e == EventUnknown {
		return errs.NewValueIsInvalidError("event type is invalid")
	}
	return nil
}

// TrackingEvent is one immutable entry in an order's audit trail. Events are
// only ever appended, never updated or deleted.
type TrackingEvent struct {
	id          kernel.UUID
	orderID     kernel.UUID
	legID       *kernel.UUID
	eventType   EventType
	description string
	occurredAt  time.Time

	isConstructed bool
}

// NewEvent creates a tracking entry for an order, optionally tied to a
// specific custody hop.
func NewEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	legID *kernel.UUID,
	eventType EventType,
	description string,
) (*TrackingEvent, error) {
	e := &TrackingEvent{
		occurredAt:    time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setOrderID(orderID),
		e.setLegID(legID),
		e.setEventType(eventType),
		e.setDescription(description),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEvent reconstructs a TrackingEvent from persisted state.
func RestoreEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	legID *kernel.UUID,
	eventType EventType,
	description string,
	occurredAt time.Time,
) (*TrackingEvent, error) {
	e := &TrackingEvent{
		occurredAt:    occurredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setOrderID(orderID),
		e.setLegID(legID),
		e.setEventType(eventType),
		e.setDescription(description),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the TrackingEvent instance was properly constructed.
func (e *TrackingEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *TrackingEvent) ID() kernel.UUID {
	return e.id
}

// OrderID returns the identifier of the order the event belongs to.
func (e *TrackingEvent) OrderID() kernel.UUID {
	return e.orderID
}

// LegID returns the identifier of the custody hop the event refers to, or
// nil for order-level events.
func (e *TrackingEvent) LegID() *kernel.UUID {
	return e.legID
}

// Type returns the kind of lifecycle change recorded.
func (e *TrackingEvent) Type() EventType {
	return e.eventType
}

// Description returns the human-readable event description.
func (e *TrackingEvent) Description() string {
	return e.description
}

// OccurredAt returns the instant the event was recorded.
func (e *TrackingEvent) OccurredAt() time.Time {
	return e.occurredAt
}

func (e *TrackingEvent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *TrackingEvent) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.orderID = id
	return nil
}

func (e *TrackingEvent) setLegID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	legID := *id
	e.legID = &legID
	return nil
}

func (e *TrackingEvent) setEventType(eventType EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	e.eventType = eventType
	return nil
}

func (e *TrackingEvent) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}
	e.description = description
	return nil
}

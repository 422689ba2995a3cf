// Package outbox contains the transactional outbox message. State-changing
// commands append messages in the same database transaction as their
// aggregate writes; a background job publishes unsent messages to Kafka and
// marks them published. This keeps notifications exactly as durable as the
// state change that produced them.
package outbox

import (
	"encoding/json"
	"errors"
	"time"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/pkg/errs"
)

// ErrMessageIsNotConstructed is returned when a Message instance was not created
// through the NewMessage or RestoreMessage factory methods.
var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")

// Message is one pending or published notification.
type Message struct {
	id          kernel.UUID
	topic       string
	key         string
	payload     []byte
	createdAt   time.Time
	publishedAt *time.Time

	isConstructed bool
}

// NewMessage creates an unpublished outbox message. The payload is JSON
// encoded from the given value.
func NewMessage(id kernel.UUID, topic, key string, payload any) (*Message, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}

	return &Message{
		id:            id,
		topic:         topic,
		key:           key,
		payload:       body,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreMessage reconstructs a Message from persisted state.
func RestoreMessage(
	id kernel.UUID,
	topic string,
	key string,
	payload []byte,
	createdAt time.Time,
	publishedAt *time.Time,
) (*Message, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	return &Message{
		id:            id,
		topic:         topic,
		key:           key,
		payload:       payload,
		createdAt:     createdAt,
		publishedAt:   publishedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Message instance was properly constructed.
func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

// ID returns the message's unique identifier.
func (m *Message) ID() kernel.UUID {
	return m.id
}

// Topic returns the Kafka topic the message is destined for.
func (m *Message) Topic() string {
	return m.topic
}

// Key returns the Kafka partition key, usually the order identifier.
func (m *Message) Key() string {
	return m.key
}

// Payload returns the JSON-encoded message body.
func (m *Message) Payload() []byte {
	return m.payload
}

// CreatedAt returns the instant the message was appended.
func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

// PublishedAt returns the instant the message was handed to the broker, or
// nil while it is still pending.
func (m *Message) PublishedAt() *time.Time {
	return m.publishedAt
}

// IsPublished reports whether the message was handed to the broker.
func (m *Message) IsPublished() bool {
	return m.publishedAt != nil
}

// MarkPublished records the broker handoff. Idempotent.
func (m *Message) MarkPublished(at time.Time) {
	if m.publishedAt != nil {
		return
	}
	published := at.UTC()
	m.publishedAt = &published
}

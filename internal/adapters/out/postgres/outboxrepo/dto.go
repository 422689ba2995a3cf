// Package outboxrepo implements the repository for transactional outbox
// messages.
package outboxrepo

import (
	"time"

	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

// OutboxMessageDTO represents the database structure for outbox rows.
type OutboxMessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Topic       string
	Key         string
	Payload     []byte
	CreatedAt   time.Time  `gorm:"index"`
	PublishedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox messages.
func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(message *outbox.Message) OutboxMessageDTO {
	return OutboxMessageDTO{
		ID:          message.ID().Bytes(),
		Topic:       message.Topic(),
		Key:         message.Key(),
		Payload:     message.Payload(),
		CreatedAt:   message.CreatedAt(),
		PublishedAt: message.PublishedAt(),
	}
}

func toDomain(dto OutboxMessageDTO) (*outbox.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return outbox.RestoreMessage(id, dto.Topic, dto.Key, dto.Payload, dto.CreatedAt, dto.PublishedAt)
}

package ports

import (
	"context"

	"supplytrace/internal/core/domain/model/outbox"
)

// OutboxRepository defines the persistence contract for transactional outbox
// messages. Commands append messages inside their transaction; the dispatcher
// job reads and marks them outside of any command transaction.
type OutboxRepository interface {
	// Add appends an unpublished message.
	Add(ctx context.Context, message *outbox.Message) error

	// GetUnpublished retrieves up to limit unpublished messages, oldest
	// first.
	GetUnpublished(ctx context.Context, limit int) ([]*outbox.Message, error)

	// Update persists the published marker of a message.
	Update(ctx context.Context, message *outbox.Message) error
}

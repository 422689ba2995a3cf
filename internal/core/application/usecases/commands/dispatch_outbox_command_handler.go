package commands

import (
	"context"
	"time"
)

// dispatchBatchSize bounds one publishing sweep so a large backlog does
// not hold a transaction open for long.
const dispatchBatchSize = 100

// MessagePublisher delivers outbox messages to the broker.
type MessagePublisher interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
}

// DispatchOutboxCommandHandler publishes pending outbox messages to the
// broker and marks them as delivered. Publishing happens at least once:
// a message marked inside a transaction that later fails to commit will
// be picked up and published again on the next sweep.
type DispatchOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  MessagePublisher
}

// NewDispatchOutboxCommandHandler creates a handler for outbox dispatching.
func NewDispatchOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher MessagePublisher,
) DispatchOutboxCommandHandler {
	return DispatchOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes one publishing sweep. Messages publish oldest first;
// the sweep stops at the first broker failure so ordering per key is
// preserved across retries.
func (h *DispatchOutboxCommandHandler) Handle(ctx context.Context, cmd DispatchOutboxCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.OutboxRepository().GetUnpublished(ctx, dispatchBatchSize)
	if err != nil {
		return err
	}

	var publishErr error
	for _, message := range pending {
		publishErr = h.publisher.Publish(ctx, message.Topic(), []byte(message.Key()), message.Payload())
		if publishErr != nil {
			break
		}

		message.MarkPublished(time.Now().UTC())
		if err = uow.OutboxRepository().Update(ctx, message); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return publishErr
}

package commands_test

import (
	"errors"
	"testing"

	"supplytrace/internal/core/application/usecases/commands"
	"supplytrace/internal/core/domain/model/kernel"
	"supplytrace/internal/core/domain/model/outbox"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingMessage(t *testing.T, key string) *outbox.Message {
	t.Helper()
	m, err := outbox.NewMessage(kernel.NewUUID(), commands.OrderEventsTopic, key, map[string]string{"event": "ORDER_CREATED"})
	require.NoError(t, err)
	return m
}

func newOutboxUoW(outboxRepo *MockOutboxRepository) (*MockOutboxUoW, *MockOutboxUoWFactory) {
	uow := new(MockOutboxUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	uow.On("OutboxRepository").Return(outboxRepo)

	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestDispatchOutboxCommandHandler_Handle_PublishesAndMarks(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchOutboxCommand()

	first := pendingMessage(t, "order-1")
	second := pendingMessage(t, "order-2")

	outboxRepo := new(MockOutboxRepository)
	outboxRepo.On("GetUnpublished", mock.Anything, 100).Return([]*outbox.Message{first, second}, nil).Once()
	outboxRepo.On("Update", mock.Anything, first).Return(nil).Once()
	outboxRepo.On("Update", mock.Anything, second).Return(nil).Once()

	publisher := new(MockMessagePublisher)
	publisher.On("Publish", mock.Anything, commands.OrderEventsTopic, []byte("order-1"), first.Payload()).Return(nil).Once()
	publisher.On("Publish", mock.Anything, commands.OrderEventsTopic, []byte("order-2"), second.Payload()).Return(nil).Once()

	uow, factory := newOutboxUoW(outboxRepo)
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewDispatchOutboxCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, first.IsPublished())
	assert.True(t, second.IsPublished())
	outboxRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDispatchOutboxCommandHandler_Handle_EmptyBacklog(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchOutboxCommand()

	outboxRepo := new(MockOutboxRepository)
	outboxRepo.On("GetUnpublished", mock.Anything, 100).Return([]*outbox.Message{}, nil).Once()

	publisher := new(MockMessagePublisher)

	uow, factory := newOutboxUoW(outboxRepo)
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewDispatchOutboxCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestDispatchOutboxCommandHandler_Handle_BrokerFailureStopsSweep(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchOutboxCommand()

	first := pendingMessage(t, "order-1")
	second := pendingMessage(t, "order-2")
	third := pendingMessage(t, "order-3")

	outboxRepo := new(MockOutboxRepository)
	outboxRepo.On("GetUnpublished", mock.Anything, 100).Return([]*outbox.Message{first, second, third}, nil).Once()
	outboxRepo.On("Update", mock.Anything, first).Return(nil).Once()

	brokerErr := errors.New("broker unavailable")
	publisher := new(MockMessagePublisher)
	publisher.On("Publish", mock.Anything, commands.OrderEventsTopic, []byte("order-1"), first.Payload()).Return(nil).Once()
	publisher.On("Publish", mock.Anything, commands.OrderEventsTopic, []byte("order-2"), second.Payload()).Return(brokerErr).Once()

	uow, factory := newOutboxUoW(outboxRepo)
	// Successful marks still commit so the failed message is retried alone.
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewDispatchOutboxCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, brokerErr)
	assert.True(t, first.IsPublished())
	assert.False(t, second.IsPublished())
	assert.False(t, third.IsPublished())
	outboxRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestDispatchOutboxCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := commands.NewDispatchOutboxCommandHandler(new(MockOutboxUoWFactory), new(MockMessagePublisher))
	err := h.Handle(ctx, commands.DispatchOutboxCommand{})
	require.ErrorIs(t, err, commands.ErrDispatchOutboxCommandIsNotConstructed)
}

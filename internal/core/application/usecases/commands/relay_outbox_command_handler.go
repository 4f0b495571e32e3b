package commands

import (
	"context"

	"cookieadmin/internal/core/ports"
)

// RelayOutboxCommandHandler publishes pending outbox messages and marks them sent.
// Delivery is at least once: a crash between publish and commit republishes the batch.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	producer   ports.MessageProducer
}

func NewRelayOutboxCommandHandler(uowFactory OutboxUoWFactory, producer ports.MessageProducer) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		producer:   producer,
	}
}

// Handle returns how many messages were published. When a publish fails, the messages
// sent before it are still committed as sent and the error is returned.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outboxRepo := uow.OutboxRepository()

	messages, err := outboxRepo.FetchPending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	sent := 0
	var publishErr error
	for _, msg := range messages {
		if publishErr = h.producer.Publish(ctx, msg.Topic, msg.Key, msg.Payload); publishErr != nil {
			break
		}
		if err = outboxRepo.MarkSent(ctx, msg.ID); err != nil {
			return 0, err
		}
		sent++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return sent, publishErr
}

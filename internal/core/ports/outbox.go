package ports

import (
	"context"
	"time"
)

// OutboxMessage is an event stored in the same transaction as the change it describes.
type OutboxMessage struct {
	ID        int64
	Topic     string
	Key       string
	Payload   []byte
	CreatedAt time.Time
}

// OutboxRepository reads and acknowledges pending outbox messages.
type OutboxRepository interface {
	// FetchPending returns up to limit unsent messages, oldest first, locked so
	// concurrent relays skip them.
	FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkSent(ctx context.Context, id int64) error
}

// MessageProducer publishes events to the message broker.
type MessageProducer interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
	Close() error
}

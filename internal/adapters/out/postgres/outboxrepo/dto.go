// Package outboxrepo stores domain events in the "outbox_messages" table inside the
// business transaction and hands them to the relay afterwards.
package outboxrepo

import (
	"encoding/json"
	"time"

	"cookieadmin/internal/core/ports"
)

// OutboxDTO is one pending or sent event.
type OutboxDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	Topic      string          `gorm:"type:varchar(255);not null"`
	MessageKey string          `gorm:"type:varchar(64);not null"`
	Payload    json.RawMessage `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time       `gorm:"not null;index"`
	SentAt     *time.Time      `gorm:"index"`
}

func (OutboxDTO) TableName() string {
	return "outbox_messages"
}

func toMessage(dto OutboxDTO) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:        dto.ID,
		Topic:     dto.Topic,
		Key:       dto.MessageKey,
		Payload:   dto.Payload,
		CreatedAt: dto.CreatedAt,
	}
}

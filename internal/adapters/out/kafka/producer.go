// Package kafka publishes outbox messages to Kafka with segmentio/kafka-go.
package kafka

import (
	"context"
	"strings"
	"time"

	"cookieadmin/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// Producer implements ports.MessageProducer. The topic is chosen per message, so one
// writer serves every outbox topic.
type Producer struct {
	writer messageWriter
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewProducer connects to a comma separated broker list, for example "kafka:9092,kafka2:9092".
// Messages with the same key go to the same partition, which keeps the changes of one
// order in sequence.
func NewProducer(brokersCSV string) (*Producer, error) {
	brokers := ParseBrokers(brokersCSV)
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("kafka brokers")
	}

	return newProducer(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}), nil
}

func newProducer(writer messageWriter) *Producer {
	return &Producer{writer: writer}
}

// Publish writes one message and waits for the broker acknowledgement.
func (p *Producer) Publish(ctx context.Context, topic, key string, payload []byte) error {
	if topic == "" {
		return errs.NewValueIsRequiredError("topic")
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
		Time:  time.Now().UTC(),
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// ParseBrokers splits a comma separated list and drops blanks.
func ParseBrokers(brokersCSV string) []string {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

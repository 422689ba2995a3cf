// Package kafka publishes outbox notifications to the message broker.
package kafka

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// Producer writes messages to Kafka topics. A single producer instance
// is safe for concurrent use and is shared across the application.
type Producer struct {
	w *kafka.Writer
}

// NewProducer creates a producer connected to the given brokers.
func NewProducer(brokers []string) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

// Publish writes a single message to the given topic.
func (p *Producer) Publish(ctx context.Context, topic string, key, value []byte) error {
	err := p.w.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("kafka publish to %s: %w", topic, err)
	}
	return nil
}

// Close releases the underlying writer resources.
func (p *Producer) Close() error {
	return p.w.Close()
}

// Package kafka delivers order change notifications to the message broker.
// The topic is the boundary behind which downstream consumers (customer
// notification, reporting) live; this adapter only guarantees best-effort
// delivery after a committed change.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"laundromat/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// orderChangedMessage is the wire shape of an order change notification.
type orderChangedMessage struct {
	OrderID      string    `json:"orderId"`
	OriginalID   string    `json:"originalId"`
	Action       string    `json:"action"`
	Status       string    `json:"status,omitempty"`
	PickupNumber int       `json:"pickupNumber"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// OrderChangedPublisher publishes order change events to a Kafka topic.
// Messages are keyed by the chain's original id, so all events of one order
// land on the same partition in commit order.
type OrderChangedPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewOrderChangedPublisher creates a publisher writing to the given topic on
// the given broker host. The caller owns the publisher and must Close it on
// shutdown.
func NewOrderChangedPublisher(host, topic string, logger *slog.Logger) *OrderChangedPublisher {
	return &OrderChangedPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(host),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 100 * time.Millisecond,
		},
		logger: logger,
	}
}

// PublishOrderChanged sends one order change notification. Errors are logged
// and returned; callers treat delivery as best-effort and do not fail the
// originating operation.
func (p *OrderChangedPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	payload, err := json.Marshal(orderChangedMessage{
		OrderID:      event.OrderID.String(),
		OriginalID:   event.OriginalID.String(),
		Action:       event.Action,
		Status:       event.Status,
		PickupNumber: event.PickupNumber,
		OccurredAt:   event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("marshal order changed event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OriginalID.String()),
		Value: payload,
	})
	if err != nil {
		p.logger.Error("failed to publish order changed event",
			"orderId", event.OrderID.String(),
			"action", event.Action,
			"error", err)
		return fmt.Errorf("publish order changed event: %w", err)
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *OrderChangedPublisher) Close() error {
	return p.writer.Close()
}

package services

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/rewipay-ledger/internal/logger"
	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventPublisher publishes committed ledger entries to Kafka.
type EventPublisher struct {
	writer KafkaWriter
}

// NewEventPublisher creates a publisher. A nil writer disables publishing.
func NewEventPublisher(writer KafkaWriter) *EventPublisher {
	return &EventPublisher{writer: writer}
}

// Publish writes one message per event keyed by wallet address, so events
// of a wallet stay ordered within a partition. Failures are logged only:
// the ledger is already committed when Publish runs.
func (p *EventPublisher) Publish(ctx context.Context, events ...models.TransactionEvent) {
	if len(events) == 0 {
		return
	}
	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "events", len(events))
		return
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		data, err := json.Marshal(event)
		if err != nil {
			logger.Log.Errorw("Failed to marshal transaction event", "transaction_id", event.TransactionID, "error", err)
			continue
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(event.WalletAddress),
			Value: data,
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		logger.Log.Errorw("Failed to publish transaction events to Kafka", "events", len(msgs), "error", err)
		return
	}
	for _, event := range events {
		logger.Log.Infow("Transaction published to Kafka",
			"transaction_id", event.TransactionID,
			"wallet_address", event.WalletAddress,
			"amount", event.Amount,
		)
	}
}

// Package auditlog consumes the catalog's audit topic and writes each event
// to the log.
package auditlog

import (
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"library-catalog/internal/audit"
)

type Consumer struct {
	log   *zap.Logger
	ready chan bool
}

func NewConsumer(log *zap.Logger) *Consumer {
	return &Consumer{
		log:   log.Named("consumer"),
		ready: make(chan bool),
	}
}

// Ready is closed once the consumer group session is set up.
func (consumer *Consumer) Ready() <-chan bool {
	return consumer.ready
}

// Reset rearms Ready before the consumer rejoins the group.
func (consumer *Consumer) Reset() {
	consumer.ready = make(chan bool)
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	close(consumer.ready)
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event audit.Event
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("unmarshal event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			consumer.log.Info("audit event",
				zap.String("op", event.Op),
				zap.String("entity", event.Entity),
				zap.String("key", event.Key),
				zap.Time("at", event.At),
			)
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// Package audit publishes one event per successful mutating catalog
// operation. Publishing is best effort: a broker failure is logged and never
// fails the operation itself.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type Event struct {
	Op     string    `json:"op"`
	Entity string    `json:"entity"`
	Key    string    `json:"key"`
	At     time.Time `json:"at"`
}

func NewEvent(op, entity, key string) Event {
	return Event{Op: op, Entity: entity, Key: key, At: time.Now().UTC()}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *zap.Logger
}

func NewKafkaPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		log:      log.Named("audit"),
	}
}

func (p *kafkaPublisher) Publish(_ context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: p.topic, Value: sarama.StringEncoder(data)}
	if _, _, err = p.producer.SendMessage(msg); err != nil {
		p.log.Warn("publish", zap.String("op", event.Op), zap.Error(err))
		return err
	}
	return nil
}

type nop struct{}

// NewNop returns a publisher that drops every event. Used when no brokers
// are configured.
func NewNop() Publisher {
	return nop{}
}

func (nop) Publish(context.Context, Event) error {
	return nil
}

package kafka

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/Astemirdum/biblioteca-service/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

type Publisher interface {
	Publish(ctx context.Context, event LoanEvent) error
}

type producerPublisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
}

func NewPublisher(producer sarama.SyncProducer, topic string, cb circuit_breaker.CircuitBreaker) Publisher {
	return &producerPublisher{
		producer: producer,
		topic:    topic,
		cb:       cb,
	}
}

// Publish sends the event keyed by loan id, so every event of a loan lands on one partition.
func (p *producerPublisher) Publish(ctx context.Context, event LoanEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "json.Marshal")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.LoanID, 10)),
		Value: sarama.ByteEncoder(data),
	}
	return p.cb.Call(func() error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
}

type nopPublisher struct{}

// NopPublisher drops every event. Used when no brokers are configured.
func NopPublisher() Publisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, LoanEvent) error { return nil }

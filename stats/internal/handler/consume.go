package handler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
	"github.com/Astemirdum/biblioteca-service/pkg/metrics"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	saveTimeout  = 5 * time.Second
	saveAttempts = 3
)

type saveEvent func(ctx context.Context, event kafka.LoanEvent) error

type Consumer struct {
	save      saveEvent
	metrics   *metrics.Metrics
	log       *zap.Logger
	ready     chan struct{}
	readyOnce sync.Once

	retryDelay time.Duration
}

func NewConsumer(save saveEvent, m *metrics.Metrics, log *zap.Logger) *Consumer {
	return &Consumer{
		save:    save,
		metrics: m,
		log:     log.Named("consumer"),
		ready:   make(chan struct{}),

		retryDelay: time.Second,
	}
}

// Ready is closed once the first group session is set up.
func (consumer *Consumer) Ready() <-chan struct{} {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	consumer.readyOnce.Do(func() { close(consumer.ready) })
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
			var event kafka.LoanEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("malformed loan event", zap.Error(err), zap.ByteString("value", message.Value))
				consumer.observe(err)
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.store(session.Context(), event); err != nil {
				// nothing past this offset may be marked, the group rejoins from the last commit
				consumer.log.Error("consumer.save", zap.Error(err), zap.String("id", event.ID.String()),
					zap.Int64("offset", message.Offset))
				return errors.Wrapf(err, "save offset %d", message.Offset)
			}

			consumer.log.Debug("Message claimed:",
				zap.String("type", string(event.Type)),
				zap.Int64("loanId", event.LoanID),
				zap.Time("timestamp", message.Timestamp),
				zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (consumer *Consumer) store(ctx context.Context, event kafka.LoanEvent) error {
	var err error
	for attempt := 1; attempt <= saveAttempts; attempt++ {
		saveCtx, cancel := context.WithTimeout(ctx, saveTimeout)
		err = consumer.save(saveCtx, event)
		cancel()
		consumer.observe(err)
		if err == nil {
			return nil
		}
		if attempt == saveAttempts {
			break
		}
		consumer.log.Warn("save failed, retrying", zap.Int("attempt", attempt), zap.Error(err))
		select {
		case <-time.After(consumer.retryDelay):
		case <-ctx.Done():
			return err
		}
	}
	return err
}

func (consumer *Consumer) observe(err error) {
	if consumer.metrics != nil {
		consumer.metrics.EventConsumed(err)
	}
}

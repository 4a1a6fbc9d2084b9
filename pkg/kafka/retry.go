package kafka

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RetryPublisher re-sends events the wrapped publisher failed to deliver.
// Retries happen in Run, one event at a time, in the order they failed.
type RetryPublisher struct {
	next     Publisher
	queue    chan LoanEvent
	attempts int
	delay    time.Duration
	log      *zap.Logger
}

func NewRetryPublisher(next Publisher, cfg Config, log *zap.Logger) *RetryPublisher {
	return &RetryPublisher{
		next:     next,
		queue:    make(chan LoanEvent, cfg.RetryQueue),
		attempts: cfg.RetryAttempts,
		delay:    cfg.RetryDelay,
		log:      log.Named("retry"),
	}
}

// Publish returns nil once the event is either sent or queued for retry.
func (p *RetryPublisher) Publish(ctx context.Context, event LoanEvent) error {
	err := p.next.Publish(ctx, event)
	if err == nil {
		return nil
	}
	select {
	case p.queue <- event:
		p.log.Warn("loan event queued for retry", zap.String("id", event.ID.String()), zap.Error(err))
		return nil
	default:
		return errors.Wrap(err, "retry queue is full")
	}
}

func (p *RetryPublisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			if n := len(p.queue); n > 0 {
				p.log.Warn("dropping queued loan events", zap.Int("count", n))
			}
			return nil
		case event := <-p.queue:
			p.retry(ctx, event)
		}
	}
}

func (p *RetryPublisher) retry(ctx context.Context, event LoanEvent) {
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	for i := 1; i <= p.attempts; i++ {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		err := p.next.Publish(ctx, event)
		if err == nil {
			p.log.Debug("loan event delivered", zap.String("id", event.ID.String()), zap.Int("attempt", i))
			return
		}
		p.log.Warn("retry loan event", zap.String("id", event.ID.String()), zap.Int("attempt", i), zap.Error(err))
		timer.Reset(p.delay)
	}
	p.log.Error("loan event dropped", zap.String("id", event.ID.String()), zap.String("type", string(event.Type)))
}

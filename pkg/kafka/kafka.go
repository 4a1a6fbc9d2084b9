package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	LoanTopic          = "biblioteca.loans"
	StatsConsumerGroup = "biblioteca-stats"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`

	RetryQueue    int           `envconfig:"KAFKA_RETRY_QUEUE" default:"256"`
	RetryAttempts int           `envconfig:"KAFKA_RETRY_ATTEMPTS" default:"10"`
	RetryDelay    time.Duration `envconfig:"KAFKA_RETRY_DELAY" default:"10s"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

type LoanEventType string

const (
	LoanCreated  LoanEventType = "CREATED"
	LoanRenewed  LoanEventType = "RENEWED"
	LoanReturned LoanEventType = "RETURNED"
	LoanDeleted  LoanEventType = "DELETED"
	LoanUpdated  LoanEventType = "UPDATED"
)

type LoanEvent struct {
	ID        uuid.UUID     `json:"id"`
	Type      LoanEventType `json:"type"`
	LoanID    int64         `json:"loanId"`
	BookID    int64         `json:"bookId"`
	UserID    int64         `json:"userId"`
	Timestamp time.Time     `json:"timestamp"`
}

func NewLoanEvent(typ LoanEventType, loanID, bookID, userID int64, at time.Time) LoanEvent {
	return LoanEvent{
		ID:        uuid.New(),
		Type:      typ,
		LoanID:    loanID,
		BookID:    bookID,
		UserID:    userID,
		Timestamp: at.UTC(),
	}
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// CreateTopics makes sure the topics used by the services exist.
func CreateTopics(cfg Config, topics ...string) error {
	admin, err := sarama.NewClusterAdmin(cfg.Addrs, sarama.NewConfig())
	if err != nil {
		return errors.Wrap(err, "sarama.NewClusterAdmin")
	}
	defer admin.Close()

	existing, err := admin.ListTopics()
	if err != nil {
		return errors.Wrap(err, "admin.ListTopics")
	}
	for _, topic := range topics {
		if _, ok := existing[topic]; ok {
			continue
		}
		detail := &sarama.TopicDetail{NumPartitions: 1, ReplicationFactor: 1}
		if err := admin.CreateTopic(topic, detail, false); err != nil && !errors.Is(err, sarama.ErrTopicAlreadyExists) {
			return errors.Wrapf(err, "admin.CreateTopic %s", topic)
		}
	}
	return nil
}

// Consume blocks, re-joining the group after every rebalance, until ctx is done.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topics ...string) error {
	for {
		if err := group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return errors.Wrap(err, "group.Consume")
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

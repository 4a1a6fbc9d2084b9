package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Astemirdum/biblioteca-service/pkg/circuit_breaker"
	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()
	event := kafka.NewLoanEvent(kafka.LoanCreated, 7, 3, 5, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			require.Equal(t, kafka.LoanTopic, msg.Topic)
			key, err := msg.Key.Encode()
			require.NoError(t, err)
			require.Equal(t, "7", string(key))

			value, err := msg.Value.Encode()
			require.NoError(t, err)
			var got kafka.LoanEvent
			require.NoError(t, json.Unmarshal(value, &got))
			require.Equal(t, event, got)
			return nil
		})
		pub := kafka.NewPublisher(producer, kafka.LoanTopic, circuit_breaker.New(circuit_breaker.Config{
			RecordLength: 10, Timeout: time.Minute, Percentile: 0.5, RecoveryRequests: 1,
		}))

		require.NoError(t, pub.Publish(context.Background(), event))
		require.NoError(t, producer.Close())
	})

	t.Run("err. broker down opens breaker", func(t *testing.T) {
		t.Parallel()
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
		pub := kafka.NewPublisher(producer, kafka.LoanTopic, circuit_breaker.New(circuit_breaker.Config{
			RecordLength: 1, Timeout: time.Minute, Percentile: 1, RecoveryRequests: 1,
		}))

		require.ErrorIs(t, pub.Publish(context.Background(), event), sarama.ErrOutOfBrokers)
		require.ErrorIs(t, pub.Publish(context.Background(), event), circuit_breaker.ErrOpenCB)
		require.NoError(t, producer.Close())
	})

	t.Run("nop", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, kafka.NopPublisher().Publish(context.Background(), event))
	})
}

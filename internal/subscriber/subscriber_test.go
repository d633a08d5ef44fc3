package subscriber_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-prepaid-service/config"
	"github.com/jeffleon2/draftea-prepaid-service/internal/ledger"
	"github.com/jeffleon2/draftea-prepaid-service/internal/models"
	"github.com/jeffleon2/draftea-prepaid-service/internal/service/mocks"
	"github.com/jeffleon2/draftea-prepaid-service/internal/subscriber"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newConsumer(dlq subscriber.DLQPublisher) *subscriber.KafkaConsumer {
	return &subscriber.KafkaConsumer{
		DLQPublisher: dlq,
		RetryConfig:  config.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond},
		Permanent:    ledger.IsPermanent,
	}
}

func TestProcessMessage_Success(t *testing.T) {
	dlq := mocks.NewMockPublisher(t)
	consumer := newConsumer(dlq)
	calls := 0

	consumer.ProcessMessage(context.Background(), kafka.Message{Topic: models.RefundReceivedTopic}, func(topic string, value []byte) error {
		calls++
		return nil
	})

	assert.Equal(t, 1, calls)
	dlq.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessMessage_RetriesThenDLQ(t *testing.T) {
	ctx := context.Background()
	dlq := mocks.NewMockPublisher(t)
	consumer := newConsumer(dlq)
	calls := 0

	dlq.EXPECT().
		Publish(ctx, models.PrepaidDLQTopic, mock.MatchedBy(func(m models.DLQMessage) bool {
			return m.OriginalTopic == models.CaptureRequestedTopic &&
				m.Value == `{"authorization_id":1}` &&
				m.Attempts == 3 &&
				m.Error == "broker timeout"
		})).
		Return(nil).
		Once()

	consumer.ProcessMessage(ctx, kafka.Message{Topic: models.CaptureRequestedTopic, Value: []byte(`{"authorization_id":1}`)}, func(topic string, value []byte) error {
		calls++
		return errors.New("broker timeout")
	})

	assert.Equal(t, 3, calls)
}

func TestProcessMessage_PermanentSkipsRetries(t *testing.T) {
	ctx := context.Background()
	dlq := mocks.NewMockPublisher(t)
	consumer := newConsumer(dlq)
	calls := 0

	dlq.EXPECT().
		Publish(ctx, models.PrepaidDLQTopic, mock.MatchedBy(func(m models.DLQMessage) bool {
			return m.Attempts == 1
		})).
		Return(nil).
		Once()

	consumer.ProcessMessage(ctx, kafka.Message{Topic: models.RefundReceivedTopic}, func(topic string, value []byte) error {
		calls++
		return ledger.ErrNotFound
	})

	assert.Equal(t, 1, calls)
}

package subscriber

import (
	"context"
	"errors"
	"time"

	"github.com/jeffleon2/draftea-prepaid-service/config"
	"github.com/jeffleon2/draftea-prepaid-service/internal/models"
	"github.com/jeffleon2/draftea-prepaid-service/internal/publisher"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// DLQPublisher receives messages that could not be handled.
type DLQPublisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

type KafkaConsumer struct {
	Readers      []*kafka.Reader
	DLQPublisher DLQPublisher
	RetryConfig  config.RetryConfig
	// Permanent reports errors that retrying cannot fix; such messages go
	// straight to the DLQ.
	Permanent func(error) bool
}

func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	dlq DLQPublisher,
	retryConfig config.RetryConfig,
) *KafkaConsumer {
	readers := make([]*kafka.Reader, len(topics))
	for i, topic := range topics {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	if retryConfig.MaxAttempts == 0 {
		retryConfig.MaxAttempts = 1
	}

	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: dlq,
		RetryConfig:  retryConfig,
	}
}

// Listen starts one goroutine per reader. They stop when ctx is done.
func (c *KafkaConsumer) Listen(ctx context.Context, handler func(topic string, value []byte) error) {
	for _, reader := range c.Readers {
		go func(r *kafka.Reader) {
			for {
				msg, err := r.ReadMessage(ctx)
				if err != nil {
					if ctx.Err() != nil || errors.Is(err, context.Canceled) {
						return
					}
					logrus.WithError(err).Error("Kafka error")
					continue
				}
				c.ProcessMessage(ctx, msg, handler)
			}
		}(reader)
	}
}

// Close closes every reader.
func (c *KafkaConsumer) Close() {
	for _, reader := range c.Readers {
		if err := reader.Close(); err != nil {
			logrus.WithError(err).Error("Error closing consumer")
		}
	}
}

// ProcessMessage runs handler with retries and sends the message to the DLQ
// when every attempt failed or the error is permanent.
func (c *KafkaConsumer) ProcessMessage(ctx context.Context, msg kafka.Message, handler func(topic string, value []byte) error) {
	var (
		lastErr  error
		attempts int
	)
	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		attempts = attempt + 1
		lastErr = handler(msg.Topic, msg.Value)
		if lastErr == nil {
			return
		}
		if c.Permanent != nil && c.Permanent(lastErr) {
			logrus.WithError(lastErr).Warnf("Permanent failure handling message from %s, not retrying", msg.Topic)
			break
		}
		if attempt == c.RetryConfig.MaxAttempts-1 {
			break
		}

		backoff := publisher.CalculateBackoff(c.RetryConfig, attempt)
		logrus.Warnf("Handler error, attempt %d/%d: %v. Retrying in %v", attempt+1, c.RetryConfig.MaxAttempts, lastErr, backoff)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return
		}
	}

	logrus.Errorf("Message failed after %d attempts: topic=%s, key=%s", attempts, msg.Topic, string(msg.Key))
	if c.DLQPublisher == nil {
		return
	}

	dlqMessage := models.DLQMessage{
		OriginalTopic: msg.Topic,
		Key:           string(msg.Key),
		Value:         string(msg.Value),
		Error:         lastErr.Error(),
		Timestamp:     time.Now().UTC(),
		Attempts:      attempts,
	}
	if err := c.DLQPublisher.Publish(ctx, models.PrepaidDLQTopic, dlqMessage); err != nil {
		logrus.WithError(err).Error("Failed to send message to DLQ")
		return
	}
	logrus.Infof("Message sent to DLQ: original topic=%s, key=%s", msg.Topic, string(msg.Key))
}

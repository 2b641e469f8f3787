package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Consumer struct {
	reader  *kafka.Reader
	logger  *zap.Logger
	handler func(context.Context, Envelope) error
}

// NewConsumer reads lifecycle events back from the topic and hands
// each envelope to the registered handler.
func NewConsumer(brokers []string, groupID, topic string, logger *zap.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   topic,
			Dialer:  kafka.DefaultDialer,
		}),
		logger: logger.Named("kafka_consumer"),
	}
}

func (c *Consumer) Start(ctx context.Context) {
	go func() {
		for {
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				c.logger.Error("Failed to fetch message", zap.Error(err))
				continue
			}

			var envelope Envelope
			if err := json.Unmarshal(msg.Value, &envelope); err != nil {
				c.logger.Error("Failed to parse event",
					zap.Error(err),
					zap.ByteString("value", msg.Value),
				)
				continue
			}

			if err := c.handler(ctx, envelope); err != nil {
				c.logger.Error("Failed to handle event",
					zap.Error(err),
					zap.String("event_type", string(envelope.Type)),
				)
				continue
			}

			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error("Failed to commit message",
					zap.Error(err),
					zap.String("event_type", string(envelope.Type)),
				)
			}
		}
	}()
}

func (c *Consumer) RegisterHandler(fn func(context.Context, Envelope) error) {
	c.handler = fn
}

func (c *Consumer) Close() {
	if err := c.reader.Close(); err != nil {
		c.logger.Error("Failed to close Kafka reader", zap.Error(err))
	}
}

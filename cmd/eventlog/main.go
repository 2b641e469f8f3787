// Eventlog tails the fleet event topic and prints every envelope. It
// is an operational aid for watching entity lifecycle traffic.
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"fleetops/internal/fleet/events"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	defaultBrokers = "localhost:9092"
	defaultTopic   = "fleet.events"
	defaultGroupID = "fleet-eventlog"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() {
		_ = logger.Sync()
	}()

	_ = godotenv.Load()
	brokers := strings.Split(envOr("KAFKA_BROKERS", defaultBrokers), ",")
	topic := envOr("TOPIC", defaultTopic)
	groupID := envOr("EVENTLOG_GROUP_ID", defaultGroupID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := events.NewConsumer(brokers, groupID, topic, logger)
	defer consumer.Close()

	consumer.RegisterHandler(func(_ context.Context, envelope events.Envelope) error {
		payload, err := json.Marshal(envelope.Payload)
		if err != nil {
			return err
		}
		logger.Info("event",
			zap.String("event_id", envelope.EventID),
			zap.String("type", string(envelope.Type)),
			zap.ByteString("payload", payload),
		)
		return nil
	})
	consumer.Start(ctx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("Event log stopped")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

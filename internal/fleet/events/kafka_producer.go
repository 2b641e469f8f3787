// Package events publishes entity lifecycle events to Kafka. Events
// are produced asynchronously through a buffered channel so business
// operations never block on the broker.
package events

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var jsonMarshal = json.Marshal

type EventType string

const (
	CompanyCreated   EventType = "company_created"
	CompanyUpdated   EventType = "company_updated"
	CompanyDeleted   EventType = "company_deleted"
	ClientCreated    EventType = "client_created"
	ClientDeleted    EventType = "client_deleted"
	EmployeeCreated  EventType = "employee_created"
	EmployeeDeleted  EventType = "employee_deleted"
	VehicleCreated   EventType = "vehicle_created"
	VehicleDeleted   EventType = "vehicle_deleted"
	TransportCreated EventType = "transport_created"
	TransportPaid    EventType = "transport_paid"
	TransportUnpaid  EventType = "transport_unpaid"
	TransportDeleted EventType = "transport_deleted"
)

// Event is the internal unit queued for publication. Key becomes the
// Kafka message key so events for one entity land on one partition.
type Event struct {
	Type    EventType
	Key     string
	Payload any
}

// Envelope is the wire format written to the topic.
type Envelope struct {
	EventID string    `json:"event_id"`
	Type    EventType `json:"type"`
	Payload any       `json:"payload"`
}

type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	writer    KafkaWriter
	events    chan Event
	logger    *zap.Logger
	closeChan chan struct{}
}

func NewProducer(brokers []string, logger *zap.Logger, topic string) (*Producer, error) {
	// Create topic if it doesn't exist
	conn, err := kafka.Dial("tcp", brokers[0])
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	topicConfigs := []kafka.TopicConfig{
		{
			Topic:             topic,
			NumPartitions:     3,
			ReplicationFactor: 1,
		},
	}

	err = conn.CreateTopics(topicConfigs...)
	if err != nil {
		logger.Warn("failed to create topic (may already exist)", zap.Error(err))
	}
	p := &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
			Topic:    topic,
		},
		events:    make(chan Event, 1000),
		logger:    logger.Named("kafka_producer"),
		closeChan: make(chan struct{}),
	}

	go p.eventLoop()
	return p, nil
}

func (p *Producer) Produce(eventType EventType, key string, payload any) {
	select {
	case p.events <- Event{Type: eventType, Key: key, Payload: payload}:
	default:
		p.logger.Warn("Kafka producer queue full, dropping event",
			zap.String("event_type", string(eventType)),
			zap.String("key", key),
		)
	}
}

func (p *Producer) eventLoop() {
	for {
		select {
		case event := <-p.events:
			p.sendEvent(context.Background(), event)
		case <-p.closeChan:
			return
		}
	}
}

func (p *Producer) sendEvent(ctx context.Context, event Event) {
	value, err := jsonMarshal(Envelope{
		EventID: uuid.NewString(),
		Type:    event.Type,
		Payload: event.Payload,
	})
	if err != nil {
		p.logger.Error("Failed to serialize event",
			zap.Error(err),
			zap.String("event_type", string(event.Type)),
			zap.String("key", event.Key),
		)
		return
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Key),
		Value: value,
	})
	if err != nil {
		p.logger.Error("Failed to produce event",
			zap.Error(err),
			zap.String("event_type", string(event.Type)),
			zap.String("key", event.Key),
		)
		return
	}
}

func (p *Producer) Close() {
	close(p.closeChan)
	if err := p.writer.Close(); err != nil {
		p.logger.Error("Failed to close Kafka writer", zap.Error(err))
	}
}

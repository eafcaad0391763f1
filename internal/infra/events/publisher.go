package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Publisher публикует события назначений в Kafka
// Публикация выполняется после коммита транзакции и является best effort:
// источником истины остается БД, потерянное событие не откатывает назначение
type Publisher struct {
	writer *kafka.Writer
	logger Logger
}

// NewPublisher создает publisher поверх kafka-go writer
// brokers - список брокеров через запятую
func NewPublisher(brokers string, topic string, logger Logger) *Publisher {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  splitBrokers(brokers),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	})

	return &Publisher{
		writer: writer,
		logger: logger,
	}
}

// PublishBookingAssigned публикует событие назначения провайдера
func (p *Publisher) PublishBookingAssigned(ctx context.Context, event BookingAssignedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: failed to marshal booking.assigned event: %w", err)
	}

	eventID := fmt.Sprintf("booking-%d-%d", event.BookingID, time.Now().UnixNano())

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", event.BookingID)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(eventID)},
			{Key: "event_type", Value: []byte(eventTypeBookingAssigned)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("events: failed to publish booking.assigned event: %w", err)
	}

	p.logger.Info("events: published booking.assigned event_id=%s booking=%d provider=%d",
		eventID, event.BookingID, event.ProviderID)
	return nil
}

// Close закрывает kafka writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// splitBrokers разбирает список брокеров из конфигурации
func splitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NoopPublisher заглушка, используемая при выключенной Kafka
type NoopPublisher struct{}

// PublishBookingAssigned ничего не делает
func (NoopPublisher) PublishBookingAssigned(ctx context.Context, event BookingAssignedEvent) error {
	return nil
}

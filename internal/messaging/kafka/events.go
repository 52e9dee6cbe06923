package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Топики событий заказов.
const (
	TopicOrdersCreated      = "storefront.orders.created"
	TopicOrderStatusChanged = "storefront.orders.status_changed"
	TopicDeadLetterQueue    = "storefront.dlq"
)

// Kafka headers для retry логики и маршрутизации.
const (
	HeaderRetryCount    = "x-retry-count"
	HeaderOriginalTopic = "x-original-topic"
	HeaderErrorMessage  = "x-error-message"
	HeaderFailedAt      = "x-failed-at"
	HeaderEventType     = "x-event-type"
	HeaderMessageID     = "x-message-id"
)

// ErrUnknownEventType — для типа события не настроен топик.
var ErrUnknownEventType = errors.New("unknown event type")

// TopicFor возвращает топик для типа события outbox.
func TopicFor(eventType string) (string, error) {
	switch eventType {
	case domain.EventOrderCreated:
		return TopicOrdersCreated, nil
	case domain.EventOrderStatusChanged:
		return TopicOrderStatusChanged, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEventType, eventType)
	}
}

// OrderTopics — все топики, в которые публикуются события заказов.
func OrderTopics() []string {
	return []string{TopicOrdersCreated, TopicOrderStatusChanged}
}

// Envelope — формат сообщения в топиках заказов.
type Envelope struct {
	ID            string          `json:"id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	PublishedAt   time.Time       `json:"published_at"`
}

// NewEnvelope упаковывает outbox-сообщение.
func NewEnvelope(msg domain.OutboxMessage, publishedAt time.Time) Envelope {
	return Envelope{
		ID:            msg.ID,
		AggregateType: msg.AggregateType,
		AggregateID:   msg.AggregateID,
		EventType:     msg.EventType,
		Payload:       json.RawMessage(msg.Payload),
		PublishedAt:   publishedAt,
	}
}

// ParseEnvelope парсит Envelope из сообщения
func ParseEnvelope(message *sarama.ConsumerMessage) (Envelope, error) {
	var envelope Envelope
	if err := json.Unmarshal(message.Value, &envelope); err != nil {
		return Envelope{}, fmt.Errorf("failed to unmarshal envelope: %w", err)
	}
	if envelope.EventType == "" {
		return Envelope{}, fmt.Errorf("envelope without event_type")
	}
	return envelope, nil
}

// ParseOrderEvent парсит OrderEvent из сообщения топиков заказов.
func ParseOrderEvent(message *sarama.ConsumerMessage) (domain.OrderEvent, error) {
	envelope, err := ParseEnvelope(message)
	if err != nil {
		return domain.OrderEvent{}, err
	}

	var event domain.OrderEvent
	if err := json.Unmarshal(envelope.Payload, &event); err != nil {
		return domain.OrderEvent{}, fmt.Errorf("failed to unmarshal order event: %w", err)
	}
	return event, nil
}

func headerValue(headers []*sarama.RecordHeader, key string) string {
	for _, header := range headers {
		if header != nil && string(header.Key) == key {
			return string(header.Value)
		}
	}
	return ""
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/storefront/internal/service/outbox"
)

// errNotDLQRecord — сообщение не похоже ни на один из форматов DLQ.
var errNotDLQRecord = errors.New("message is not a dlq record")

// replayRecord — восстановленное исходное событие, готовое к повторной публикации.
type replayRecord struct {
	origin    string
	topic     string
	key       string
	eventType string
	value     []byte
}

const (
	originConsumer = "consumer"
	originOutbox   = "outbox"
)

// decodeDLQ разбирает запись DLQ. В топик пишут двое: consumer кэша после исчерпания
// ретраев (kafka.ConsumerDLQPayload) и outbox worker (kafka.Envelope с outbox.DLQEnvelope внутри).
// Непустой overrideTopic заменяет маршрутизацию по типу события.
func decodeDLQ(value []byte, overrideTopic string, now time.Time) (replayRecord, error) {
	var failed kafka.ConsumerDLQPayload
	if err := json.Unmarshal(value, &failed); err == nil && failed.OriginalValue != "" {
		return fromConsumerFailure(failed, overrideTopic)
	}

	var envelope kafka.Envelope
	if err := json.Unmarshal(value, &envelope); err != nil || len(envelope.Payload) == 0 {
		return replayRecord{}, errNotDLQRecord
	}
	return fromOutboxFailure(envelope, overrideTopic, now)
}

func fromConsumerFailure(failed kafka.ConsumerDLQPayload, overrideTopic string) (replayRecord, error) {
	topic := overrideTopic
	if topic == "" {
		topic = strings.TrimSpace(failed.OriginalTopic)
	}
	if topic == "" {
		return replayRecord{}, fmt.Errorf("consumer dlq record at offset %d has no original topic", failed.OriginalOffset)
	}

	rec := replayRecord{
		origin: originConsumer,
		topic:  topic,
		key:    failed.OriginalKey,
		value:  []byte(failed.OriginalValue),
	}
	// тип события нужен для фильтра и заголовка; исходное значение обычно само является Envelope
	var original kafka.Envelope
	if err := json.Unmarshal(rec.value, &original); err == nil {
		rec.eventType = original.EventType
	}
	return rec, nil
}

func fromOutboxFailure(envelope kafka.Envelope, overrideTopic string, now time.Time) (replayRecord, error) {
	var failed outbox.DLQEnvelope
	if err := json.Unmarshal(envelope.Payload, &failed); err != nil {
		return replayRecord{}, fmt.Errorf("decode outbox dlq payload: %w", err)
	}
	if len(failed.Payload) == 0 {
		return replayRecord{}, fmt.Errorf("outbox dlq record %s carries no event payload", envelope.ID)
	}

	event := kafka.Envelope{
		ID:            pick(failed.OutboxID, envelope.ID),
		AggregateType: pick(failed.AggregateType, envelope.AggregateType),
		AggregateID:   pick(failed.AggregateID, envelope.AggregateID),
		EventType:     pick(failed.EventType, envelope.EventType),
		Payload:       failed.Payload,
		PublishedAt:   now,
	}

	topic := overrideTopic
	if topic == "" {
		routed, err := kafka.TopicFor(event.EventType)
		if err != nil {
			return replayRecord{}, err
		}
		topic = routed
	}

	encoded, err := json.Marshal(event)
	if err != nil {
		return replayRecord{}, fmt.Errorf("encode replay envelope: %w", err)
	}

	return replayRecord{
		origin:    originOutbox,
		topic:     topic,
		key:       pick(event.AggregateID, event.ID),
		eventType: event.EventType,
		value:     encoded,
	}, nil
}

func pick(primary, fallback string) string {
	if strings.TrimSpace(primary) != "" {
		return primary
	}
	return fallback
}

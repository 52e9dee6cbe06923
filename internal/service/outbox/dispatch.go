package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// send публикует сообщение, повторяя попытки с экспоненциальной паузой.
func (w *Worker) send(ctx context.Context, msg domain.OutboxMessage) error {
	var err error
	for attempt := 1; attempt <= w.maxAttempts; attempt++ {
		if attempt > 1 {
			if waitErr := sleep(ctx, w.backoff(attempt-1)); waitErr != nil {
				return waitErr
			}
		}

		if err = w.publisher.Publish(msg); err == nil {
			publishAttempts.WithLabelValues("sent").Inc()
			return nil
		}
		publishAttempts.WithLabelValues("retry_error").Inc()
	}
	return fmt.Errorf("%w after %d attempts: %v", domain.ErrOutboxPublish, w.maxAttempts, err)
}

// backoff возвращает паузу после n-й неудачной попытки: base * 2^(n-1) с насыщением.
func (w *Worker) backoff(n int) time.Duration {
	delay := w.retryBaseDelay
	for ; n > 1 && delay > 0; n-- {
		if delay > time.Duration(1<<62) {
			return time.Duration(1<<63 - 1)
		}
		delay *= 2
	}
	return delay
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (w *Worker) giveUp(ctx context.Context, msg domain.OutboxMessage, cause error) {
	logger := w.logger.WithFields(log.Fields{
		"outbox_id":    msg.ID,
		"event_type":   msg.EventType,
		"aggregate_id": msg.AggregateID,
	})
	logger.WithError(cause).Error("outbox message exhausted publish attempts")
	publishAttempts.WithLabelValues("failed").Inc()

	if err := w.deadLetter(msg, cause); err != nil {
		logger.WithError(err).Warn("copy outbox message to dlq")
		publishAttempts.WithLabelValues("dlq_failed").Inc()
	}
	if err := w.repo.MarkFailed(ctx, msg.ID); err != nil {
		logger.WithError(err).Warn("mark outbox message failed")
	}
}

// DLQEnvelope — тело сообщения DLQ; cmd/dlq-reprocess восстанавливает по нему исходное событие.
type DLQEnvelope struct {
	OutboxID       string          `json:"outbox_id"`
	AggregateType  string          `json:"aggregate_type"`
	AggregateID    string          `json:"aggregate_id"`
	EventType      string          `json:"event_type"`
	Payload        json.RawMessage `json:"payload"`
	PublishError   string          `json:"publish_error"`
	DLQPublishedAt time.Time       `json:"dlq_published_at"`
}

func (w *Worker) deadLetter(msg domain.OutboxMessage, cause error) error {
	if w.dlq == nil {
		return nil
	}

	body, err := json.Marshal(DLQEnvelope{
		OutboxID:       msg.ID,
		AggregateType:  msg.AggregateType,
		AggregateID:    msg.AggregateID,
		EventType:      msg.EventType,
		Payload:        json.RawMessage(msg.Payload),
		PublishError:   cause.Error(),
		DLQPublishedAt: w.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode dlq envelope: %w", err)
	}

	copied := msg
	copied.Payload = body
	if err := w.dlq.Publish(copied); err != nil {
		return fmt.Errorf("publish to dlq: %w", err)
	}
	return nil
}

package domain

import (
	"context"
	"time"
)

const (
	// AggregateOrder — тип агрегата для событий заказа в outbox.
	AggregateOrder = "order"

	// EventOrderCreated публикуется после атомарного оформления заказа.
	EventOrderCreated = "order.created"
	// EventOrderStatusChanged публикуется после смены статуса заказа.
	EventOrderStatusChanged = "order.status_changed"
)

// OutboxPublisher публикует события из transactional outbox.
type OutboxPublisher interface {
	// Publish передаёт событие наружу; должен быть идемпотентным.
	Publish(event OutboxMessage) error
}

// OutboxRepository позволяет читать события, сохранённые в транзакциях заказов, и отмечать их публикацию.
type OutboxRepository interface {
	PullPending(ctx context.Context, limit int) ([]OutboxMessage, error)
	Stats(ctx context.Context) (OutboxStats, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
}

// TimelineRepository отдаёт события жизненного цикла заказа.
type TimelineRepository interface {
	List(ctx context.Context, orderID string) ([]TimelineEvent, error)
}

// IdempotencyRepository хранит состояние обработки запросов по idempotency-key.
type IdempotencyRepository interface {
	// Reserve создаёт запись processing. Просроченная запись с тем же ключом перезаписывается;
	// живая возвращается вместе с ErrIdempotencyKeyAlreadyExists или ErrIdempotencyHashMismatch.
	Reserve(ctx context.Context, key IdempotencyKey, requestHash string, ttlAt time.Time) (IdempotencyRecord, error)
	Get(ctx context.Context, key IdempotencyKey) (IdempotencyRecord, error)
	// Finish сохраняет ответ и окончательный статус (done или failed).
	Finish(ctx context.Context, key IdempotencyKey, status IdempotencyStatus, responseBody []byte, responseCode int) error
	// Release удаляет незавершённый ключ, чтобы клиент мог повторить запрос после ретраябельной ошибки.
	Release(ctx context.Context, key IdempotencyKey) error
	DeleteExpired(ctx context.Context, before time.Time, limit int) (int, error)
}

// OutboxMessage хранит данные для публикуемого события.
type OutboxMessage struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
	CreatedAt     time.Time
}

// OutboxStats описывает текущее состояние backlog transactional outbox.
type OutboxStats struct {
	PendingCount    int
	OldestPendingAt time.Time
}

package domain

import (
	"fmt"
	"time"
)

// Типы событий истории заказа.
const (
	TimelineOrderCreated  = "order_created"
	TimelineStatusChanged = "status_changed"
)

// TimelineEvent — запись в истории заказа. Reason читается человеком, а не парсится.
type TimelineEvent struct {
	OrderID  string
	Type     string
	Reason   string
	Occurred time.Time
}

// OrderCreatedEvent фиксирует оформление заказа: число позиций и итог.
func OrderCreatedEvent(order Order, at time.Time) TimelineEvent {
	return TimelineEvent{
		OrderID:  order.ID,
		Type:     TimelineOrderCreated,
		Reason:   fmt.Sprintf("%d items, total %s", len(order.Items), order.Total.StringFixed(2)),
		Occurred: at,
	}
}

// StatusChangedEvent фиксирует смену статуса и того, кто её выполнил.
func StatusChangedEvent(orderID string, from, to OrderStatus, actorID string, at time.Time) TimelineEvent {
	return TimelineEvent{
		OrderID:  orderID,
		Type:     TimelineStatusChanged,
		Reason:   fmt.Sprintf("%s -> %s by %s", from, to, actorID),
		Occurred: at,
	}
}

package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// OrderEvent — полезная нагрузка outbox-сообщений о заказе.
type OrderEvent struct {
	EventType  string          `json:"event_type"`
	OrderID    string          `json:"order_id"`
	UserID     string          `json:"user_id"`
	Status     OrderStatus     `json:"status"`
	PrevStatus OrderStatus     `json:"prev_status,omitempty"`
	Total      string          `json:"total,omitempty"`
	Items      []OrderEventRow `json:"items,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

// OrderEventRow — позиция заказа в событии order.created.
type OrderEventRow struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
	Price     string `json:"price"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// NewOrderCreatedMessage собирает outbox-сообщение о созданном заказе.
func NewOrderCreatedMessage(order Order) (OutboxMessage, error) {
	rows := make([]OrderEventRow, 0, len(order.Items))
	for _, item := range order.Items {
		rows = append(rows, OrderEventRow{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
			Price:     item.Price.StringFixed(2),
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	return newOrderMessage(EventOrderCreated, OrderEvent{
		EventType: EventOrderCreated,
		OrderID:   order.ID,
		UserID:    order.UserID,
		Status:    order.Status,
		Total:     order.Total.StringFixed(2),
		Items:     rows,
		Timestamp: order.CreatedAt,
	})
}

// NewStatusChangedMessage собирает outbox-сообщение о смене статуса.
func NewStatusChangedMessage(order Order, prev OrderStatus, at time.Time) (OutboxMessage, error) {
	return newOrderMessage(EventOrderStatusChanged, OrderEvent{
		EventType:  EventOrderStatusChanged,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Status:     order.Status,
		PrevStatus: prev,
		Timestamp:  at,
	})
}

func newOrderMessage(eventType string, event OrderEvent) (OutboxMessage, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return OutboxMessage{}, fmt.Errorf("encode %s event: %w", eventType, err)
	}
	return OutboxMessage{
		AggregateType: AggregateOrder,
		AggregateID:   event.OrderID,
		EventType:     eventType,
		Payload:       payload,
		CreatedAt:     event.Timestamp,
	}, nil
}

package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTimelineEventConstructors(t *testing.T) {
	at := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	created := OrderCreatedEvent(Order{
		ID:    "o-1",
		Total: decimal.RequireFromString("59.9"),
		Items: make([]OrderItem, 3),
	}, at)
	assert.Equal(t, TimelineEvent{
		OrderID:  "o-1",
		Type:     TimelineOrderCreated,
		Reason:   "3 items, total 59.90",
		Occurred: at,
	}, created)

	changed := StatusChangedEvent("o-1", OrderStatusPending, OrderStatusProcessing, "admin-7", at)
	assert.Equal(t, TimelineStatusChanged, changed.Type)
	assert.Equal(t, "PENDING -> PROCESSING by admin-7", changed.Reason)
}

package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Store — общее in-memory состояние корзин, заказов, outbox и timeline.
// Единый мьютекс позволяет транзакции заказа атомарно менять сразу несколько коллекций.
type Store struct {
	mu    sync.Mutex
	state *state
	seq   int64
}

type cartRecord struct {
	line domain.CartLine
	seq  int64
}

type state struct {
	cart     map[string]cartRecord
	orders   map[string]orderRecord
	outbox   map[string]*outboxRecord
	timeline map[string][]domain.TimelineEvent
}

type orderRecord struct {
	order domain.Order
	seq   int64
}

// NewStore создаёт пустое in-memory хранилище.
func NewStore() *Store {
	return &Store{state: &state{
		cart:     make(map[string]cartRecord),
		orders:   make(map[string]orderRecord),
		outbox:   make(map[string]*outboxRecord),
		timeline: make(map[string][]domain.TimelineEvent),
	}}
}

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

// clone копирует состояние для транзакции; изменения применяются только при коммите.
func (st *state) clone() *state {
	dst := &state{
		cart:     make(map[string]cartRecord, len(st.cart)),
		orders:   make(map[string]orderRecord, len(st.orders)),
		outbox:   make(map[string]*outboxRecord, len(st.outbox)),
		timeline: make(map[string][]domain.TimelineEvent, len(st.timeline)),
	}
	for id, rec := range st.cart {
		dst.cart[id] = rec
	}
	for id, rec := range st.orders {
		dst.orders[id] = orderRecord{order: cloneOrder(rec.order), seq: rec.seq}
	}
	for id, rec := range st.outbox {
		copied := *rec
		dst.outbox[id] = &copied
	}
	for id, events := range st.timeline {
		dst.timeline[id] = append([]domain.TimelineEvent(nil), events...)
	}
	return dst
}

func (st *state) cartLinesForUser(userID string) []domain.CartLine {
	records := make([]cartRecord, 0)
	for _, rec := range st.cart {
		if rec.line.UserID == userID {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].seq < records[j].seq })

	lines := make([]domain.CartLine, 0, len(records))
	for _, rec := range records {
		lines = append(lines, rec.line)
	}
	return lines
}

func (st *state) sortedOrders(filter func(domain.Order) bool) []domain.Order {
	records := make([]orderRecord, 0, len(st.orders))
	for _, rec := range st.orders {
		if filter(rec.order) {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].order.CreatedAt.Equal(records[j].order.CreatedAt) {
			return records[i].seq > records[j].seq
		}
		return records[i].order.CreatedAt.After(records[j].order.CreatedAt)
	})

	orders := make([]domain.Order, 0, len(records))
	for _, rec := range records {
		orders = append(orders, cloneOrder(rec.order))
	}
	return orders
}

func cloneOrder(src domain.Order) domain.Order {
	dst := src
	if src.Items != nil {
		dst.Items = make([]domain.OrderItem, len(src.Items))
		copy(dst.Items, src.Items)
	}
	return dst
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// orderRepositoryInMemory — in-memory реализация OrderRepository.
// Транзакция работает с копией состояния под мьютексом Store и публикует её только при успехе.
type orderRepositoryInMemory struct {
	store *Store
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepositoryInMemory{store: store}
}

// RunInTransaction выполняет fn сериализованно относительно всех операций Store.
func (r *orderRepositoryInMemory) RunInTransaction(ctx context.Context, fn func(ctx context.Context, tx domain.OrderTx) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &orderTxInMemory{store: r.store, state: r.store.state.clone()}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	r.store.state = tx.state
	return nil
}

// FindOrderByID возвращает копию заказа.
func (r *orderRepositoryInMemory) FindOrderByID(_ context.Context, orderID string) (domain.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.state.orders[orderID]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return cloneOrder(rec.order), nil
}

// ListOrdersForUser возвращает заказы пользователя, новые первыми.
func (r *orderRepositoryInMemory) ListOrdersForUser(_ context.Context, userID string) ([]domain.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.state.sortedOrders(func(o domain.Order) bool { return o.UserID == userID }), nil
}

// ListAllOrders возвращает все заказы, новые первыми.
func (r *orderRepositoryInMemory) ListAllOrders(_ context.Context) ([]domain.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.state.sortedOrders(func(domain.Order) bool { return true }), nil
}

// orderTxInMemory изменяет только свою копию состояния.
type orderTxInMemory struct {
	store *Store
	state *state
}

func (tx *orderTxInMemory) LockCartLines(_ context.Context, userID string, ids []string) ([]domain.CartLine, error) {
	lines := make([]domain.CartLine, 0, len(ids))
	for _, id := range ids {
		rec, ok := tx.state.cart[id]
		if !ok || rec.line.UserID != userID {
			continue
		}
		lines = append(lines, rec.line)
	}
	return lines, nil
}

func (tx *orderTxInMemory) InsertOrder(_ context.Context, order domain.Order) error {
	if _, exists := tx.state.orders[order.ID]; exists {
		return domain.ErrDuplicateID
	}
	order.Items = nil
	tx.state.orders[order.ID] = orderRecord{order: order, seq: tx.store.nextSeq()}
	return nil
}

func (tx *orderTxInMemory) InsertOrderItems(_ context.Context, items []domain.OrderItem) error {
	for _, item := range items {
		rec, ok := tx.state.orders[item.OrderID]
		if !ok {
			return domain.ErrOrderNotFound
		}
		rec.order.Items = append(rec.order.Items, item)
		tx.state.orders[item.OrderID] = rec
	}
	return nil
}

func (tx *orderTxInMemory) DeleteCartLinesByIDs(_ context.Context, userID string, ids []string) (int64, error) {
	var deleted int64
	for _, id := range ids {
		rec, ok := tx.state.cart[id]
		if !ok || rec.line.UserID != userID {
			continue
		}
		delete(tx.state.cart, id)
		deleted++
	}
	return deleted, nil
}

func (tx *orderTxInMemory) LockOrder(_ context.Context, orderID string) (domain.Order, error) {
	rec, ok := tx.state.orders[orderID]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return cloneOrder(rec.order), nil
}

func (tx *orderTxInMemory) UpdateOrderStatus(_ context.Context, orderID string, status domain.OrderStatus, at time.Time) error {
	rec, ok := tx.state.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	rec.order.Status = status
	rec.order.UpdatedAt = at
	tx.state.orders[orderID] = rec
	return nil
}

func (tx *orderTxInMemory) EnqueueOutbox(_ context.Context, msg domain.OutboxMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = nowUTC()
	}
	tx.state.outbox[msg.ID] = &outboxRecord{
		msg:       msg,
		status:    outboxStatusPending,
		createdAt: msg.CreatedAt,
		updatedAt: msg.CreatedAt,
		seq:       tx.store.nextSeq(),
	}
	return nil
}

func (tx *orderTxInMemory) AppendTimeline(_ context.Context, event domain.TimelineEvent) error {
	if event.Occurred.IsZero() {
		event.Occurred = nowUTC()
	}
	tx.state.timeline[event.OrderID] = append(tx.state.timeline[event.OrderID], event)
	return nil
}

var (
	_ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
	_ domain.OrderTx         = (*orderTxInMemory)(nil)
)

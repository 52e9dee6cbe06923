package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

const orderColumns = `id, user_id, total, status, shipping_address, payment_method, created_at, updated_at`

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

// RunInTransaction открывает транзакцию REPEATABLE READ. Любая ошибка fn откатывает её целиком;
// сбои уровня хранилища возвращаются как *domain.TxError.
func (r *orderRepository) RunInTransaction(ctx context.Context, fn func(ctx context.Context, tx domain.OrderTx) error) (err error) {
	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return txError("begin", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(ctx, &orderTx{tx: tx}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return txError("commit", err)
	}
	return nil
}

func (r *orderRepository) FindOrderByID(ctx context.Context, orderID string) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	order, err := scanOrder(r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}

	items, err := loadItems(ctx, r.db, order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	order.Items = items

	return order, nil
}

func (r *orderRepository) ListOrdersForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return r.listOrders(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
}

func (r *orderRepository) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	return r.listOrders(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		ORDER BY created_at DESC, id DESC
	`)
}

func (r *orderRepository) listOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders, err := collectRows(rows, "order row", scanOrder)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := loadItems(ctx, r.db, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

// orderTx реализует domain.OrderTx поверх *sql.Tx.
type orderTx struct {
	tx *sql.Tx
}

// LockCartLines блокирует строки в порядке id, чтобы параллельные оформления не взаимоблокировались.
func (t *orderTx) LockCartLines(ctx context.Context, userID string, ids []string) ([]domain.CartLine, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	args := make([]any, 0, len(ids)+1)
	args = append(args, userID)
	for _, id := range ids {
		args = append(args, id)
	}

	rows, err := t.tx.QueryContext(ctx, `
		SELECT `+cartLineColumns+`
		FROM cart_items
		WHERE user_id = $1
		  AND id IN (`+inPlaceholders(2, len(ids))+`)
		ORDER BY id
		FOR UPDATE
	`, args...)
	if err != nil {
		return nil, txError("lock cart lines", err)
	}

	lines, err := scanCartLines(rows)
	if err != nil {
		return nil, txError("lock cart lines", err)
	}
	return lines, nil
}

func (t *orderTx) InsertOrder(ctx context.Context, order domain.Order) error {
	address, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("encode shipping address: %w", err)
	}

	_, err = t.tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, user_id, total, status, shipping_address, payment_method, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		order.ID, order.UserID, order.Total, string(order.Status), string(address),
		order.PaymentMethod, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateID
		}
		return txError("insert order", err)
	}
	return nil
}

func (t *orderTx) InsertOrderItems(ctx context.Context, items []domain.OrderItem) error {
	for i, item := range items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if _, err := t.tx.ExecContext(ctx, `
			INSERT INTO order_items (
				id, order_id, position, product_id, product_name, product_image,
				quantity, price, size, color
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		`,
			item.ID, item.OrderID, i, item.Product.ID, item.Product.Name, item.Product.Image,
			item.Quantity, item.Price, item.Size, item.Color,
		); err != nil {
			return txError("insert order item", err)
		}
	}
	return nil
}

func (t *orderTx) DeleteCartLinesByIDs(ctx context.Context, userID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	args := make([]any, 0, len(ids)+1)
	args = append(args, userID)
	for _, id := range ids {
		args = append(args, id)
	}

	res, err := t.tx.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE user_id = $1
		  AND id IN (`+inPlaceholders(2, len(ids))+`)
	`, args...)
	if err != nil {
		return 0, txError("delete cart lines", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, txError("delete cart lines", err)
	}
	return affected, nil
}

func (t *orderTx) LockOrder(ctx context.Context, orderID string) (domain.Order, error) {
	order, err := scanOrder(t.tx.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, orderID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, txError("lock order", err)
	}

	items, err := loadItems(ctx, t.tx, order.ID)
	if err != nil {
		return domain.Order{}, txError("lock order", err)
	}
	order.Items = items
	return order, nil
}

func (t *orderTx) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, at time.Time) error {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE orders
		SET status = $2,
		    updated_at = $3
		WHERE id = $1
	`, orderID, string(status), at)
	if err != nil {
		return txError("update order status", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return txError("update order status", err)
	}
	if affected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (t *orderTx) EnqueueOutbox(ctx context.Context, msg domain.OutboxMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	if _, err := t.tx.ExecContext(ctx, `
		INSERT INTO outbox_messages (
			id, aggregate_type, aggregate_id, event_type, payload,
			status, attempt_count, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,'pending',0,$6,$6)
	`,
		msg.ID, msg.AggregateType, msg.AggregateID, msg.EventType, msg.Payload, msg.CreatedAt,
	); err != nil {
		return txError("enqueue outbox message", err)
	}
	return nil
}

func (t *orderTx) AppendTimeline(ctx context.Context, event domain.TimelineEvent) error {
	if event.Occurred.IsZero() {
		event.Occurred = time.Now().UTC()
	}

	if _, err := t.tx.ExecContext(ctx, `
		INSERT INTO timeline_events (order_id, type, reason, occurred)
		VALUES ($1,$2,$3,$4)
	`, event.OrderID, event.Type, event.Reason, event.Occurred); err != nil {
		return txError("append timeline event", err)
	}
	return nil
}

// txError помечает конфликты сериализации и блокировок, чтобы отличать их от прочих сбоев.
func txError(op string, err error) error {
	if isRetriableTxError(err) {
		return domain.NewTxConflict(op, err)
	}
	return domain.NewTxError(op, err)
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order   domain.Order
		status  string
		address []byte
	)
	if err := row.Scan(
		&order.ID, &order.UserID, &order.Total, &status, &address,
		&order.PaymentMethod, &order.CreatedAt, &order.UpdatedAt,
	); err != nil {
		return domain.Order{}, err
	}
	order.Status = domain.OrderStatus(status)
	if err := json.Unmarshal(address, &order.ShippingAddress); err != nil {
		return domain.Order{}, fmt.Errorf("decode shipping address: %w", err)
	}
	return order, nil
}

func loadItems(ctx context.Context, q queryer, orderID string) ([]domain.OrderItem, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, order_id, product_id, product_name, product_image, quantity, price, size, color
		FROM order_items
		WHERE order_id = $1
		ORDER BY position ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	return collectRows(rows, "order item", scanOrderItem)
}

func scanOrderItem(row rowScanner) (domain.OrderItem, error) {
	var item domain.OrderItem
	err := row.Scan(
		&item.ID, &item.OrderID, &item.Product.ID, &item.Product.Name, &item.Product.Image,
		&item.Quantity, &item.Price, &item.Size, &item.Color,
	)
	return item, err
}

var (
	_ domain.OrderRepository = (*orderRepository)(nil)
	_ domain.OrderTx         = (*orderTx)(nil)
)

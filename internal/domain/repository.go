package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CartRepository описывает требования к хранилищу строк корзины.
type CartRepository interface {
	// Merge создаёт строку или увеличивает quantity существующей строки с тем же CartKey.
	Merge(ctx context.Context, line CartLine) (CartLine, error)
	// SetQuantity меняет количество строки владельца или возвращает ErrCartLineNotFound.
	SetQuantity(ctx context.Context, lineID, userID string, qty int32, at time.Time) (CartLine, error)
	// Delete удаляет строку владельца или возвращает ErrCartLineNotFound.
	Delete(ctx context.Context, lineID, userID string) error
	// DeleteAll удаляет все строки пользователя; пустая корзина не ошибка.
	DeleteAll(ctx context.Context, userID string) error
	// ListByUser возвращает строки пользователя в порядке добавления.
	ListByUser(ctx context.Context, userID string) ([]CartLine, error)
}

// ProductCatalog — внешний каталог товаров, только чтение.
type ProductCatalog interface {
	// GetPrice возвращает текущую цену товара или ErrProductNotFound.
	GetPrice(ctx context.Context, productID string) (decimal.Decimal, error)
	// GetProduct возвращает запись каталога или ErrProductNotFound.
	GetProduct(ctx context.Context, productID string) (Product, error)
}

// OrderTx — операции, доступные внутри атомарной единицы работы.
type OrderTx interface {
	// LockCartLines перечитывает строки корзины по id с блокировкой; отсутствующие строки пропускаются.
	LockCartLines(ctx context.Context, userID string, ids []string) ([]CartLine, error)
	InsertOrder(ctx context.Context, order Order) error
	InsertOrderItems(ctx context.Context, items []OrderItem) error
	// DeleteCartLinesByIDs удаляет строки по id и возвращает число удалённых строк.
	DeleteCartLinesByIDs(ctx context.Context, userID string, ids []string) (int64, error)
	// LockOrder читает заказ с блокировкой строки или возвращает ErrOrderNotFound.
	LockOrder(ctx context.Context, orderID string) (Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status OrderStatus, at time.Time) error
	EnqueueOutbox(ctx context.Context, msg OutboxMessage) error
	AppendTimeline(ctx context.Context, event TimelineEvent) error
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// RunInTransaction выполняет fn с изоляцией не ниже repeatable read и откатывает всё при ошибке.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context, tx OrderTx) error) error
	// FindOrderByID возвращает заказ вместе с позициями или ErrOrderNotFound.
	FindOrderByID(ctx context.Context, orderID string) (Order, error)
	// ListOrdersForUser возвращает заказы пользователя, новые первыми.
	ListOrdersForUser(ctx context.Context, userID string) ([]Order, error)
	// ListAllOrders возвращает все заказы, новые первыми.
	ListAllOrders(ctx context.Context) ([]Order, error)
}

package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart возвращается, когда в корзине нет строк для оформления заказа.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrProductNotFound — товар отсутствует в каталоге.
	ErrProductNotFound = errors.New("product not found")
	// ErrNotFound — общая ошибка отсутствующей (или чужой) сущности.
	ErrNotFound = errors.New("not found")
	// ErrCartLineNotFound — строка корзины не найдена или принадлежит другому пользователю.
	ErrCartLineNotFound = fmt.Errorf("cart line %w", ErrNotFound)
	// ErrOrderNotFound — заказ не найден или скрыт от запрашивающего пользователя.
	ErrOrderNotFound = fmt.Errorf("order %w", ErrNotFound)
	// ErrForbidden — операция недоступна для актора.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidTransition — недопустимая смена статуса заказа.
	ErrInvalidTransition = errors.New("invalid order status transition")
	// ErrTransaction — транзакция хранилища не была зафиксирована, состояние не изменилось.
	ErrTransaction = errors.New("transaction failed")
	// ErrCartConflict — корзина изменилась во время оформления заказа, можно повторить попытку.
	ErrCartConflict = errors.New("cart changed during checkout")
	// ErrDuplicateID — запись с таким идентификатором уже существует.
	ErrDuplicateID = errors.New("duplicate id")

	// Ошибка отсутствующего идентификатора пользователя.
	ErrUserRequired = errors.New("user_id is required")
	// Ошибка отсутствующего идентификатора товара.
	ErrProductRequired = errors.New("product_id is required")
	// Ошибка некорректного количества (<= 0 или больше лимита строки).
	ErrQuantityInvalid = errors.New("quantity must be between 1 and 999")
	// Ошибка неполного адреса доставки.
	ErrShippingAddressInvalid = errors.New("shipping address is incomplete")
	// Ошибка отсутствующего способа оплаты.
	ErrPaymentMethodRequired = errors.New("payment method is required")
	// Ошибка неизвестного статуса заказа.
	ErrUnknownStatus = errors.New("unknown order status")
	// Ошибка несоответствия итога заказа и суммы позиций.
	ErrTotalMismatch = errors.New("order total does not match items sum")
	// ErrOutboxPublish — ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
)

// TransitionError описывает запрещённый переход между статусами заказа.
type TransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

// Is позволяет сравнивать TransitionError с ErrInvalidTransition через errors.Is.
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// TxError оборачивает сбой хранилища внутри транзакции.
// Conflict отмечает конфликт конкурентного доступа (сериализация, дедлок, ожидание блокировки).
type TxError struct {
	Op       string
	Err      error
	Conflict bool
}

func (e *TxError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrTransaction, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", ErrTransaction, e.Op, e.Err)
}

func (e *TxError) Unwrap() error { return e.Err }

// Is позволяет сравнивать TxError с ErrTransaction через errors.Is.
func (e *TxError) Is(target error) bool {
	return target == ErrTransaction
}

// NewTxError создаёт TxError для операции op.
func NewTxError(op string, err error) error {
	return &TxError{Op: op, Err: err}
}

// NewTxConflict создаёт TxError для конфликта конкурентных транзакций.
func NewTxConflict(op string, err error) error {
	return &TxError{Op: op, Err: err, Conflict: true}
}

// IsTxConflict сообщает, что транзакция проиграла гонку за строки.
func IsTxConflict(err error) bool {
	var txErr *TxError
	return errors.As(err, &txErr) && txErr.Conflict
}

// IsRetriable сообщает, можно ли безопасно повторить операцию без изменений:
// ничего не было записано, а повтор либо создаст ровно один заказ, либо увидит пустую корзину.
func IsRetriable(err error) bool {
	return errors.Is(err, ErrTransaction) || errors.Is(err, ErrCartConflict)
}

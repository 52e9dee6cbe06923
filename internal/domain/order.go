package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusPending — заказ создан из корзины и ожидает обработки.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusProcessing — заказ принят в работу.
	OrderStatusProcessing OrderStatus = "PROCESSING"
	// OrderStatusShipped — заказ передан в доставку.
	OrderStatusShipped OrderStatus = "SHIPPED"
	// OrderStatusDelivered — заказ доставлен, терминальный статус.
	OrderStatusDelivered OrderStatus = "DELIVERED"
	// OrderStatusCancelled — заказ отменён, терминальный статус.
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
}

// ParseOrderStatus приводит строку к OrderStatus без учёта регистра.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}

// Valid проверяет, что статус относится к поддерживаемым значениям.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal сообщает, что из статуса нет переходов.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo проверяет переход по таблице статусов.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidateTransition возвращает *TransitionError, если переход запрещён.
func ValidateTransition(from, to OrderStatus) error {
	if !to.Valid() {
		return ErrUnknownStatus
	}
	if !from.CanTransitionTo(to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// ShippingAddress — адрес доставки, копируется в заказ при оформлении.
type ShippingAddress struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// Validate проверяет, что все поля адреса заполнены.
func (a ShippingAddress) Validate() error {
	fields := []string{a.FirstName, a.LastName, a.Address, a.City, a.PostalCode, a.Country, a.Phone}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return ErrShippingAddressInvalid
		}
	}
	return nil
}

// OrderItem — замороженный снимок купленной конфигурации товара.
type OrderItem struct {
	ID      string
	OrderID string
	// Product хранит данные товара, достаточные для отображения без обращения к каталогу.
	Product  ProductRef
	Quantity int32
	// Price — цена каталога на момент оформления заказа.
	Price decimal.Decimal
	Size  string
	Color string
}

// LineTotal возвращает стоимость позиции без округления.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt32(i.Quantity))
}

// Order — неизменяемая запись о покупке; после создания меняется только статус.
type Order struct {
	ID              string
	UserID          string
	Total           decimal.Decimal
	Status          OrderStatus
	ShippingAddress ShippingAddress
	PaymentMethod   string
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RoundMoney округляет сумму до минимальной денежной единицы (2 знака, half-up).
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// ComputeTotal считает итог заказа как сумму price × quantity, округлённую один раз.
func ComputeTotal(items []OrderItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.LineTotal())
	}
	return RoundMoney(sum)
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.UserID == "" {
		errs = append(errs, ErrUserRequired)
	}
	if len(o.Items) == 0 {
		errs = append(errs, ErrEmptyCart)
	}
	if err := o.ShippingAddress.Validate(); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(o.PaymentMethod) == "" {
		errs = append(errs, ErrPaymentMethodRequired)
	}
	for _, item := range o.Items {
		if item.Quantity <= 0 {
			errs = append(errs, ErrQuantityInvalid)
		}
	}
	if !ComputeTotal(o.Items).Equal(o.Total) {
		errs = append(errs, ErrTotalMismatch)
	}

	return errs
}

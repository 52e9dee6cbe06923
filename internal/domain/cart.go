package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MaxLineQuantity ограничивает количество единиц в одной строке корзины.
const MaxLineQuantity = 999

// CartLine — одна выбранная конфигурация товара в корзине пользователя.
// Отсутствующие size/color хранятся как пустая строка, чтобы ключ уникальности был полным.
type CartLine struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int32
	Size      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartKey — ключ идемпотентного слияния строк корзины.
type CartKey struct {
	UserID    string
	ProductID string
	Size      string
	Color     string
}

// Key возвращает ключ слияния строки.
func (l CartLine) Key() CartKey {
	return CartKey{UserID: l.UserID, ProductID: l.ProductID, Size: l.Size, Color: l.Color}
}

// NormalizeVariant приводит необязательный атрибут (size/color) к каноничному виду.
func NormalizeVariant(v string) string {
	return strings.TrimSpace(v)
}

// ValidateQuantity проверяет допустимость количества для строки корзины.
func ValidateQuantity(qty int32) error {
	if qty <= 0 || qty > MaxLineQuantity {
		return ErrQuantityInvalid
	}
	return nil
}

// CartItemView — строка корзины вместе с актуальными данными товара для отображения.
type CartItemView struct {
	Line      CartLine
	Product   ProductRef
	UnitPrice decimal.Decimal
}

// Product — запись каталога, доступная ядру только на чтение.
type Product struct {
	ID     string
	Name   string
	Price  decimal.Decimal
	Images []string
	Stock  int32
}

// Ref возвращает снимок товара для позиции заказа или корзины.
func (p Product) Ref() ProductRef {
	ref := ProductRef{ID: p.ID, Name: p.Name}
	if len(p.Images) > 0 {
		ref.Image = p.Images[0]
	}
	return ref
}

// ProductRef — минимальные данные товара для отображения без обращения к каталогу.
type ProductRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

package cache

import (
	"context"
	"errors"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// CartCache хранит строки корзины пользователя. Цены в кэш не попадают:
// листинг всегда пересчитывается по текущему каталогу.
type CartCache interface {
	Get(ctx context.Context, userID string) ([]domain.CartLine, error)
	Set(ctx context.Context, userID string, lines []domain.CartLine) error
	Delete(ctx context.Context, userID string) error
}

// ErrCacheMiss возвращается, когда в кэше нет записи для пользователя.
var ErrCacheMiss = errors.New("cache miss")

// Nop — кэш-заглушка для конфигураций без Redis.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]domain.CartLine, error) { return nil, ErrCacheMiss }

func (Nop) Set(context.Context, string, []domain.CartLine) error { return nil }

func (Nop) Delete(context.Context, string) error { return nil }

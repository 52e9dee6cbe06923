package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// cartRepositoryInMemory — in-memory реализация CartRepository поверх общего Store.
type cartRepositoryInMemory struct {
	store *Store
}

// NewCartRepository возвращает in-memory репозиторий корзин.
func NewCartRepository(store *Store) domain.CartRepository {
	return &cartRepositoryInMemory{store: store}
}

// Merge увеличивает quantity строки с тем же ключом или создаёт новую строку.
// Сумма выше MaxLineQuantity отклоняется, строка остаётся прежней.
func (r *cartRepositoryInMemory) Merge(_ context.Context, line domain.CartLine) (domain.CartLine, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := line.UpdatedAt
	if now.IsZero() {
		now = nowUTC()
	}

	key := line.Key()
	for id, rec := range r.store.state.cart {
		if rec.line.Key() != key {
			continue
		}
		if int64(rec.line.Quantity)+int64(line.Quantity) > domain.MaxLineQuantity {
			return domain.CartLine{}, domain.ErrQuantityInvalid
		}
		rec.line.Quantity += line.Quantity
		rec.line.UpdatedAt = now
		r.store.state.cart[id] = rec
		return rec.line, nil
	}

	if line.ID == "" {
		line.ID = uuid.NewString()
	}
	line.CreatedAt = now
	line.UpdatedAt = now
	r.store.state.cart[line.ID] = cartRecord{line: line, seq: r.store.nextSeq()}
	return line, nil
}

// SetQuantity меняет количество строки, если она принадлежит userID.
func (r *cartRepositoryInMemory) SetQuantity(_ context.Context, lineID, userID string, qty int32, at time.Time) (domain.CartLine, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.state.cart[lineID]
	if !ok || rec.line.UserID != userID {
		return domain.CartLine{}, domain.ErrCartLineNotFound
	}
	rec.line.Quantity = qty
	rec.line.UpdatedAt = at
	r.store.state.cart[lineID] = rec
	return rec.line, nil
}

// Delete удаляет строку владельца.
func (r *cartRepositoryInMemory) Delete(_ context.Context, lineID, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.state.cart[lineID]
	if !ok || rec.line.UserID != userID {
		return domain.ErrCartLineNotFound
	}
	delete(r.store.state.cart, lineID)
	return nil
}

// DeleteAll очищает корзину пользователя.
func (r *cartRepositoryInMemory) DeleteAll(_ context.Context, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, rec := range r.store.state.cart {
		if rec.line.UserID == userID {
			delete(r.store.state.cart, id)
		}
	}
	return nil
}

// ListByUser возвращает строки пользователя в порядке добавления.
func (r *cartRepositoryInMemory) ListByUser(_ context.Context, userID string) ([]domain.CartLine, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.state.cartLinesForUser(userID), nil
}

var _ domain.CartRepository = (*cartRepositoryInMemory)(nil)

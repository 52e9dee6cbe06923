package memory

import (
	"context"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type timelineRepositoryInMemory struct {
	store *Store
}

// NewTimelineRepository создаёт in-memory хранилище событий timeline.
func NewTimelineRepository(store *Store) domain.TimelineRepository {
	return &timelineRepositoryInMemory{store: store}
}

// List возвращает копию событий заказа в порядке добавления.
func (r *timelineRepositoryInMemory) List(_ context.Context, orderID string) ([]domain.TimelineEvent, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	events := r.store.state.timeline[orderID]
	out := make([]domain.TimelineEvent, len(events))
	copy(out, events)
	return out, nil
}

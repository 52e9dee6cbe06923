package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

const timelineQuery = `
	SELECT order_id, type, reason, occurred
	FROM timeline_events
	WHERE order_id = $1
	ORDER BY occurred, id`

// timelineRepository только читает историю; запись идёт через orderTx.AppendTimeline.
type timelineRepository struct {
	db *sql.DB
}

// NewTimelineRepository создаёт PostgreSQL-реализацию TimelineRepository.
func NewTimelineRepository(store *Store) domain.TimelineRepository {
	return &timelineRepository{db: store.DB()}
}

func (r *timelineRepository) List(ctx context.Context, orderID string) ([]domain.TimelineEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, timelineQuery, orderID)
	if err != nil {
		return nil, fmt.Errorf("query timeline of order %s: %w", orderID, err)
	}
	return collectRows(rows, "timeline event", scanTimelineEvent)
}

func scanTimelineEvent(row rowScanner) (domain.TimelineEvent, error) {
	var e domain.TimelineEvent
	err := row.Scan(&e.OrderID, &e.Type, &e.Reason, &e.Occurred)
	if err == nil {
		e.Occurred = e.Occurred.UTC()
	}
	return e, err
}

var _ domain.TimelineRepository = (*timelineRepository)(nil)

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

const cartLineColumns = `id, user_id, product_id, quantity, size, color, created_at, updated_at`

type cartRepository struct {
	db *sql.DB
}

// NewCartRepository создаёт PostgreSQL-реализацию CartRepository.
func NewCartRepository(store *Store) domain.CartRepository {
	return &cartRepository{db: store.DB()}
}

// Merge полагается на уникальный ключ (user_id, product_id, size, color):
// параллельные добавления одной конфигурации сходятся в одну строку.
// Если сумма превысила бы MaxLineQuantity, DO UPDATE не срабатывает и RETURNING пуст.
func (r *cartRepository) Merge(ctx context.Context, line domain.CartLine) (domain.CartLine, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if line.ID == "" {
		line.ID = uuid.NewString()
	}
	now := line.UpdatedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO cart_items (
			id, user_id, product_id, quantity, size, color, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$7)
		ON CONFLICT (user_id, product_id, size, color)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity,
		              updated_at = EXCLUDED.updated_at
		WHERE cart_items.quantity + EXCLUDED.quantity <= $8
		RETURNING `+cartLineColumns,
		line.ID, line.UserID, line.ProductID, line.Quantity, line.Size, line.Color, now, domain.MaxLineQuantity,
	)

	merged, err := scanCartLine(row)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows), isCheckViolation(err):
			return domain.CartLine{}, domain.ErrQuantityInvalid
		case isForeignKeyViolation(err):
			return domain.CartLine{}, domain.ErrProductNotFound
		}
		return domain.CartLine{}, fmt.Errorf("merge cart line: %w", err)
	}
	return merged, nil
}

func (r *cartRepository) SetQuantity(ctx context.Context, lineID, userID string, qty int32, at time.Time) (domain.CartLine, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		UPDATE cart_items
		SET quantity = $3,
		    updated_at = $4
		WHERE id = $1
		  AND user_id = $2
		RETURNING `+cartLineColumns,
		lineID, userID, qty, at,
	)

	line, err := scanCartLine(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CartLine{}, domain.ErrCartLineNotFound
		}
		if isCheckViolation(err) {
			return domain.CartLine{}, domain.ErrQuantityInvalid
		}
		return domain.CartLine{}, fmt.Errorf("update cart line quantity: %w", err)
	}
	return line, nil
}

func (r *cartRepository) Delete(ctx context.Context, lineID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, lineID, userID)
	if err != nil {
		return fmt.Errorf("delete cart line: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrCartLineNotFound
	}
	return nil
}

func (r *cartRepository) DeleteAll(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (r *cartRepository) ListByUser(ctx context.Context, userID string) ([]domain.CartLine, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+cartLineColumns+`
		FROM cart_items
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}
	return scanCartLines(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCartLine(row rowScanner) (domain.CartLine, error) {
	var line domain.CartLine
	if err := row.Scan(
		&line.ID, &line.UserID, &line.ProductID, &line.Quantity,
		&line.Size, &line.Color, &line.CreatedAt, &line.UpdatedAt,
	); err != nil {
		return domain.CartLine{}, err
	}
	return line, nil
}

func scanCartLines(rows *sql.Rows) ([]domain.CartLine, error) {
	return collectRows(rows, "cart line", scanCartLine)
}

var _ domain.CartRepository = (*cartRepository)(nil)

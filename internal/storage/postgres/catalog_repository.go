package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Catalog читает таблицу products; запись в каталог выполняет внешний сервис.
type Catalog struct {
	db *sql.DB
}

// NewCatalog создаёт PostgreSQL-реализацию ProductCatalog.
func NewCatalog(store *Store) *Catalog {
	return &Catalog{db: store.DB()}
}

func (c *Catalog) GetPrice(ctx context.Context, productID string) (decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var price decimal.Decimal
	err := c.db.QueryRowContext(ctx, `SELECT price FROM products WHERE id = $1`, productID).Scan(&price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Decimal{}, domain.ErrProductNotFound
		}
		return decimal.Decimal{}, fmt.Errorf("select product price: %w", err)
	}
	return price, nil
}

func (c *Catalog) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var (
		product domain.Product
		images  []byte
	)
	err := c.db.QueryRowContext(ctx, `
		SELECT id, name, price, images, stock
		FROM products
		WHERE id = $1
	`, productID).Scan(&product.ID, &product.Name, &product.Price, &images, &product.Stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("select product: %w", err)
	}

	if len(images) > 0 {
		if err := json.Unmarshal(images, &product.Images); err != nil {
			return domain.Product{}, fmt.Errorf("decode product images: %w", err)
		}
	}
	return product, nil
}

// Upsert записывает товар; используется сидированием и интеграционными тестами.
func (c *Catalog) Upsert(ctx context.Context, p domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	images := p.Images
	if images == nil {
		images = []string{}
	}
	rawImages, err := json.Marshal(images)
	if err != nil {
		return fmt.Errorf("encode product images: %w", err)
	}

	now := time.Now().UTC()
	if _, err := c.db.ExecContext(ctx, `
		INSERT INTO products (id, name, price, images, stock, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    price = EXCLUDED.price,
		    images = EXCLUDED.images,
		    stock = EXCLUDED.stock,
		    updated_at = EXCLUDED.updated_at
	`, p.ID, p.Name, p.Price, string(rawImages), p.Stock, now); err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

var _ domain.ProductCatalog = (*Catalog)(nil)

package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Catalog — in-memory каталог товаров для разработки и тестов.
type Catalog struct {
	mu       sync.RWMutex
	products map[string]domain.Product
}

// NewCatalog создаёт каталог, заполненный переданными товарами.
func NewCatalog(products ...domain.Product) *Catalog {
	c := &Catalog{products: make(map[string]domain.Product, len(products))}
	for _, p := range products {
		c.Upsert(p)
	}
	return c
}

// Upsert добавляет или заменяет товар.
func (c *Catalog) Upsert(p domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p.Images = append([]string(nil), p.Images...)
	c.products[p.ID] = p
}

// SetPrice меняет цену товара; возвращает ErrProductNotFound для неизвестного id.
func (c *Catalog) SetPrice(productID string, price decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Price = price
	c.products[productID] = p
	return nil
}

// Remove удаляет товар из каталога.
func (c *Catalog) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.products, productID)
}

// GetPrice возвращает текущую цену товара.
func (c *Catalog) GetPrice(ctx context.Context, productID string) (decimal.Decimal, error) {
	p, err := c.GetProduct(ctx, productID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return p.Price, nil
}

// GetProduct возвращает копию записи каталога.
func (c *Catalog) GetProduct(_ context.Context, productID string) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[productID]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	p.Images = append([]string(nil), p.Images...)
	return p, nil
}

// DemoProducts возвращает небольшой набор товаров для запуска сервиса с memory-хранилищем.
func DemoProducts() []domain.Product {
	return []domain.Product{
		{ID: "tee-classic", Name: "Classic Tee", Price: decimal.RequireFromString("19.99"), Images: []string{"/images/tee-classic.jpg"}, Stock: 100},
		{ID: "hoodie-zip", Name: "Zip Hoodie", Price: decimal.RequireFromString("49.50"), Images: []string{"/images/hoodie-zip.jpg"}, Stock: 40},
		{ID: "cap-logo", Name: "Logo Cap", Price: decimal.RequireFromString("15.00"), Images: []string{"/images/cap-logo.jpg"}, Stock: 75},
	}
}

var _ domain.ProductCatalog = (*Catalog)(nil)

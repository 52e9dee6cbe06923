package cart

import (
	"context"
	"errors"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/vladislavdragonenkov/storefront/internal/cache"
	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
)

// Названия операций для метрик.
const (
	opAdd    = "add"
	opUpdate = "update"
	opRemove = "remove"
	opClear  = "clear"
)

// cacheGenStripes — число полос счётчика инвалидаций.
const cacheGenStripes = 64

// AddItemRequest — выбранная конфигурация товара для добавления в корзину.
type AddItemRequest struct {
	UserID    string
	ProductID string
	Quantity  int32
	Size      string
	Color     string
}

// Options задаёт необязательные зависимости Store.
type Options struct {
	Cache   cache.CartCache
	Metrics *metrics.CheckoutMetrics
	Logger  *log.Entry
	Now     func() time.Time
}

// Option настраивает Store.
type Option func(*Options)

// WithCache включает кэш листинга корзины.
func WithCache(c cache.CartCache) Option {
	return func(opts *Options) {
		opts.Cache = c
	}
}

// WithMetrics подключает prometheus-метрики корзины.
func WithMetrics(m *metrics.CheckoutMetrics) Option {
	return func(opts *Options) {
		opts.Metrics = m
	}
}

// WithLogger задаёт logger.
func WithLogger(logger *log.Entry) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithClock подменяет источник времени (используется в тестах).
func WithClock(now func() time.Time) Option {
	return func(opts *Options) {
		opts.Now = now
	}
}

// Store управляет строками корзины пользователя.
type Store struct {
	repo    domain.CartRepository
	catalog domain.ProductCatalog
	cache   cache.CartCache
	metrics *metrics.CheckoutMetrics
	logger  *log.Entry
	now     func() time.Time

	listGroup singleflight.Group

	// genMu защищает cacheGen и упорядочивает запись в кэш относительно инвалидации.
	genMu    sync.Mutex
	cacheGen [cacheGenStripes]uint64
}

// NewStore создаёт Store поверх репозитория корзины и каталога.
func NewStore(repo domain.CartRepository, catalog domain.ProductCatalog, options ...Option) *Store {
	opts := Options{}
	for _, option := range options {
		if option != nil {
			option(&opts)
		}
	}
	if opts.Logger == nil {
		opts.Logger = log.New().WithField("component", "cart-store")
	}
	if opts.Cache == nil {
		opts.Cache = cache.Nop{}
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}

	return &Store{
		repo:    repo,
		catalog: catalog,
		cache:   opts.Cache,
		metrics: opts.Metrics,
		logger:  opts.Logger,
		now:     opts.Now,
	}
}

// AddItem добавляет конфигурацию товара в корзину. Повторное добавление той же
// конфигурации увеличивает quantity существующей строки.
func (s *Store) AddItem(ctx context.Context, req AddItemRequest) (domain.CartLine, error) {
	userID := strings.TrimSpace(req.UserID)
	productID := strings.TrimSpace(req.ProductID)
	if userID == "" {
		return domain.CartLine{}, domain.ErrUserRequired
	}
	if productID == "" {
		return domain.CartLine{}, domain.ErrProductRequired
	}
	if err := domain.ValidateQuantity(req.Quantity); err != nil {
		return domain.CartLine{}, err
	}

	if _, err := s.catalog.GetPrice(ctx, productID); err != nil {
		return domain.CartLine{}, err
	}

	now := s.now()
	line, err := s.repo.Merge(ctx, domain.CartLine{
		UserID:    userID,
		ProductID: productID,
		Quantity:  req.Quantity,
		Size:      domain.NormalizeVariant(req.Size),
		Color:     domain.NormalizeVariant(req.Color),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return domain.CartLine{}, err
	}

	s.afterMutation(ctx, opAdd, userID)
	s.logger.WithFields(log.Fields{
		"user_id":    userID,
		"product_id": productID,
		"line_id":    line.ID,
		"quantity":   line.Quantity,
	}).Debug("cart line merged")
	return line, nil
}

// UpdateQuantity задаёт новое количество строки владельца.
func (s *Store) UpdateQuantity(ctx context.Context, lineID, userID string, qty int32) (domain.CartLine, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.CartLine{}, domain.ErrUserRequired
	}
	if err := domain.ValidateQuantity(qty); err != nil {
		return domain.CartLine{}, err
	}

	line, err := s.repo.SetQuantity(ctx, lineID, userID, qty, s.now())
	if err != nil {
		return domain.CartLine{}, err
	}

	s.afterMutation(ctx, opUpdate, userID)
	return line, nil
}

// RemoveItem удаляет строку владельца; чужая или отсутствующая строка — ErrCartLineNotFound.
func (s *Store) RemoveItem(ctx context.Context, lineID, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return domain.ErrUserRequired
	}
	if err := s.repo.Delete(ctx, lineID, userID); err != nil {
		return err
	}

	s.afterMutation(ctx, opRemove, userID)
	return nil
}

// Clear удаляет все строки пользователя. Пустая корзина не ошибка.
func (s *Store) Clear(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return domain.ErrUserRequired
	}
	if err := s.repo.DeleteAll(ctx, userID); err != nil {
		return err
	}

	s.afterMutation(ctx, opClear, userID)
	return nil
}

// Lines возвращает строки корзины без данных каталога.
func (s *Store) Lines(ctx context.Context, userID string) ([]domain.CartLine, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrUserRequired
	}
	return s.repo.ListByUser(ctx, userID)
}

// ListItems возвращает строки корзины с актуальными данными товара и ценой.
// Строки товаров, исчезнувших из каталога, пропускаются.
func (s *Store) ListItems(ctx context.Context, userID string) ([]domain.CartItemView, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrUserRequired
	}

	lines, err := s.cachedLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.CartItemView, 0, len(lines))
	for _, line := range lines {
		product, err := s.catalog.GetProduct(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				s.logger.WithFields(log.Fields{
					"user_id":    userID,
					"product_id": line.ProductID,
				}).Warn("cart line references unknown product")
				continue
			}
			return nil, err
		}
		views = append(views, domain.CartItemView{
			Line:      line,
			Product:   product.Ref(),
			UnitPrice: product.Price,
		})
	}
	return views, nil
}

// Invalidate сбрасывает кэш листинга пользователя; вызывается после оформления заказа.
func (s *Store) Invalidate(ctx context.Context, userID string) {
	s.genMu.Lock()
	s.cacheGen[genStripe(userID)]++
	s.genMu.Unlock()
	s.listGroup.Forget(userID)

	if err := s.cache.Delete(ctx, userID); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("failed to invalidate cart cache")
	}
}

// cachedLines читает листинг через кэш. Загрузка, во время которой корзину
// инвалидировали, в кэш не пишется.
func (s *Store) cachedLines(ctx context.Context, userID string) ([]domain.CartLine, error) {
	v, err, _ := s.listGroup.Do(userID, func() (interface{}, error) {
		// Загрузку разделяют все ожидающие, поэтому отмена первого вызывающего её не прерывает.
		loadCtx := context.WithoutCancel(ctx)

		lines, err := s.cache.Get(loadCtx, userID)
		if err == nil {
			s.metrics.RecordCacheHit()
			return lines, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.WithError(err).WithField("user_id", userID).Warn("cart cache read failed")
		}
		s.metrics.RecordCacheMiss()

		gen := s.generation(userID)
		lines, err = s.repo.ListByUser(loadCtx, userID)
		if err != nil {
			return nil, err
		}
		s.storeIfCurrent(loadCtx, userID, gen, lines)
		return lines, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.CartLine), nil
}

func (s *Store) generation(userID string) uint64 {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	return s.cacheGen[genStripe(userID)]
}

// storeIfCurrent пишет листинг в кэш, только если с момента чтения gen не было инвалидаций.
func (s *Store) storeIfCurrent(ctx context.Context, userID string, gen uint64, lines []domain.CartLine) {
	s.genMu.Lock()
	defer s.genMu.Unlock()

	if s.cacheGen[genStripe(userID)] != gen {
		s.logger.WithField("user_id", userID).Debug("cart changed during load, cache write skipped")
		return
	}
	if err := s.cache.Set(ctx, userID, lines); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("cart cache write failed")
	}
}

func genStripe(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32() % cacheGenStripes)
}

func (s *Store) afterMutation(ctx context.Context, op, userID string) {
	s.metrics.RecordCartOperation(op)
	s.Invalidate(ctx, userID)
}

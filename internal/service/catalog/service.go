// Package catalog управляет покупателями и товарами: создание, чтение
// через кеш и журнал движений остатков.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/vladislavdragonenkov/storefront/internal/cache"
	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
)

const (
	defaultMovementsLimit = 100
	// Загрузка товара в кеш не зависит от отмены вызвавшего её запроса.
	productLoadTimeout = 5 * time.Second
)

// Service обслуживает операции каталога.
type Service struct {
	tx    domain.TxManager
	repos domain.Repositories

	cache   cache.ProductCache
	group   singleflight.Group
	metrics *metrics.PlacementMetrics

	// gens растёт при каждом сбросе товара; загрузка, начатая до сброса,
	// не пишет свой результат в кеш.
	gensMu sync.Mutex
	gens   map[string]uint64

	logger  *log.Entry
	now     func() time.Time
	newID   func() string
}

// Option настраивает Service.
type Option func(*Service)

// WithLogger задаёт логгер.
func WithLogger(logger *log.Entry) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCache включает кеширование карточек товаров.
func WithCache(c cache.ProductCache) Option {
	return func(s *Service) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithMetrics учитывает обращения к кешу.
func WithMetrics(m *metrics.PlacementMetrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithIDGenerator подменяет генератор идентификаторов.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// New создаёт сервис. repos используются для чтения вне транзакций.
func New(tx domain.TxManager, repos domain.Repositories, opts ...Option) *Service {
	s := &Service{
		tx:     tx,
		repos:  repos,
		cache:  cache.Noop{},
		gens:   make(map[string]uint64),
		logger: log.NewEntry(log.StandardLogger()).WithField("component", "catalog"),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateCustomer регистрирует покупателя.
func (s *Service) CreateCustomer(ctx context.Context, name, email string) (domain.Customer, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" {
		return domain.Customer{}, domain.ErrNameRequired
	}
	if !strings.Contains(email, "@") {
		return domain.Customer{}, domain.ErrEmailInvalid
	}

	now := s.now().UTC()
	customer := domain.Customer{
		ID:        s.newID(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repos.Customers.Create(ctx, customer); err != nil {
		return domain.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	s.logger.WithField("customer_id", customer.ID).Info("customer created")
	return customer, nil
}

// GetCustomer возвращает покупателя по идентификатору.
func (s *Service) GetCustomer(ctx context.Context, id string) (domain.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Customer{}, domain.ErrCustomerRequired
	}
	return s.repos.Customers.FindByID(ctx, id)
}

// CreateProduct заводит товар с уникальным именем и начальным остатком.
// Начальный остаток фиксируется движением received в той же транзакции.
func (s *Service) CreateProduct(ctx context.Context, name string, price decimal.Decimal, quantity int64) (domain.Product, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return domain.Product{}, domain.ErrNameRequired
	case price.IsNegative():
		return domain.Product{}, domain.ErrPriceInvalid
	case quantity < 0:
		return domain.Product{}, domain.ErrStockInvalid
	}

	now := s.now().UTC()
	product := domain.Product{
		ID:        s.newID(),
		Name:      name,
		Price:     price,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		if _, err := repos.Products.FindByName(ctx, name); err == nil {
			return domain.ErrProductAlreadyExists
		} else if !errors.Is(err, domain.ErrProductNotFound) {
			return err
		}

		if err := repos.Products.Create(ctx, product); err != nil {
			return err
		}
		if quantity == 0 {
			return nil
		}
		return repos.Movements.Append(ctx, domain.StockMovement{
			ProductID: product.ID,
			Delta:     quantity,
			Balance:   quantity,
			Reason:    domain.MovementReasonReceived,
			Occurred:  now,
		})
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}

	s.logger.WithFields(log.Fields{
		"product_id": product.ID,
		"quantity":   quantity,
	}).Info("product created")
	return product, nil
}

// GetProduct читает товар через кеш. Одновременные промахи по одному
// товару сводятся к одному запросу в хранилище.
func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Product{}, domain.ErrProductIDRequired
	}

	product, ok, err := s.cache.Get(ctx, id)
	switch {
	case err != nil:
		s.observeCache(metrics.CacheError)
		s.logger.WithError(err).WithField("product_id", id).Warn("product cache read failed")
	case ok:
		s.observeCache(metrics.CacheHit)
		return product, nil
	default:
		s.observeCache(metrics.CacheMiss)
	}

	ch := s.group.DoChan(id, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), productLoadTimeout)
		defer cancel()
		return s.loadProduct(loadCtx, id)
	})
	select {
	case <-ctx.Done():
		return domain.Product{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return domain.Product{}, res.Err
		}
		return res.Val.(domain.Product), nil
	}
}

func (s *Service) loadProduct(ctx context.Context, id string) (domain.Product, error) {
	gen := s.generation(id)
	product, err := s.repos.Products.Get(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	if s.generation(id) != gen {
		return product, nil
	}

	logger := s.logger.WithField("product_id", id)
	if err := s.cache.Set(ctx, product); err != nil {
		logger.WithError(err).Warn("product cache write failed")
		return product, nil
	}
	// Сброс мог успеть между проверкой и записью.
	if s.generation(id) != gen {
		if err := s.cache.Delete(ctx, id); err != nil {
			logger.WithError(err).Warn("product cache delete failed")
		}
	}
	return product, nil
}

// InvalidateProducts сбрасывает карточки товаров после изменения остатков.
// Чтения, начатые раньше сброса, больше не попадут в кеш.
func (s *Service) InvalidateProducts(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	s.gensMu.Lock()
	for _, id := range ids {
		s.gens[id]++
		s.group.Forget(id)
	}
	s.gensMu.Unlock()

	return s.cache.Delete(ctx, ids...)
}

func (s *Service) generation(id string) uint64 {
	s.gensMu.Lock()
	defer s.gensMu.Unlock()
	return s.gens[id]
}

// ListStockMovements возвращает движения остатка товара, новые первыми.
func (s *Service) ListStockMovements(ctx context.Context, productID string, limit int) ([]domain.StockMovement, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, domain.ErrProductIDRequired
	}
	if limit <= 0 {
		limit = defaultMovementsLimit
	}

	if _, err := s.repos.Products.Get(ctx, productID); err != nil {
		return nil, err
	}
	return s.repos.Movements.ListByProduct(ctx, productID, limit)
}

func (s *Service) observeCache(result string) {
	if s.metrics != nil {
		s.metrics.CacheLookup(result)
	}
}

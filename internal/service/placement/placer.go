// Package placement реализует размещение заказа: проверку покупателя и
// товаров, списание остатков и сохранение заказа в одной транзакции.
package placement

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
)

// Request — входные данные размещения.
type Request struct {
	CustomerID string
	Products   []domain.StockRequest
}

// ProductInvalidator сбрасывает закешированные карточки товаров после списания.
type ProductInvalidator interface {
	InvalidateProducts(ctx context.Context, ids ...string) error
}

// Placer размещает заказы поверх менеджера транзакций хранилища.
type Placer struct {
	tx          domain.TxManager
	logger      *log.Entry
	metrics     *metrics.PlacementMetrics
	invalidator ProductInvalidator
	now         func() time.Time
	newID       func() string
}

// Option настраивает Placer.
type Option func(*Placer)

// WithLogger задаёт логгер.
func WithLogger(logger *log.Entry) Option {
	return func(p *Placer) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetrics включает метрики размещения.
func WithMetrics(m *metrics.PlacementMetrics) Option {
	return func(p *Placer) {
		p.metrics = m
	}
}

// WithProductInvalidator задаёт получателя сброса карточек списанных товаров.
func WithProductInvalidator(inv ProductInvalidator) Option {
	return func(p *Placer) {
		p.invalidator = inv
	}
}

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) Option {
	return func(p *Placer) {
		if now != nil {
			p.now = now
		}
	}
}

// WithIDGenerator подменяет генератор идентификаторов заказов и позиций.
func WithIDGenerator(gen func() string) Option {
	return func(p *Placer) {
		if gen != nil {
			p.newID = gen
		}
	}
}

// New создаёт Placer.
func New(tx domain.TxManager, opts ...Option) *Placer {
	p := &Placer{
		tx:     tx,
		logger: log.NewEntry(log.StandardLogger()).WithField("component", "order-placer"),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Place валидирует запрос и размещает заказ. Любая ошибка после начала
// транзакции откатывает списание остатков.
func (p *Placer) Place(ctx context.Context, req Request) (order domain.Order, err error) {
	started := time.Now()
	if p.metrics != nil {
		p.metrics.PlacementStarted()
		defer func() {
			p.metrics.PlacementFinished(resultLabel(err), time.Since(started))
		}()
	}

	req, err = normalize(req)
	if err != nil {
		p.logFailure(req, err)
		return domain.Order{}, fmt.Errorf("place order: %w", err)
	}

	err = p.tx.WithinTx(ctx, func(ctx context.Context, repos domain.Repositories) error {
		placed, err := p.placeWithin(ctx, repos, req)
		if err != nil {
			return err
		}
		order = placed
		return nil
	})
	if err != nil {
		p.logFailure(req, err)
		return domain.Order{}, fmt.Errorf("place order: %w", err)
	}

	ids := domain.StockRequestIDs(req.Products)
	if p.invalidator != nil {
		if cacheErr := p.invalidator.InvalidateProducts(ctx, ids...); cacheErr != nil {
			p.logger.WithError(cacheErr).WithField("product_ids", ids).Warn("failed to invalidate product cache")
		}
	}
	if p.metrics != nil {
		var units int64
		for _, line := range order.Products {
			units += line.Quantity
		}
		p.metrics.OrderPlaced(len(order.Products), units)
	}

	p.logger.WithFields(log.Fields{
		"order_id":    order.ID,
		"customer_id": order.CustomerID,
		"lines":       len(order.Products),
		"total":       order.Total.String(),
	}).Info("order placed")

	return order, nil
}

func (p *Placer) placeWithin(ctx context.Context, repos domain.Repositories, req Request) (domain.Order, error) {
	if _, err := repos.Customers.FindByID(ctx, req.CustomerID); err != nil {
		return domain.Order{}, err
	}

	ids := domain.StockRequestIDs(req.Products)
	found, err := repos.Products.FindAllByID(ctx, ids)
	if err != nil {
		return domain.Order{}, err
	}
	byID := make(map[string]domain.Product, len(found))
	for _, product := range found {
		byID[product.ID] = product
	}

	if len(byID) != len(ids) {
		missing := make([]string, 0, len(ids)-len(byID))
		for _, id := range ids {
			if _, ok := byID[id]; !ok {
				missing = append(missing, id)
			}
		}
		return domain.Order{}, domain.NewStockError(domain.ErrProductNotFound, missing)
	}

	var short []string
	for _, line := range req.Products {
		if line.Quantity > byID[line.ProductID].Quantity {
			short = append(short, line.ProductID)
		}
	}
	if len(short) > 0 {
		return domain.Order{}, domain.NewStockError(domain.ErrInsufficientStock, short)
	}

	updated, err := repos.Products.UpdateQuantity(ctx, req.Products)
	if err != nil {
		return domain.Order{}, err
	}

	now := p.now().UTC()
	order := domain.Order{
		ID:         p.newID(),
		CustomerID: req.CustomerID,
		Products:   buildLines(req.Products, byID, now, p.newID),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	order.Total = domain.LinesTotal(order.Products)

	if err := repos.Orders.Create(ctx, order); err != nil {
		return domain.Order{}, err
	}
	if err := repos.Movements.Append(ctx, movementsFor(order, updated)...); err != nil {
		return domain.Order{}, err
	}

	msg, err := domain.NewOrderPlacedMessage(order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("encode order placed event: %w", err)
	}
	if _, err := repos.Outbox.Enqueue(ctx, msg); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// buildLines снимает цены с товаров, прочитанных до списания.
// Товар, пропавший из выборки, получает нулевую цену.
func buildLines(reqs []domain.StockRequest, byID map[string]domain.Product, now time.Time, newID func() string) []domain.OrderProduct {
	lines := make([]domain.OrderProduct, 0, len(reqs))
	for _, req := range reqs {
		price := decimal.Zero
		if product, ok := byID[req.ProductID]; ok {
			price = product.Price
		}
		lines = append(lines, domain.OrderProduct{
			ID:        newID(),
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			Price:     price,
			CreatedAt: now,
		})
	}
	return lines
}

func movementsFor(order domain.Order, updated []domain.Product) []domain.StockMovement {
	balances := make(map[string]int64, len(updated))
	for _, product := range updated {
		balances[product.ID] = product.Quantity
	}

	movements := make([]domain.StockMovement, 0, len(order.Products))
	for _, line := range order.Products {
		movements = append(movements, domain.StockMovement{
			ProductID: line.ProductID,
			OrderID:   order.ID,
			Delta:     -line.Quantity,
			Balance:   balances[line.ProductID],
			Reason:    domain.MovementReasonOrderPlaced,
			Occurred:  order.CreatedAt,
		})
	}
	return movements
}

// normalize проверяет запрос до обращения к хранилищу.
func normalize(req Request) (Request, error) {
	req.CustomerID = strings.TrimSpace(req.CustomerID)
	if req.CustomerID == "" {
		return req, domain.ErrCustomerRequired
	}
	if len(req.Products) == 0 {
		return req, domain.ErrProductsRequired
	}

	lines := make([]domain.StockRequest, 0, len(req.Products))
	seen := make(map[string]struct{}, len(req.Products))
	for _, line := range req.Products {
		line.ProductID = strings.TrimSpace(line.ProductID)
		if line.ProductID == "" {
			return req, domain.ErrProductIDRequired
		}
		if line.Quantity <= 0 {
			return req, fmt.Errorf("%w: product %s", domain.ErrQuantityInvalid, line.ProductID)
		}
		if _, dup := seen[line.ProductID]; dup {
			return req, fmt.Errorf("%w: %s", domain.ErrDuplicateProduct, line.ProductID)
		}
		seen[line.ProductID] = struct{}{}
		lines = append(lines, line)
	}
	req.Products = lines
	return req, nil
}

func (p *Placer) logFailure(req Request, err error) {
	kind := domain.KindOf(err)
	entry := p.logger.WithError(err).WithFields(log.Fields{
		"customer_id": req.CustomerID,
		"error_kind":  string(kind),
	})
	if ids := domain.ProductIDsOf(err); len(ids) > 0 {
		entry = entry.WithField("product_ids", ids)
	}

	if kind == domain.ErrorKindPersistence && !errors.Is(err, context.Canceled) {
		entry.Error("order placement failed")
		return
	}
	entry.Warn("order placement rejected")
}

func resultLabel(err error) string {
	if err == nil {
		return metrics.ResultPlaced
	}
	return string(domain.KindOf(err))
}

package memory

import (
	"context"
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Store — in-memory хранилище витрины для локальной разработки и тестов.
//
// Все репозитории работают поверх одного набора данных. WithinTx выполняет
// функцию на копии набора и подменяет оригинал только при успехе, поэтому
// ошибка внутри транзакции откатывает все изменения.
type Store struct {
	mu   sync.RWMutex
	data *dataset
}

// NewStore создаёт пустое хранилище.
func NewStore() *Store {
	return &Store{data: newDataset()}
}

type dataset struct {
	customers map[string]domain.Customer
	products  map[string]domain.Product
	orders    map[string]domain.Order
	movements map[string][]domain.StockMovement
	outbox    map[string]outboxRecord
	outboxSeq int64
}

func newDataset() *dataset {
	return &dataset{
		customers: make(map[string]domain.Customer),
		products:  make(map[string]domain.Product),
		orders:    make(map[string]domain.Order),
		movements: make(map[string][]domain.StockMovement),
		outbox:    make(map[string]outboxRecord),
	}
}

func (d *dataset) clone() *dataset {
	cp := newDataset()
	for id, customer := range d.customers {
		cp.customers[id] = customer
	}
	for id, product := range d.products {
		cp.products[id] = product
	}
	for id, order := range d.orders {
		cp.orders[id] = order.Clone()
	}
	for id, movements := range d.movements {
		cp.movements[id] = append([]domain.StockMovement(nil), movements...)
	}
	for id, rec := range d.outbox {
		rec.msg.Payload = append([]byte(nil), rec.msg.Payload...)
		cp.outbox[id] = rec
	}
	cp.outboxSeq = d.outboxSeq
	return cp
}

// scope связывает репозиторий либо с общим набором данных, либо с черновиком транзакции.
type scope struct {
	store *Store
	// tx не nil внутри WithinTx: блокировка уже удерживается транзакцией.
	tx *dataset
}

func (s scope) read(fn func(d *dataset) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return fn(s.store.data)
}

// write требует от fn не оставлять частичных изменений при ошибке.
func (s scope) write(fn func(d *dataset) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return fn(s.store.data)
}

// Repositories возвращает репозитории вне транзакции.
func (s *Store) Repositories() domain.Repositories {
	return repositories(scope{store: s})
}

// WithinTx выполняет fn атомарно. Транзакции сериализуются общей блокировкой;
// репозитории вне транзакции нельзя вызывать из fn.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos domain.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.data.clone()
	if err := fn(ctx, repositories(scope{store: s, tx: draft})); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.data = draft
	return nil
}

func repositories(sc scope) domain.Repositories {
	return domain.Repositories{
		Customers: &customerRepository{scope: sc},
		Products:  &productRepository{scope: sc},
		Orders:    &orderRepository{scope: sc},
		Movements: &stockMovementRepository{scope: sc},
		Outbox:    &outboxRepository{scope: sc},
	}
}

var _ domain.TxManager = (*Store)(nil)

package domain

import (
	"context"
	"time"
)

// CustomerRepository описывает хранилище клиентов.
type CustomerRepository interface {
	// Create сохраняет клиента; ErrCustomerAlreadyExists, если ID занят.
	Create(ctx context.Context, customer Customer) error
	// FindByID возвращает клиента или ErrCustomerNotFound.
	FindByID(ctx context.Context, id string) (Customer, error)
}

// ProductRepository — складской реестр товаров.
type ProductRepository interface {
	// Create добавляет товар; ErrProductAlreadyExists при совпадении ID или имени.
	Create(ctx context.Context, product Product) error
	// Get возвращает товар или ErrProductNotFound.
	Get(ctx context.Context, id string) (Product, error)
	// FindByName ищет товар по точному имени.
	FindByName(ctx context.Context, name string) (Product, error)
	// FindAllByID возвращает найденные товары, не более одного на каждый ID.
	// Отсутствующие ID ошибкой не считаются: количество сверяет вызывающая сторона.
	// Внутри транзакции строки блокируются до её завершения.
	FindAllByID(ctx context.Context, ids []string) ([]Product, error)
	// UpdateQuantity списывает запрошенные количества одной атомарной операцией.
	// Если хотя бы один товар не найден или остатка не хватает, ничего не меняется.
	UpdateQuantity(ctx context.Context, reqs []StockRequest) ([]Product, error)
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет новый заказ. Возвращает ошибку, если запись с таким ID уже существует.
	Create(ctx context.Context, order Order) error
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(ctx context.Context, id string) (Order, error)
	// ListByCustomer возвращает заказы клиента с опциональным ограничением на количество.
	ListByCustomer(ctx context.Context, customerID string, limit int) ([]Order, error)
}

// StockMovementRepository хранит журнал изменений остатков.
type StockMovementRepository interface {
	Append(ctx context.Context, movements ...StockMovement) error
	ListByProduct(ctx context.Context, productID string, limit int) ([]StockMovement, error)
}

// OutboxPublisher публикует события из transactional outbox.
type OutboxPublisher interface {
	// Publish передаёт событие наружу; должен быть идемпотентным.
	Publish(ctx context.Context, event OutboxMessage) error
}

// OutboxRepository позволяет сохранять события для последующей публикации.
type OutboxRepository interface {
	Enqueue(ctx context.Context, msg OutboxMessage) (OutboxMessage, error)
	PullPending(ctx context.Context, limit int) ([]OutboxMessage, error)
	Stats(ctx context.Context) (OutboxStats, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
}

// IdempotencyRepository хранит состояние обработки запросов по idempotency-key.
type IdempotencyRepository interface {
	CreateProcessing(ctx context.Context, key, requestHash string, ttlAt time.Time) (IdempotencyRecord, error)
	Get(ctx context.Context, key string) (IdempotencyRecord, error)
	MarkDone(ctx context.Context, key string, responseBody []byte, responseCode int) error
	MarkFailed(ctx context.Context, key string, responseBody []byte, responseCode int) error
	DeleteExpired(ctx context.Context, before time.Time, limit int) (int, error)
	// Release удаляет ключ в статусе processing, чтобы запрос можно было повторить.
	Release(ctx context.Context, key string) error
}

// Repositories — набор репозиториев, доступных внутри одной транзакции.
type Repositories struct {
	Customers CustomerRepository
	Products  ProductRepository
	Orders    OrderRepository
	Movements StockMovementRepository
	Outbox    OutboxRepository
}

// TxManager выполняет fn в одной транзакции: при ошибке все изменения откатываются.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

// OutboxMessage хранит данные для публикуемого события.
type OutboxMessage struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

// OutboxStats описывает текущее состояние backlog transactional outbox.
type OutboxStats struct {
	PendingCount    int
	OldestPendingAt time.Time
}

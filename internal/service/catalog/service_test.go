package catalog_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/cache"
	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
	"github.com/vladislavdragonenkov/storefront/internal/service/catalog"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func newService(opts ...catalog.Option) (*catalog.Service, *memory.Store) {
	store := memory.NewStore()
	return catalog.New(store, store.Repositories(), opts...), store
}

func TestCreateCustomer(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	customer, err := svc.CreateCustomer(ctx, " Alice ", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, customer.ID)
	require.Equal(t, "Alice", customer.Name)

	got, err := svc.GetCustomer(ctx, customer.ID)
	require.NoError(t, err)
	require.Equal(t, customer.Email, got.Email)

	_, err = svc.GetCustomer(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCreateCustomer_Validation(t *testing.T) {
	tests := []struct {
		name, customer, email string
		wantErr               error
	}{
		{name: "empty name", customer: " ", email: "a@b.c", wantErr: domain.ErrNameRequired},
		{name: "bad email", customer: "Bob", email: "bob.example.com", wantErr: domain.ErrEmailInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService()
			_, err := svc.CreateCustomer(context.Background(), tt.customer, tt.email)
			require.ErrorIs(t, err, tt.wantErr)
			require.Equal(t, domain.ErrorKindInvalidInput, domain.KindOf(err))
		})
	}
}

func TestCreateProduct(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, "Widget", decimal.RequireFromString("5.00"), 10)
	require.NoError(t, err)
	require.EqualValues(t, 10, product.Quantity)

	movements, err := svc.ListStockMovements(ctx, product.ID, 0)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	require.Equal(t, domain.MovementReasonReceived, movements[0].Reason)
	require.EqualValues(t, 10, movements[0].Delta)

	_, err = svc.CreateProduct(ctx, "Widget", decimal.RequireFromString("1"), 1)
	require.ErrorIs(t, err, domain.ErrProductAlreadyExists)
	require.Equal(t, domain.ErrorKindConflict, domain.KindOf(err))

	empty, err := svc.CreateProduct(ctx, "Gadget", decimal.Zero, 0)
	require.NoError(t, err)
	movements, err = svc.ListStockMovements(ctx, empty.ID, 10)
	require.NoError(t, err)
	require.Empty(t, movements)
}

func TestCreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name     string
		product  string
		price    string
		quantity int64
		wantErr  error
	}{
		{name: "empty name", product: "", price: "1", quantity: 1, wantErr: domain.ErrNameRequired},
		{name: "negative price", product: "A", price: "-0.01", quantity: 1, wantErr: domain.ErrPriceInvalid},
		{name: "negative stock", product: "A", price: "1", quantity: -1, wantErr: domain.ErrStockInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService()
			_, err := svc.CreateProduct(context.Background(), tt.product, decimal.RequireFromString(tt.price), tt.quantity)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListStockMovements_UnknownProduct(t *testing.T) {
	svc, _ := newService()

	_, err := svc.ListStockMovements(context.Background(), "P9", 10)
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = svc.ListStockMovements(context.Background(), " ", 10)
	require.ErrorIs(t, err, domain.ErrProductIDRequired)
}

// memoryCache — потокобезопасный кеш для проверки cache-aside.
type memoryCache struct {
	mu      sync.Mutex
	items   map[string]domain.Product
	failGet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string]domain.Product)}
}

func (c *memoryCache) Get(_ context.Context, id string) (domain.Product, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return domain.Product{}, false, errors.New("cache down")
	}
	p, ok := c.items[id]
	return p, ok, nil
}

func (c *memoryCache) Set(_ context.Context, p domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[p.ID] = p
	return nil
}

func (c *memoryCache) Delete(_ context.Context, ids ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range ids {
		delete(c.items, id)
	}
	return nil
}

var _ cache.ProductCache = (*memoryCache)(nil)

func TestGetProduct_CacheAside(t *testing.T) {
	c := newMemoryCache()
	svc, store := newService(
		catalog.WithCache(c),
		catalog.WithMetrics(metrics.NewPlacementMetricsWithRegisterer(prometheus.NewRegistry())),
	)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, "Widget", decimal.RequireFromString("5.00"), 10)
	require.NoError(t, err)

	got, err := svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, product.ID, got.ID)

	cached, ok, err := c.Get(ctx, product.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 10, cached.Quantity)

	// Изменение в хранилище не видно, пока запись кеша не удалена.
	_, err = memory.NewProductRepository(store).UpdateQuantity(ctx, []domain.StockRequest{{ProductID: product.ID, Quantity: 4}})
	require.NoError(t, err)
	got, err = svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	require.EqualValues(t, 10, got.Quantity)

	require.NoError(t, c.Delete(ctx, product.ID))
	got, err = svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	require.EqualValues(t, 6, got.Quantity)

	_, err = svc.GetProduct(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetProduct_CacheFailureFallsBackToStore(t *testing.T) {
	c := newMemoryCache()
	c.failGet = true
	svc, _ := newService(catalog.WithCache(c))
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, "Widget", decimal.RequireFromString("5.00"), 10)
	require.NoError(t, err)

	got, err := svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, product.ID, got.ID)
}

// countingProducts считает чтения товара из хранилища.
type countingProducts struct {
	domain.ProductRepository
	gets  atomic.Int32
	delay time.Duration
}

func (c *countingProducts) Get(ctx context.Context, id string) (domain.Product, error) {
	c.gets.Add(1)
	time.Sleep(c.delay)
	return c.ProductRepository.Get(ctx, id)
}

func TestGetProduct_CollapsesConcurrentMisses(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	seed := catalog.New(store, store.Repositories())
	product, err := seed.CreateProduct(ctx, "Widget", decimal.RequireFromString("5.00"), 10)
	require.NoError(t, err)

	repos := store.Repositories()
	counting := &countingProducts{ProductRepository: repos.Products, delay: 50 * time.Millisecond}
	repos.Products = counting
	svc := catalog.New(store, repos, catalog.WithCache(newMemoryCache()))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.GetProduct(ctx, product.ID); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	require.Less(t, counting.gets.Load(), int32(10))
}

// gatedProducts задерживает первое чтение товара уже после похода в
// хранилище, пока тест не откроет gate.
type gatedProducts struct {
	domain.ProductRepository
	calls   atomic.Int32
	started chan struct{}
	gate    chan struct{}
}

func newGatedProducts(inner domain.ProductRepository) *gatedProducts {
	return &gatedProducts{ProductRepository: inner, started: make(chan struct{}), gate: make(chan struct{})}
}

func (g *gatedProducts) Get(ctx context.Context, id string) (domain.Product, error) {
	product, err := g.ProductRepository.Get(ctx, id)
	if g.calls.Add(1) == 1 {
		close(g.started)
		<-g.gate
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return domain.Product{}, ctxErr
	}
	return product, err
}

func TestGetProduct_InvalidationDuringLoadSkipsStaleWrite(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	product, err := catalog.New(store, store.Repositories()).CreateProduct(ctx, "Widget", decimal.RequireFromString("5.00"), 10)
	require.NoError(t, err)

	repos := store.Repositories()
	gated := newGatedProducts(repos.Products)
	repos.Products = gated
	c := newMemoryCache()
	svc := catalog.New(store, repos, catalog.WithCache(c))

	done := make(chan domain.Product, 1)
	go func() {
		got, err := svc.GetProduct(ctx, product.ID)
		if err != nil {
			t.Error(err)
		}
		done <- got
	}()
	<-gated.started

	// Списание фиксируется, пока чтение держит старый остаток.
	_, err = memory.NewProductRepository(store).UpdateQuantity(ctx, []domain.StockRequest{{ProductID: product.ID, Quantity: 4}})
	require.NoError(t, err)
	require.NoError(t, svc.InvalidateProducts(ctx, product.ID))
	close(gated.gate)

	stale := <-done
	require.EqualValues(t, 10, stale.Quantity)

	_, ok, err := c.Get(ctx, product.ID)
	require.NoError(t, err)
	require.False(t, ok, "stale product must not be cached")

	got, err := svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	require.EqualValues(t, 6, got.Quantity)
}

func TestGetProduct_CanceledCallerDoesNotFailSharedLoad(t *testing.T) {
	store := memory.NewStore()
	product, err := catalog.New(store, store.Repositories()).CreateProduct(context.Background(), "Widget", decimal.RequireFromString("5.00"), 10)
	require.NoError(t, err)

	repos := store.Repositories()
	gated := newGatedProducts(repos.Products)
	repos.Products = gated
	c := newMemoryCache()
	svc := catalog.New(store, repos, catalog.WithCache(c))

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.GetProduct(first, product.ID)
		firstErr <- err
	}()
	<-gated.started

	type result struct {
		product domain.Product
		err     error
	}
	second := make(chan result, 1)
	go func() {
		got, err := svc.GetProduct(context.Background(), product.ID)
		second <- result{got, err}
	}()

	// Отменённый вызов возвращается сразу, не дожидаясь загрузки.
	cancel()
	select {
	case err := <-firstErr:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("canceled caller is still waiting for the shared load")
	}

	close(gated.gate)
	res := <-second
	require.NoError(t, res.err)
	require.EqualValues(t, 10, res.product.Quantity)

	_, ok, err := c.Get(context.Background(), product.ID)
	require.NoError(t, err)
	require.True(t, ok)
}

package integration

import (
	"context"
	"encoding/json"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
	"github.com/vladislavdragonenkov/storefront/internal/service/catalog"
	grpcsvc "github.com/vladislavdragonenkov/storefront/internal/service/grpc"
	"github.com/vladislavdragonenkov/storefront/internal/service/outbox"
	"github.com/vladislavdragonenkov/storefront/internal/service/placement"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
	storefrontv1 "github.com/vladislavdragonenkov/storefront/proto/storefront/v1"
)

type capturePublisher struct {
	mu     sync.Mutex
	events []domain.OutboxMessage
}

func (p *capturePublisher) Publish(_ context.Context, event domain.OutboxMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturePublisher) snapshot() []domain.OutboxMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.OutboxMessage(nil), p.events...)
}

// OrderLifecycleTestSuite проверяет размещение заказов end-to-end:
// gRPC поверх bufconn, in-memory хранилище и outbox worker.
type OrderLifecycleTestSuite struct {
	suite.Suite

	client    storefrontv1.StorefrontServiceClient
	server    *grpc.Server
	conn      *grpc.ClientConn
	worker    *outbox.Worker
	publisher *capturePublisher
}

func (s *OrderLifecycleTestSuite) SetupTest() {
	baseLogger := log.New()
	baseLogger.SetLevel(log.WarnLevel)
	logger := baseLogger.WithField("component", "integration-test")

	store := memory.NewStore()
	repos := store.Repositories()
	registry := prometheus.NewRegistry()

	placer := placement.New(store,
		placement.WithLogger(logger),
		placement.WithMetrics(metrics.NewPlacementMetricsWithRegisterer(registry)),
	)
	service := grpcsvc.NewStorefrontService(
		catalog.New(store, repos, catalog.WithLogger(logger)),
		placer,
		repos.Orders,
		grpcsvc.WithIdempotency(memory.NewIdempotencyRepository(), time.Hour),
		grpcsvc.WithLogger(logger),
	)

	s.publisher = &capturePublisher{}
	s.worker = outbox.NewWorker(repos.Outbox, s.publisher,
		outbox.WithLogger(logger),
		outbox.WithMetrics(metrics.NewOutboxMetricsWithRegisterer(registry)),
	)

	listener := bufconn.Listen(1024 * 1024)
	s.server = grpc.NewServer()
	storefrontv1.RegisterStorefrontServiceServer(s.server, service)
	go func() { _ = s.server.Serve(listener) }()

	dialer := func(context.Context, string) (net.Conn, error) { return listener.Dial() }
	//nolint:staticcheck // grpc.Dial is required for bufconn testing
	conn, err := grpc.Dial("bufnet", grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	s.Require().NoError(err)
	s.conn = conn
	s.client = storefrontv1.NewStorefrontServiceClient(conn)
}

func (s *OrderLifecycleTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
}

func (s *OrderLifecycleTestSuite) seed(stock int64, price string) (customerID, productID string) {
	ctx := context.Background()
	customer, err := s.client.CreateCustomer(ctx, &storefrontv1.CreateCustomerRequest{Name: "Alice", Email: "alice@example.com"})
	s.Require().NoError(err)
	product, err := s.client.CreateProduct(ctx, &storefrontv1.CreateProductRequest{Name: "Widget-" + price, Price: price, Quantity: stock})
	s.Require().NoError(err)
	return customer.GetCustomer().GetId(), product.GetProduct().GetId()
}

func (s *OrderLifecycleTestSuite) place(ctx context.Context, customerID string, lines ...*storefrontv1.ProductQuantity) (*storefrontv1.Order, error) {
	resp, err := s.client.PlaceOrder(ctx, &storefrontv1.PlaceOrderRequest{CustomerId: customerID, Products: lines})
	return resp.GetOrder(), err
}

func (s *OrderLifecycleTestSuite) stock(productID string) int64 {
	resp, err := s.client.GetProduct(context.Background(), &storefrontv1.GetProductRequest{ProductId: productID})
	s.Require().NoError(err)
	return resp.GetProduct().GetQuantity()
}

func (s *OrderLifecycleTestSuite) TestPlaceOrderPublishesEvent() {
	customerID, productID := s.seed(5, "12.50")

	order, err := s.place(context.Background(), customerID, &storefrontv1.ProductQuantity{ProductId: productID, Quantity: 2})
	s.Require().NoError(err)
	s.Equal("25.00", order.GetTotal())
	s.Equal(int64(3), s.stock(productID))

	s.Equal(1, s.worker.ProcessOnce(context.Background()))
	events := s.publisher.snapshot()
	s.Require().Len(events, 1)
	s.Equal(domain.EventTypeOrderPlaced, events[0].EventType)
	s.Equal(order.GetId(), events[0].AggregateID)

	var payload domain.OrderPlacedEvent
	s.Require().NoError(json.Unmarshal(events[0].Payload, &payload))
	s.Equal(order.GetId(), payload.OrderID)
	s.Equal(customerID, payload.CustomerID)
	s.Require().Len(payload.Lines, 1)
	s.Equal(int64(2), payload.Lines[0].Quantity)

	s.Zero(s.worker.ProcessOnce(context.Background()), "sent events are not published twice")
}

func (s *OrderLifecycleTestSuite) TestInsufficientStockLeavesNoTrace() {
	customerID, productID := s.seed(1, "3.00")

	_, err := s.place(context.Background(), customerID, &storefrontv1.ProductQuantity{ProductId: productID, Quantity: 2})
	s.Equal(codes.FailedPrecondition, status.Code(err))

	info, ok := grpcsvc.ErrorInfoOf(err)
	s.Require().True(ok)
	s.Equal(grpcsvc.ReasonInsufficientStock, info.GetReason())

	s.Equal(int64(1), s.stock(productID))
	list, err := s.client.ListOrders(context.Background(), &storefrontv1.ListOrdersRequest{CustomerId: customerID})
	s.Require().NoError(err)
	s.Empty(list.GetOrders())
	s.Zero(s.worker.ProcessOnce(context.Background()))
}

func (s *OrderLifecycleTestSuite) TestMultiLineOrderIsAllOrNothing() {
	customerID, first := s.seed(10, "1.00")
	_, second := s.seed(1, "2.00")

	_, err := s.place(context.Background(), customerID,
		&storefrontv1.ProductQuantity{ProductId: first, Quantity: 4},
		&storefrontv1.ProductQuantity{ProductId: second, Quantity: 5},
	)
	s.Equal(codes.FailedPrecondition, status.Code(err))
	s.Equal(int64(10), s.stock(first))
	s.Equal(int64(1), s.stock(second))

	order, err := s.place(context.Background(), customerID,
		&storefrontv1.ProductQuantity{ProductId: first, Quantity: 4},
		&storefrontv1.ProductQuantity{ProductId: second, Quantity: 1},
	)
	s.Require().NoError(err)
	s.Equal("6.00", order.GetTotal())
	s.Equal(int64(6), s.stock(first))
	s.Zero(s.stock(second))
}

func (s *OrderLifecycleTestSuite) TestIdempotentRetryReturnsSameOrder() {
	customerID, productID := s.seed(4, "7.00")
	ctx := metadata.AppendToOutgoingContext(context.Background(), grpcsvc.IdempotencyKeyHeader, "checkout-1")
	line := &storefrontv1.ProductQuantity{ProductId: productID, Quantity: 1}

	first, err := s.place(ctx, customerID, line)
	s.Require().NoError(err)
	second, err := s.place(ctx, customerID, line)
	s.Require().NoError(err)

	s.Equal(first.GetId(), second.GetId())
	s.Equal(int64(3), s.stock(productID))
	s.Equal(1, s.worker.ProcessOnce(context.Background()))

	_, err = s.place(ctx, customerID, &storefrontv1.ProductQuantity{ProductId: productID, Quantity: 2})
	s.Equal(codes.FailedPrecondition, status.Code(err))
	info, ok := grpcsvc.ErrorInfoOf(err)
	s.Require().True(ok)
	s.Equal(grpcsvc.ReasonIdempotencyReused, info.GetReason())
}

func (s *OrderLifecycleTestSuite) TestConcurrentOrdersNeverOversell() {
	const stock, buyers = 10, 25
	customerID, productID := s.seed(stock, "1.00")

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		placed   int
		rejected int
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.place(context.Background(), customerID, &storefrontv1.ProductQuantity{ProductId: productID, Quantity: 1})
			mu.Lock()
			defer mu.Unlock()
			switch status.Code(err) {
			case codes.OK:
				placed++
			case codes.FailedPrecondition:
				rejected++
			}
		}()
	}
	wg.Wait()

	s.Equal(stock, placed)
	s.Equal(buyers-stock, rejected)
	s.Zero(s.stock(productID))
	s.Equal(stock, s.worker.ProcessOnce(context.Background()))
}

func (s *OrderLifecycleTestSuite) TestStockMovementsFollowOrders() {
	customerID, productID := s.seed(6, "2.00")
	for i := 0; i < 2; i++ {
		_, err := s.place(context.Background(), customerID, &storefrontv1.ProductQuantity{ProductId: productID, Quantity: 2})
		s.Require().NoError(err)
	}

	resp, err := s.client.ListStockMovements(context.Background(), &storefrontv1.ListStockMovementsRequest{ProductId: productID})
	s.Require().NoError(err)
	s.Require().Len(resp.GetMovements(), 3)

	var total int64
	for _, m := range resp.GetMovements() {
		total += m.GetDelta()
	}
	s.Equal(int64(2), total)
	s.Equal(total, s.stock(productID))
}

func TestOrderLifecycleSuite(t *testing.T) {
	suite.Run(t, new(OrderLifecycleTestSuite))
}

package grpcsvc

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/catalog"
	"github.com/vladislavdragonenkov/storefront/internal/service/placement"
	storefrontv1 "github.com/vladislavdragonenkov/storefront/proto/storefront/v1"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
	priceScale      = 2
)

// StorefrontService реализует gRPC API витрины поверх каталога и размещения заказов.
type StorefrontService struct {
	storefrontv1.UnimplementedStorefrontServiceServer

	catalog  *catalog.Service
	placer   *placement.Placer
	orders   domain.OrderRepository
	idemRepo domain.IdempotencyRepository
	idemTTL  time.Duration
	logger   *log.Entry
}

// Option настраивает StorefrontService.
type Option func(*StorefrontService)

// WithIdempotency включает обработку заголовка idempotency-key.
func WithIdempotency(repo domain.IdempotencyRepository, ttl time.Duration) Option {
	return func(s *StorefrontService) {
		s.idemRepo = repo
		if ttl > 0 {
			s.idemTTL = ttl
		}
	}
}

// WithLogger задаёт логгер.
func WithLogger(logger *log.Entry) Option {
	return func(s *StorefrontService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStorefrontService конструирует сервис с зависимостями.
func NewStorefrontService(catalogSvc *catalog.Service, placer *placement.Placer, orders domain.OrderRepository, opts ...Option) *StorefrontService {
	s := &StorefrontService{
		catalog: catalogSvc,
		placer:  placer,
		orders:  orders,
		idemTTL: defaultIdempotencyTTL,
		logger:  log.NewEntry(log.StandardLogger()).WithField("component", "storefront-grpc"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateCustomer регистрирует покупателя.
func (s *StorefrontService) CreateCustomer(ctx context.Context, req *storefrontv1.CreateCustomerRequest) (*storefrontv1.CreateCustomerResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	customer, err := s.catalog.CreateCustomer(ctx, req.GetName(), req.GetEmail())
	if err != nil {
		return nil, s.toStatus(ctx, "CreateCustomer", err)
	}
	return &storefrontv1.CreateCustomerResponse{Customer: toProtoCustomer(customer)}, nil
}

// GetCustomer возвращает покупателя.
func (s *StorefrontService) GetCustomer(ctx context.Context, req *storefrontv1.GetCustomerRequest) (*storefrontv1.GetCustomerResponse, error) {
	if req == nil || strings.TrimSpace(req.GetCustomerId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "customer_id is required")
	}

	customer, err := s.catalog.GetCustomer(ctx, req.GetCustomerId())
	if err != nil {
		return nil, s.toStatus(ctx, "GetCustomer", err)
	}
	return &storefrontv1.GetCustomerResponse{Customer: toProtoCustomer(customer)}, nil
}

// CreateProduct заводит товар. Повтор с тем же idempotency-key возвращает сохранённый ответ.
func (s *StorefrontService) CreateProduct(ctx context.Context, req *storefrontv1.CreateProductRequest) (*storefrontv1.CreateProductResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return withIdempotency(
		s,
		ctx,
		storefrontv1.StorefrontService_CreateProduct_FullMethodName,
		req,
		func() *storefrontv1.CreateProductResponse { return &storefrontv1.CreateProductResponse{} },
		func(ctx context.Context) (*storefrontv1.CreateProductResponse, error) {
			price, err := parsePrice(req.GetPrice())
			if err != nil {
				return nil, err
			}
			product, err := s.catalog.CreateProduct(ctx, req.GetName(), price, req.GetQuantity())
			if err != nil {
				return nil, s.toStatus(ctx, "CreateProduct", err)
			}
			return &storefrontv1.CreateProductResponse{Product: toProtoProduct(product)}, nil
		},
	)
}

// GetProduct возвращает товар с текущим остатком.
func (s *StorefrontService) GetProduct(ctx context.Context, req *storefrontv1.GetProductRequest) (*storefrontv1.GetProductResponse, error) {
	if req == nil || strings.TrimSpace(req.GetProductId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}

	product, err := s.catalog.GetProduct(ctx, req.GetProductId())
	if err != nil {
		return nil, s.toStatus(ctx, "GetProduct", err)
	}
	return &storefrontv1.GetProductResponse{Product: toProtoProduct(product)}, nil
}

// PlaceOrder размещает заказ. Повтор с тем же idempotency-key не списывает остатки повторно.
func (s *StorefrontService) PlaceOrder(ctx context.Context, req *storefrontv1.PlaceOrderRequest) (*storefrontv1.PlaceOrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return withIdempotency(
		s,
		ctx,
		storefrontv1.StorefrontService_PlaceOrder_FullMethodName,
		req,
		func() *storefrontv1.PlaceOrderResponse { return &storefrontv1.PlaceOrderResponse{} },
		func(ctx context.Context) (*storefrontv1.PlaceOrderResponse, error) {
			lines := make([]domain.StockRequest, 0, len(req.GetProducts()))
			for idx, p := range req.GetProducts() {
				if p == nil {
					return nil, status.Errorf(codes.InvalidArgument, "products[%d] is nil", idx)
				}
				lines = append(lines, domain.StockRequest{ProductID: p.GetProductId(), Quantity: p.GetQuantity()})
			}

			order, err := s.placer.Place(ctx, placement.Request{CustomerID: req.GetCustomerId(), Products: lines})
			if err != nil {
				return nil, s.toStatus(ctx, "PlaceOrder", err)
			}
			return &storefrontv1.PlaceOrderResponse{Order: toProtoOrder(order)}, nil
		},
	)
}

// GetOrder возвращает заказ с позициями.
func (s *StorefrontService) GetOrder(ctx context.Context, req *storefrontv1.GetOrderRequest) (*storefrontv1.GetOrderResponse, error) {
	if req == nil || strings.TrimSpace(req.GetOrderId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	order, err := s.orders.Get(ctx, strings.TrimSpace(req.GetOrderId()))
	if err != nil {
		return nil, s.toStatus(ctx, "GetOrder", err)
	}
	return &storefrontv1.GetOrderResponse{Order: toProtoOrder(order)}, nil
}

// ListOrders возвращает заказы покупателя, новые первыми.
func (s *StorefrontService) ListOrders(ctx context.Context, req *storefrontv1.ListOrdersRequest) (*storefrontv1.ListOrdersResponse, error) {
	if req == nil || strings.TrimSpace(req.GetCustomerId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "customer_id is required")
	}

	orders, err := s.orders.ListByCustomer(ctx, strings.TrimSpace(req.GetCustomerId()), pageSize(req.GetPageSize()))
	if err != nil {
		return nil, s.toStatus(ctx, "ListOrders", err)
	}

	result := make([]*storefrontv1.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, toProtoOrder(order))
	}
	return &storefrontv1.ListOrdersResponse{Orders: result}, nil
}

// ListStockMovements возвращает журнал остатка товара.
func (s *StorefrontService) ListStockMovements(ctx context.Context, req *storefrontv1.ListStockMovementsRequest) (*storefrontv1.ListStockMovementsResponse, error) {
	if req == nil || strings.TrimSpace(req.GetProductId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}

	movements, err := s.catalog.ListStockMovements(ctx, req.GetProductId(), pageSize(req.GetPageSize()))
	if err != nil {
		return nil, s.toStatus(ctx, "ListStockMovements", err)
	}

	result := make([]*storefrontv1.StockMovement, 0, len(movements))
	for _, m := range movements {
		result = append(result, toProtoMovement(m))
	}
	return &storefrontv1.ListStockMovementsResponse{Movements: result}, nil
}

func pageSize(requested int32) int {
	switch {
	case requested <= 0:
		return defaultPageSize
	case requested > maxPageSize:
		return maxPageSize
	default:
		return int(requested)
	}
}

func parsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, status.Error(codes.InvalidArgument, "price is required")
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "price %q is not a decimal number", raw)
	}
	if !price.Equal(price.Round(priceScale)) {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "price %q has more than %d fractional digits", raw, priceScale)
	}
	return price, nil
}

package storefrontv1

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeClientConn struct {
	invoke func(context.Context, string, any, any, ...grpc.CallOption) error
}

func (f *fakeClientConn) Invoke(ctx context.Context, method string, args any, reply any, opts ...grpc.CallOption) error {
	if f.invoke == nil {
		return errors.New("unexpected Invoke call")
	}
	return f.invoke(ctx, method, args, reply, opts...)
}

func (f *fakeClientConn) NewStream(context.Context, *grpc.StreamDesc, string, ...grpc.CallOption) (grpc.ClientStream, error) {
	return nil, errors.New("not implemented")
}

type grpcTestStorefrontService struct {
	UnimplementedStorefrontServiceServer
}

func (s *grpcTestStorefrontService) CreateCustomer(_ context.Context, req *CreateCustomerRequest) (*CreateCustomerResponse, error) {
	return &CreateCustomerResponse{Customer: &Customer{Id: "C1", Name: req.GetName()}}, nil
}

func (s *grpcTestStorefrontService) GetCustomer(_ context.Context, req *GetCustomerRequest) (*GetCustomerResponse, error) {
	return &GetCustomerResponse{Customer: &Customer{Id: req.GetCustomerId()}}, nil
}

func (s *grpcTestStorefrontService) CreateProduct(_ context.Context, req *CreateProductRequest) (*CreateProductResponse, error) {
	return &CreateProductResponse{Product: &Product{Id: "P1", Name: req.GetName()}}, nil
}

func (s *grpcTestStorefrontService) GetProduct(_ context.Context, req *GetProductRequest) (*GetProductResponse, error) {
	return &GetProductResponse{Product: &Product{Id: req.GetProductId()}}, nil
}

func (s *grpcTestStorefrontService) PlaceOrder(_ context.Context, req *PlaceOrderRequest) (*PlaceOrderResponse, error) {
	return &PlaceOrderResponse{Order: &Order{Id: "order-1", CustomerId: req.GetCustomerId()}}, nil
}

func (s *grpcTestStorefrontService) GetOrder(_ context.Context, req *GetOrderRequest) (*GetOrderResponse, error) {
	return &GetOrderResponse{Order: &Order{Id: req.GetOrderId()}}, nil
}

func (s *grpcTestStorefrontService) ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error) {
	return &ListOrdersResponse{Orders: []*Order{{Id: "order-1"}}}, nil
}

func (s *grpcTestStorefrontService) ListStockMovements(_ context.Context, req *ListStockMovementsRequest) (*ListStockMovementsResponse, error) {
	return &ListStockMovementsResponse{Movements: []*StockMovement{{ProductId: req.GetProductId()}}}, nil
}

func clientCalls(client StorefrontServiceClient) map[string]func(context.Context) error {
	return map[string]func(context.Context) error{
		"CreateCustomer": func(ctx context.Context) error {
			_, err := client.CreateCustomer(ctx, &CreateCustomerRequest{})
			return err
		},
		"GetCustomer": func(ctx context.Context) error {
			_, err := client.GetCustomer(ctx, &GetCustomerRequest{})
			return err
		},
		"CreateProduct": func(ctx context.Context) error {
			_, err := client.CreateProduct(ctx, &CreateProductRequest{})
			return err
		},
		"GetProduct": func(ctx context.Context) error {
			_, err := client.GetProduct(ctx, &GetProductRequest{})
			return err
		},
		"PlaceOrder": func(ctx context.Context) error {
			_, err := client.PlaceOrder(ctx, &PlaceOrderRequest{})
			return err
		},
		"GetOrder": func(ctx context.Context) error {
			_, err := client.GetOrder(ctx, &GetOrderRequest{})
			return err
		},
		"ListOrders": func(ctx context.Context) error {
			_, err := client.ListOrders(ctx, &ListOrdersRequest{})
			return err
		},
		"ListStockMovements": func(ctx context.Context) error {
			_, err := client.ListStockMovements(ctx, &ListStockMovementsRequest{})
			return err
		},
	}
}

func TestStorefrontServiceClientMethods(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		methods := map[string]int{}
		conn := &fakeClientConn{
			invoke: func(_ context.Context, method string, _ any, reply any, _ ...grpc.CallOption) error {
				methods[method]++
				switch out := reply.(type) {
				case *CreateCustomerResponse, *GetCustomerResponse, *CreateProductResponse, *GetProductResponse,
					*PlaceOrderResponse, *GetOrderResponse, *ListOrdersResponse, *ListStockMovementsResponse:
				default:
					t.Fatalf("unexpected reply type: %T", out)
				}
				return nil
			},
		}

		ctx := context.Background()
		for name, call := range clientCalls(NewStorefrontServiceClient(conn)) {
			if err := call(ctx); err != nil {
				t.Fatalf("%s failed: %v", name, err)
			}
		}

		for _, method := range []string{
			StorefrontService_CreateCustomer_FullMethodName,
			StorefrontService_GetCustomer_FullMethodName,
			StorefrontService_CreateProduct_FullMethodName,
			StorefrontService_GetProduct_FullMethodName,
			StorefrontService_PlaceOrder_FullMethodName,
			StorefrontService_GetOrder_FullMethodName,
			StorefrontService_ListOrders_FullMethodName,
			StorefrontService_ListStockMovements_FullMethodName,
		} {
			if methods[method] != 1 {
				t.Fatalf("expected method %s called exactly once, got %d", method, methods[method])
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		conn := &fakeClientConn{
			invoke: func(context.Context, string, any, any, ...grpc.CallOption) error {
				return status.Error(codes.Internal, "boom")
			},
		}
		ctx := context.Background()
		for name, call := range clientCalls(NewStorefrontServiceClient(conn)) {
			if err := call(ctx); status.Code(err) != codes.Internal {
				t.Fatalf("%s expected Internal error, got %v", name, err)
			}
		}
	})
}

func TestUnimplementedStorefrontServiceServer(t *testing.T) {
	var srv UnimplementedStorefrontServiceServer
	ctx := context.Background()

	for name, call := range map[string]func() error{
		"CreateCustomer":     func() error { _, err := srv.CreateCustomer(ctx, &CreateCustomerRequest{}); return err },
		"GetCustomer":        func() error { _, err := srv.GetCustomer(ctx, &GetCustomerRequest{}); return err },
		"CreateProduct":      func() error { _, err := srv.CreateProduct(ctx, &CreateProductRequest{}); return err },
		"GetProduct":         func() error { _, err := srv.GetProduct(ctx, &GetProductRequest{}); return err },
		"PlaceOrder":         func() error { _, err := srv.PlaceOrder(ctx, &PlaceOrderRequest{}); return err },
		"GetOrder":           func() error { _, err := srv.GetOrder(ctx, &GetOrderRequest{}); return err },
		"ListOrders":         func() error { _, err := srv.ListOrders(ctx, &ListOrdersRequest{}); return err },
		"ListStockMovements": func() error { _, err := srv.ListStockMovements(ctx, &ListStockMovementsRequest{}); return err },
	} {
		if err := call(); status.Code(err) != codes.Unimplemented {
			t.Fatalf("%s expected Unimplemented error, got %v", name, err)
		}
	}

	srv.mustEmbedUnimplementedStorefrontServiceServer()
}

type grpcGeneratedHandlerCase struct {
	name   string
	method string
	call   func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error)
}

func TestGeneratedHandlers(t *testing.T) {
	srv := &grpcTestStorefrontService{}
	ctx := context.Background()

	cases := []grpcGeneratedHandlerCase{
		{name: "CreateCustomer", method: StorefrontService_CreateCustomer_FullMethodName, call: _StorefrontService_CreateCustomer_Handler},
		{name: "GetCustomer", method: StorefrontService_GetCustomer_FullMethodName, call: _StorefrontService_GetCustomer_Handler},
		{name: "CreateProduct", method: StorefrontService_CreateProduct_FullMethodName, call: _StorefrontService_CreateProduct_Handler},
		{name: "GetProduct", method: StorefrontService_GetProduct_FullMethodName, call: _StorefrontService_GetProduct_Handler},
		{name: "PlaceOrder", method: StorefrontService_PlaceOrder_FullMethodName, call: _StorefrontService_PlaceOrder_Handler},
		{name: "GetOrder", method: StorefrontService_GetOrder_FullMethodName, call: _StorefrontService_GetOrder_Handler},
		{name: "ListOrders", method: StorefrontService_ListOrders_FullMethodName, call: _StorefrontService_ListOrders_Handler},
		{name: "ListStockMovements", method: StorefrontService_ListStockMovements_FullMethodName, call: _StorefrontService_ListStockMovements_Handler},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.call(srv, ctx, func(any) error { return errors.New("decode failed") }, nil); err == nil {
				t.Fatalf("expected decode error")
			}

			resp, err := tc.call(srv, ctx, decodeFor(tc.name), nil)
			if err != nil {
				t.Fatalf("handler without interceptor failed: %v", err)
			}
			if resp == nil {
				t.Fatalf("expected non-nil response")
			}

			interceptorCalled := false
			resp, err = tc.call(srv, ctx, decodeFor(tc.name), func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
				interceptorCalled = true
				if info.FullMethod != tc.method {
					t.Fatalf("unexpected full method: got %s want %s", info.FullMethod, tc.method)
				}
				return handler(ctx, req)
			})
			if err != nil {
				t.Fatalf("handler with interceptor failed: %v", err)
			}
			if !interceptorCalled {
				t.Fatalf("interceptor was not called")
			}
			if resp == nil {
				t.Fatalf("expected non-nil response")
			}
		})
	}
}

func TestRegisterAndServiceDescriptor(t *testing.T) {
	g := grpc.NewServer()
	RegisterStorefrontServiceServer(g, &grpcTestStorefrontService{})

	if got, want := StorefrontService_ServiceDesc.ServiceName, "storefront.v1.StorefrontService"; got != want {
		t.Fatalf("unexpected service name: got %s want %s", got, want)
	}
	if len(StorefrontService_ServiceDesc.Methods) != 8 {
		t.Fatalf("expected 8 method descriptors, got %d", len(StorefrontService_ServiceDesc.Methods))
	}
	if StorefrontService_ServiceDesc.Metadata == "" {
		t.Fatalf("metadata should not be empty")
	}
}

func decodeFor(name string) func(any) error {
	return func(v any) error {
		switch req := v.(type) {
		case *CreateCustomerRequest:
			req.Name = "Alice"
			req.Email = "alice@example.com"
		case *GetCustomerRequest:
			req.CustomerId = "C1"
		case *CreateProductRequest:
			req.Name = "Widget"
			req.Price = "5.00"
			req.Quantity = 10
		case *GetProductRequest:
			req.ProductId = "P1"
		case *PlaceOrderRequest:
			req.CustomerId = "C1"
			req.Products = []*ProductQuantity{{ProductId: "P1", Quantity: 3}}
		case *GetOrderRequest:
			req.OrderId = "order-1"
		case *ListOrdersRequest:
			req.CustomerId = "C1"
		case *ListStockMovementsRequest:
			req.ProductId = "P1"
		default:
			return status.Errorf(codes.Internal, "unexpected request type for %s: %T", name, req)
		}
		return nil
	}
}

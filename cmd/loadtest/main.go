// Command loadtest размещает заказы на один товар параллельно и проверяет,
// что склад не ушёл в минус и остаток сходится с числом размещённых заказов.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	storefrontv1 "github.com/vladislavdragonenkov/storefront/proto/storefront/v1"
)

const (
	idempotencyHeader = "idempotency-key"

	methodPlaceOrder    = "PlaceOrder"
	methodCreateProduct = "CreateProduct"
	methodGetProduct    = "GetProduct"
	methodCreateCust    = "CreateCustomer"
)

type config struct {
	addr        string
	total       int
	concurrency int
	connections int
	timeout     time.Duration
	stock       int64
	quantity    int64
	price       string
	outputPath  string
}

func parseConfig(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("loadtest", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.addr, "addr", "localhost:50051", "gRPC target address")
	fs.IntVar(&cfg.total, "total", 1000, "total PlaceOrder calls")
	fs.IntVar(&cfg.concurrency, "concurrency", 50, "number of concurrent callers")
	fs.IntVar(&cfg.connections, "connections", 10, "number of gRPC client connections")
	fs.DurationVar(&cfg.timeout, "timeout", 5*time.Second, "per-RPC timeout")
	fs.Int64Var(&cfg.stock, "stock", 100, "initial stock of the contended product")
	fs.Int64Var(&cfg.quantity, "quantity", 1, "units requested by every order")
	fs.StringVar(&cfg.price, "price", "9.99", "product price")
	fs.StringVar(&cfg.outputPath, "output", "", "optional JSON report file, relative to the working directory")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch {
	case cfg.total <= 0:
		return cfg, errors.New("total must be > 0")
	case cfg.concurrency <= 0:
		return cfg, errors.New("concurrency must be > 0")
	case cfg.connections <= 0:
		return cfg, errors.New("connections must be > 0")
	case cfg.timeout <= 0:
		return cfg, errors.New("timeout must be > 0")
	case cfg.stock < 0:
		return cfg, errors.New("stock must be >= 0")
	case cfg.quantity <= 0:
		return cfg, errors.New("quantity must be > 0")
	case strings.TrimSpace(cfg.price) == "":
		return cfg, errors.New("price is required")
	}
	return cfg, nil
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	clients := make([]storefrontv1.StorefrontServiceClient, 0, cfg.connections)
	for i := 0; i < cfg.connections; i++ {
		conn, dialErr := grpc.NewClient(cfg.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if dialErr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to create grpc client connection: %v\n", dialErr)
			os.Exit(1)
		}
		defer conn.Close()
		clients = append(clients, storefrontv1.NewStorefrontServiceClient(conn))
	}

	result, err := run(context.Background(), clients, cfg)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "load test failed: %v\n", err)
		os.Exit(1)
	}

	printReport(os.Stdout, result)
	if cfg.outputPath != "" {
		if err := writeJSONReport(cfg.outputPath, result); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
			os.Exit(1)
		}
	}
	if result.Failed() {
		os.Exit(1)
	}
}

// run создаёт покупателя и товар, затем отправляет cfg.total заказов
// не более чем cfg.concurrency параллельно.
func run(ctx context.Context, clients []storefrontv1.StorefrontServiceClient, cfg config) (report, error) {
	if len(clients) == 0 {
		return report{}, errors.New("no grpc clients")
	}
	col := newCollector()
	runID := fmt.Sprintf("%d-%d", time.Now().UnixNano(), os.Getpid())
	setup := clients[0]

	customerID, err := createCustomer(ctx, setup, cfg, runID, col)
	if err != nil {
		return report{}, fmt.Errorf("create customer: %w", err)
	}
	productID, err := createProduct(ctx, setup, cfg, runID, col)
	if err != nil {
		return report{}, fmt.Errorf("create product: %w", err)
	}

	startedAt := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)
	for i := 0; i < cfg.total; i++ {
		client := clients[i%len(clients)]
		key := fmt.Sprintf("lt-place-%s-%d", runID, i)
		g.Go(func() error {
			// Отказы бизнес-логики учитываются в отчёте, а не прерывают прогон.
			_ = placeOrder(gctx, client, cfg, customerID, productID, key, col)
			return nil
		})
	}
	_ = g.Wait()
	duration := time.Since(startedAt)

	finalStock, err := getStock(ctx, setup, cfg, productID, col)
	if err != nil {
		return report{}, fmt.Errorf("read final stock: %w", err)
	}

	methods := col.methodsReport()
	place := methods[methodPlaceOrder]
	sold := cfg.stock - finalStock

	result := report{
		StartedAt:       startedAt.UTC(),
		DurationSeconds: duration.Seconds(),
		Methods:         methods,
		Stock: stockReport{
			ProductID:     productID,
			InitialStock:  cfg.stock,
			FinalStock:    finalStock,
			UnitsSold:     sold,
			Oversold:      finalStock < 0,
			Inconsistent:  sold != place.Success*cfg.quantity,
			PlacedOrders:  place.Success,
			RejectedStock: place.Codes[codes.FailedPrecondition.String()],
		},
	}
	if duration > 0 {
		result.RPS = float64(place.Calls) / duration.Seconds()
	}
	return result, nil
}

func createCustomer(ctx context.Context, client storefrontv1.StorefrontServiceClient, cfg config, runID string, col *collector) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	start := time.Now()
	resp, err := client.CreateCustomer(ctx, &storefrontv1.CreateCustomerRequest{
		Name:  "loadtest " + runID,
		Email: "loadtest+" + runID + "@example.com",
	})
	col.record(methodCreateCust, time.Since(start), status.Code(err))
	if err != nil {
		return "", err
	}
	return resp.GetCustomer().GetId(), nil
}

func createProduct(ctx context.Context, client storefrontv1.StorefrontServiceClient, cfg config, runID string, col *collector) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	start := time.Now()
	resp, err := client.CreateProduct(ctx, &storefrontv1.CreateProductRequest{
		Name:     "loadtest-product-" + runID,
		Price:    cfg.price,
		Quantity: cfg.stock,
	})
	col.record(methodCreateProduct, time.Since(start), status.Code(err))
	if err != nil {
		return "", err
	}
	return resp.GetProduct().GetId(), nil
}

func placeOrder(ctx context.Context, client storefrontv1.StorefrontServiceClient, cfg config, customerID, productID, key string, col *collector) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, idempotencyHeader, key)

	start := time.Now()
	_, err := client.PlaceOrder(ctx, &storefrontv1.PlaceOrderRequest{
		CustomerId: customerID,
		Products:   []*storefrontv1.ProductQuantity{{ProductId: productID, Quantity: cfg.quantity}},
	})
	col.record(methodPlaceOrder, time.Since(start), status.Code(err))
	return err
}

func getStock(ctx context.Context, client storefrontv1.StorefrontServiceClient, cfg config, productID string, col *collector) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	start := time.Now()
	resp, err := client.GetProduct(ctx, &storefrontv1.GetProductRequest{ProductId: productID})
	col.record(methodGetProduct, time.Since(start), status.Code(err))
	if err != nil {
		return 0, err
	}
	return resp.GetProduct().GetQuantity(), nil
}

package domain

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Customer — покупатель. Заказы ссылаются на него по ID.
type Customer struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Product — товар каталога с текущим остатком на складе.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
	// Quantity никогда не уходит ниже нуля: списание проверяет это атомарно.
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StockRequest — запрошенное количество товара (для поиска и списания остатков).
type StockRequest struct {
	ProductID string
	Quantity  int64
}

// StockRequestIDs возвращает различные идентификаторы в порядке первого появления.
func StockRequestIDs(reqs []StockRequest) []string {
	seen := make(map[string]struct{}, len(reqs))
	ids := make([]string, 0, len(reqs))
	for _, req := range reqs {
		if _, ok := seen[req.ProductID]; ok {
			continue
		}
		seen[req.ProductID] = struct{}{}
		ids = append(ids, req.ProductID)
	}
	return ids
}

// AggregateStockRequests складывает количества по одинаковым ID и сортирует
// результат по ID, чтобы блокировки строк всегда брались в одном порядке.
func AggregateStockRequests(reqs []StockRequest) ([]StockRequest, error) {
	totals := make(map[string]int64, len(reqs))
	for _, req := range reqs {
		if req.ProductID == "" {
			return nil, ErrProductIDRequired
		}
		if req.Quantity <= 0 {
			return nil, ErrQuantityInvalid
		}
		if req.Quantity > math.MaxInt64-totals[req.ProductID] {
			return nil, fmt.Errorf("total quantity of product %s overflows: %w", req.ProductID, ErrQuantityInvalid)
		}
		totals[req.ProductID] += req.Quantity
	}

	result := make([]StockRequest, 0, len(totals))
	for id, qty := range totals {
		result = append(result, StockRequest{ProductID: id, Quantity: qty})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ProductID < result[j].ProductID })
	return result, nil
}

// MovementReason описывает причину изменения остатка.
type MovementReason string

const (
	// MovementReasonReceived — первичное поступление при создании товара.
	MovementReasonReceived MovementReason = "received"
	// MovementReasonOrderPlaced — списание под размещённый заказ.
	MovementReasonOrderPlaced MovementReason = "order_placed"
)

// StockMovement — запись журнала изменений остатка товара.
type StockMovement struct {
	ProductID string
	OrderID   string
	Delta     int64
	Balance   int64
	Reason    MovementReason
	Occurred  time.Time
}

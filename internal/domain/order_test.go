package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// helper для создания базового заказа с одной позицией.
func makeOrder() domain.Order {
	now := time.Now().UTC()
	return domain.Order{
		ID:         "order-1",
		CustomerID: "customer-1",
		Total:      decimal.RequireFromString("25.00"),
		Products: []domain.OrderProduct{
			{
				ID:        "line-1",
				ProductID: "product-1",
				Quantity:  5,
				Price:     decimal.RequireFromString("5.00"),
				CreatedAt: now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestOrderValidateInvariants_Ok(t *testing.T) {
	order := makeOrder()
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestOrderValidateInvariants_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(o *domain.Order)
	}{
		{
			name: "no customer",
			mut: func(o *domain.Order) {
				o.CustomerID = ""
			},
		},
		{
			name: "no products",
			mut: func(o *domain.Order) {
				o.Products = nil
			},
		},
		{
			name: "empty product id",
			mut: func(o *domain.Order) {
				o.Products[0].ProductID = ""
			},
		},
		{
			name: "zero quantity",
			mut: func(o *domain.Order) {
				o.Products[0].Quantity = 0
			},
		},
		{
			name: "negative price",
			mut: func(o *domain.Order) {
				o.Products[0].Price = decimal.RequireFromString("-1")
			},
		},
		{
			name: "total mismatch",
			mut: func(o *domain.Order) {
				o.Total = decimal.RequireFromString("999")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := makeOrder()
			tc.mut(&order)

			if len(order.ValidateInvariants()) == 0 {
				t.Fatalf("expected validation errors for case %s", tc.name)
			}
		})
	}
}

func TestLinesTotal(t *testing.T) {
	lines := []domain.OrderProduct{
		{Quantity: 3, Price: decimal.RequireFromString("5.00")},
		{Quantity: 2, Price: decimal.RequireFromString("0.10")},
	}
	got := domain.LinesTotal(lines)
	if !got.Equal(decimal.RequireFromString("15.20")) {
		t.Fatalf("total = %s, want 15.20", got)
	}
	if !domain.LinesTotal(nil).IsZero() {
		t.Fatalf("total of empty lines must be zero")
	}
}

func TestOrderCloneDetachesProducts(t *testing.T) {
	order := makeOrder()
	clone := order.Clone()
	clone.Products[0].Quantity = 42

	if order.Products[0].Quantity != 5 {
		t.Fatalf("clone mutated original line items")
	}
}

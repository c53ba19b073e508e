package grpcsvc

import (
	"github.com/vladislavdragonenkov/storefront/internal/domain"
	storefrontv1 "github.com/vladislavdragonenkov/storefront/proto/storefront/v1"
)

func toProtoCustomer(c domain.Customer) *storefrontv1.Customer {
	return &storefrontv1.Customer{
		Id:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		CreatedUnix: c.CreatedAt.Unix(),
	}
}

func toProtoProduct(p domain.Product) *storefrontv1.Product {
	return &storefrontv1.Product{
		Id:          p.ID,
		Name:        p.Name,
		Price:       p.Price.StringFixed(priceScale),
		Quantity:    p.Quantity,
		CreatedUnix: p.CreatedAt.Unix(),
	}
}

func toProtoOrder(order domain.Order) *storefrontv1.Order {
	lines := make([]*storefrontv1.OrderProduct, 0, len(order.Products))
	for _, line := range order.Products {
		lines = append(lines, &storefrontv1.OrderProduct{
			Id:        line.ID,
			ProductId: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price.StringFixed(priceScale),
		})
	}
	return &storefrontv1.Order{
		Id:          order.ID,
		CustomerId:  order.CustomerID,
		Products:    lines,
		Total:       order.Total.StringFixed(priceScale),
		CreatedUnix: order.CreatedAt.Unix(),
	}
}

func toProtoMovement(m domain.StockMovement) *storefrontv1.StockMovement {
	return &storefrontv1.StockMovement{
		ProductId: m.ProductID,
		OrderId:   m.OrderID,
		Delta:     m.Delta,
		Balance:   m.Balance,
		Reason:    string(m.Reason),
		UnixTime:  m.Occurred.Unix(),
	}
}

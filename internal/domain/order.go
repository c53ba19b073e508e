package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderProduct представляет одну позицию заказа.
type OrderProduct struct {
	// ID позиции нужен для однозначной идентификации и аудита.
	ID string
	// ProductID — ссылка на товар каталога.
	ProductID string
	// Quantity — количество единиц товара.
	Quantity int64
	// Price — цена за единицу на момент покупки; дальнейшие изменения цены товара на неё не влияют.
	Price decimal.Decimal
	// CreatedAt фиксирует момент добавления позиции в заказ.
	CreatedAt time.Time
}

// Subtotal возвращает стоимость позиции: quantity * price.
func (p OrderProduct) Subtotal() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(p.Quantity))
}

// Order агрегирует заказ клиента и его позиции. После создания не изменяется.
type Order struct {
	ID         string
	CustomerID string
	Products   []OrderProduct
	Total      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LinesTotal считает сумму по позициям заказа.
func LinesTotal(lines []OrderProduct) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.CustomerID == "" {
		errs = append(errs, ErrCustomerRequired)
	}
	if len(o.Products) == 0 {
		errs = append(errs, ErrProductsRequired)
	}

	for _, line := range o.Products {
		if line.ProductID == "" {
			errs = append(errs, ErrProductIDRequired)
		}
		if line.Quantity <= 0 {
			errs = append(errs, ErrQuantityInvalid)
		}
		if line.Price.IsNegative() {
			errs = append(errs, ErrPriceInvalid)
		}
	}
	if !LinesTotal(o.Products).Equal(o.Total) {
		errs = append(errs, ErrTotalMismatch)
	}

	return errs
}

// Clone возвращает копию заказа с собственным срезом позиций.
func (o Order) Clone() Order {
	o.Products = append([]OrderProduct(nil), o.Products...)
	return o
}

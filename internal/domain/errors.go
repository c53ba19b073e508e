package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Ошибка отсутствующего идентификатора клиента.
	ErrCustomerRequired = errors.New("customer_id is required")
	// Ошибка отсутствия хотя бы одного товара в заказе.
	ErrProductsRequired = errors.New("order must contain at least one product")
	// Ошибка пустого идентификатора товара в запросе.
	ErrProductIDRequired = errors.New("product id is required")
	// Ошибка при некорректном количестве товара (<= 0).
	ErrQuantityInvalid = errors.New("product quantity must be greater than zero")
	// Товар указан в запросе больше одного раза.
	ErrDuplicateProduct = errors.New("product is listed more than once")
	// Ошибка отрицательной цены товара.
	ErrPriceInvalid = errors.New("product price must be non-negative")
	// Ошибка отрицательного остатка при создании товара.
	ErrStockInvalid = errors.New("product stock must be non-negative")
	// Ошибка пустого имени клиента или товара.
	ErrNameRequired = errors.New("name is required")
	// Ошибка некорректного email клиента.
	ErrEmailInvalid = errors.New("email is invalid")
	// Ошибка несоответствия суммы заказа и сумм позиций.
	ErrTotalMismatch = errors.New("order total does not match line items sum")

	// ErrCustomerNotFound возвращается, если клиент не найден.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrProductNotFound возвращается, если хотя бы один товар не найден.
	ErrProductNotFound = errors.New("one or more products not found")
	// ErrInsufficientStock — остатка не хватает хотя бы по одному товару.
	ErrInsufficientStock = errors.New("insufficient quantity for one or more products")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderAlreadyExists сигнализирует о повторной вставке заказа с тем же ID.
	ErrOrderAlreadyExists = errors.New("order already exists")
	// ErrCustomerAlreadyExists сигнализирует о повторной вставке клиента.
	ErrCustomerAlreadyExists = errors.New("customer already exists")
	// ErrProductAlreadyExists — товар с таким ID или именем уже есть в каталоге.
	ErrProductAlreadyExists = errors.New("product already exists")
	// ErrOutboxPublish — ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
)

// ErrorKind классифицирует ошибки размещения заказа для вызывающей стороны.
type ErrorKind string

const (
	ErrorKindNone              ErrorKind = ""
	ErrorKindInvalidInput      ErrorKind = "invalid_input"
	ErrorKindCustomerNotFound  ErrorKind = "customer_not_found"
	ErrorKindProductNotFound   ErrorKind = "product_not_found"
	ErrorKindInsufficientStock ErrorKind = "insufficient_stock"
	ErrorKindConflict          ErrorKind = "conflict"
	ErrorKindNotFound          ErrorKind = "not_found"
	ErrorKindPersistence       ErrorKind = "persistence"
)

var invalidInputErrors = []error{
	ErrCustomerRequired,
	ErrProductsRequired,
	ErrProductIDRequired,
	ErrQuantityInvalid,
	ErrDuplicateProduct,
	ErrPriceInvalid,
	ErrStockInvalid,
	ErrNameRequired,
	ErrEmailInvalid,
}

// KindOf возвращает вид ошибки. Всё, что не распознано как бизнес-ошибка,
// считается ошибкой хранилища.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ErrorKindNone
	}
	for _, target := range invalidInputErrors {
		if errors.Is(err, target) {
			return ErrorKindInvalidInput
		}
	}
	switch {
	case errors.Is(err, ErrCustomerNotFound):
		return ErrorKindCustomerNotFound
	case errors.Is(err, ErrProductNotFound):
		return ErrorKindProductNotFound
	case errors.Is(err, ErrInsufficientStock):
		return ErrorKindInsufficientStock
	case errors.Is(err, ErrOrderNotFound):
		return ErrorKindNotFound
	case IsAlreadyExists(err), IsIdempotencyConflict(err):
		return ErrorKindConflict
	default:
		return ErrorKindPersistence
	}
}

// StockError перечисляет товары, из-за которых размещение отклонено.
type StockError struct {
	Err        error
	ProductIDs []string
}

// NewStockError создаёт ошибку по товарам; err должен быть ErrProductNotFound или ErrInsufficientStock.
func NewStockError(err error, productIDs []string) *StockError {
	return &StockError{Err: err, ProductIDs: append([]string(nil), productIDs...)}
}

func (e *StockError) Error() string {
	if len(e.ProductIDs) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), strings.Join(e.ProductIDs, ", "))
}

func (e *StockError) Unwrap() error {
	return e.Err
}

// ProductIDsOf достаёт список товаров из StockError, если он есть в цепочке.
func ProductIDsOf(err error) []string {
	var stockErr *StockError
	if errors.As(err, &stockErr) {
		return append([]string(nil), stockErr.ProductIDs...)
	}
	return nil
}

// IsAlreadyExists проверяет, является ли ошибка конфликтом уникальности.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrOrderAlreadyExists) ||
		errors.Is(err, ErrCustomerAlreadyExists) ||
		errors.Is(err, ErrProductAlreadyExists)
}

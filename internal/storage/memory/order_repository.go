package memory

import (
	"context"
	"sort"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// orderRepository — in-memory реализация OrderRepository.
type orderRepository struct {
	scope
}

// NewOrderRepository возвращает репозиторий заказов поверх store.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{scope: scope{store: store}}
}

// Create сохраняет новый заказ, если ID ещё не занят.
func (r *orderRepository) Create(_ context.Context, order domain.Order) error {
	return r.write(func(d *dataset) error {
		if _, exists := d.orders[order.ID]; exists {
			return domain.ErrOrderAlreadyExists
		}
		// Сохраняем копию, чтобы избежать непредсказуемых мутаций извне.
		d.orders[order.ID] = order.Clone()
		return nil
	})
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepository) Get(_ context.Context, id string) (domain.Order, error) {
	var order domain.Order
	err := r.read(func(d *dataset) error {
		found, ok := d.orders[id]
		if !ok {
			return domain.ErrOrderNotFound
		}
		order = found.Clone()
		return nil
	})
	return order, err
}

// ListByCustomer возвращает заказы клиента от новых к старым, ограничивая выборку limit (если >0).
func (r *orderRepository) ListByCustomer(_ context.Context, customerID string, limit int) ([]domain.Order, error) {
	var result []domain.Order
	err := r.read(func(d *dataset) error {
		result = make([]domain.Order, 0)
		for _, order := range d.orders {
			if order.CustomerID != customerID {
				continue
			}
			result = append(result, order.Clone())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)

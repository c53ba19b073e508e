package memory

import (
	"context"
	"sort"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// stockMovementRepository хранит журнал остатков в памяти.
type stockMovementRepository struct {
	scope
}

// NewStockMovementRepository создаёт in-memory реализацию StockMovementRepository.
func NewStockMovementRepository(store *Store) domain.StockMovementRepository {
	return &stockMovementRepository{scope: scope{store: store}}
}

// Append добавляет записи в журнал.
func (r *stockMovementRepository) Append(_ context.Context, movements ...domain.StockMovement) error {
	return r.write(func(d *dataset) error {
		now := time.Now().UTC()
		for _, movement := range movements {
			if movement.Occurred.IsZero() {
				movement.Occurred = now
			}
			d.movements[movement.ProductID] = append(d.movements[movement.ProductID], movement)
		}
		return nil
	})
}

// ListByProduct возвращает записи товара от новых к старым.
func (r *stockMovementRepository) ListByProduct(_ context.Context, productID string, limit int) ([]domain.StockMovement, error) {
	var result []domain.StockMovement
	err := r.read(func(d *dataset) error {
		src := d.movements[productID]
		result = make([]domain.StockMovement, 0, len(src))
		for i := len(src) - 1; i >= 0; i-- {
			result = append(result, src[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// При одинаковом времени более поздняя вставка остаётся первой.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Occurred.After(result[j].Occurred)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

var _ domain.StockMovementRepository = (*stockMovementRepository)(nil)

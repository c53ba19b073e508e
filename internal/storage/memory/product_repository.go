package memory

import (
	"context"
	"sort"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type productRepository struct {
	scope
}

// NewProductRepository возвращает складской реестр поверх store.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{scope: scope{store: store}}
}

func (r *productRepository) Create(_ context.Context, product domain.Product) error {
	return r.write(func(d *dataset) error {
		if _, exists := d.products[product.ID]; exists {
			return domain.ErrProductAlreadyExists
		}
		for _, existing := range d.products {
			if existing.Name == product.Name {
				return domain.ErrProductAlreadyExists
			}
		}
		d.products[product.ID] = product
		return nil
	})
}

func (r *productRepository) Get(_ context.Context, id string) (domain.Product, error) {
	var product domain.Product
	err := r.read(func(d *dataset) error {
		found, ok := d.products[id]
		if !ok {
			return domain.ErrProductNotFound
		}
		product = found
		return nil
	})
	return product, err
}

func (r *productRepository) FindByName(_ context.Context, name string) (domain.Product, error) {
	var product domain.Product
	err := r.read(func(d *dataset) error {
		for _, candidate := range d.products {
			if candidate.Name == name {
				product = candidate
				return nil
			}
		}
		return domain.ErrProductNotFound
	})
	return product, err
}

// FindAllByID возвращает найденные товары в порядке ID.
func (r *productRepository) FindAllByID(_ context.Context, ids []string) ([]domain.Product, error) {
	var result []domain.Product
	err := r.read(func(d *dataset) error {
		seen := make(map[string]struct{}, len(ids))
		result = make([]domain.Product, 0, len(ids))
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if product, ok := d.products[id]; ok {
				result = append(result, product)
			}
		}
		return nil
	})
	sortProducts(result)
	return result, err
}

// UpdateQuantity сначала проверяет весь пакет и только затем применяет списания.
func (r *productRepository) UpdateQuantity(_ context.Context, reqs []domain.StockRequest) ([]domain.Product, error) {
	batch, err := domain.AggregateStockRequests(reqs)
	if err != nil {
		return nil, err
	}

	var updated []domain.Product
	err = r.write(func(d *dataset) error {
		var missing, short []string
		for _, req := range batch {
			product, ok := d.products[req.ProductID]
			if !ok {
				missing = append(missing, req.ProductID)
				continue
			}
			if product.Quantity < req.Quantity {
				short = append(short, req.ProductID)
			}
		}
		if len(missing) > 0 {
			return domain.NewStockError(domain.ErrProductNotFound, missing)
		}
		if len(short) > 0 {
			return domain.NewStockError(domain.ErrInsufficientStock, short)
		}

		now := time.Now().UTC()
		updated = make([]domain.Product, 0, len(batch))
		for _, req := range batch {
			product := d.products[req.ProductID]
			product.Quantity -= req.Quantity
			product.UpdatedAt = now
			d.products[req.ProductID] = product
			updated = append(updated, product)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func sortProducts(products []domain.Product) {
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
}

var _ domain.ProductRepository = (*productRepository)(nil)

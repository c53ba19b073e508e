package memory

import (
	"context"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type customerRepository struct {
	scope
}

// NewCustomerRepository возвращает репозиторий клиентов поверх store.
func NewCustomerRepository(store *Store) domain.CustomerRepository {
	return &customerRepository{scope: scope{store: store}}
}

func (r *customerRepository) Create(_ context.Context, customer domain.Customer) error {
	return r.write(func(d *dataset) error {
		if _, exists := d.customers[customer.ID]; exists {
			return domain.ErrCustomerAlreadyExists
		}
		d.customers[customer.ID] = customer
		return nil
	})
}

func (r *customerRepository) FindByID(_ context.Context, id string) (domain.Customer, error) {
	var customer domain.Customer
	err := r.read(func(d *dataset) error {
		found, ok := d.customers[id]
		if !ok {
			return domain.ErrCustomerNotFound
		}
		customer = found
		return nil
	})
	return customer, err
}

var _ domain.CustomerRepository = (*customerRepository)(nil)

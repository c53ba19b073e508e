package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

const productColumns = `id, name, price, quantity, created_at, updated_at`

type productRepository struct {
	q querier
	// db не nil вне транзакции.
	db *sql.DB
}

// NewProductRepository создаёт PostgreSQL-реализацию складского реестра.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{q: store.DB(), db: store.DB()}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *productRepository) Create(ctx context.Context, product domain.Product) error {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	_, err := r.q.ExecContext(ctx, `
		INSERT INTO products (id, name, price, quantity, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, product.ID, product.Name, product.Price, product.Quantity, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProductAlreadyExists
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *productRepository) Get(ctx context.Context, id string) (domain.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

func (r *productRepository) FindByName(ctx context.Context, name string) (domain.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE name = $1`, name)
}

func (r *productRepository) getOne(ctx context.Context, query string, arg string) (domain.Product, error) {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	product, err := scanProduct(r.q.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("select product: %w", err)
	}
	return product, nil
}

// FindAllByID внутри транзакции блокирует найденные строки в порядке ID,
// чтобы параллельные размещения не проверяли устаревший остаток.
func (r *productRepository) FindAllByID(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1) ORDER BY id`
	if r.db == nil {
		query += ` FOR UPDATE`
	}

	rows, err := r.q.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("select products by id: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0, len(ids))
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// UpdateQuantity списывает остатки условным UPDATE. Внутри чужой транзакции
// пакет ограничен savepoint, поэтому при отказе не остаётся частичных списаний.
func (r *productRepository) UpdateQuantity(ctx context.Context, reqs []domain.StockRequest) ([]domain.Product, error) {
	batch, err := domain.AggregateStockRequests(reqs)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	var updated []domain.Product
	err = withLocalTx(ctx, r.q, r.db, func(q querier) error {
		if r.db != nil {
			var decErr error
			updated, decErr = decrementStock(ctx, q, batch)
			return decErr
		}

		if _, err := q.ExecContext(ctx, `SAVEPOINT stock_decrement`); err != nil {
			return fmt.Errorf("create savepoint: %w", err)
		}
		var decErr error
		updated, decErr = decrementStock(ctx, q, batch)
		if decErr != nil {
			if _, err := q.ExecContext(ctx, `ROLLBACK TO SAVEPOINT stock_decrement`); err != nil {
				return fmt.Errorf("rollback savepoint: %w (after %v)", err, decErr)
			}
			return decErr
		}
		if _, err := q.ExecContext(ctx, `RELEASE SAVEPOINT stock_decrement`); err != nil {
			return fmt.Errorf("release savepoint: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func decrementStock(ctx context.Context, q querier, batch []domain.StockRequest) ([]domain.Product, error) {
	now := time.Now().UTC()
	updated := make([]domain.Product, 0, len(batch))
	var rejected []string

	for _, req := range batch {
		product, err := scanProduct(q.QueryRowContext(ctx, `
			UPDATE products
			SET quantity = quantity - $2,
			    updated_at = $3
			WHERE id = $1
			  AND quantity >= $2
			RETURNING `+productColumns,
			req.ProductID, req.Quantity, now,
		))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				rejected = append(rejected, req.ProductID)
				continue
			}
			if pgErrorCode(err) == pgCheckViolation {
				return nil, domain.NewStockError(domain.ErrInsufficientStock, []string{req.ProductID})
			}
			return nil, fmt.Errorf("decrement product %s: %w", req.ProductID, err)
		}
		updated = append(updated, product)
	}

	if len(rejected) == 0 {
		return updated, nil
	}
	return nil, classifyRejected(ctx, q, rejected)
}

// classifyRejected различает отсутствующие товары и нехватку остатка.
func classifyRejected(ctx context.Context, q querier, rejected []string) error {
	rows, err := q.QueryContext(ctx, `SELECT id FROM products WHERE id = ANY($1)`, rejected)
	if err != nil {
		return fmt.Errorf("check rejected products: %w", err)
	}
	defer rows.Close()

	existing := make(map[string]struct{}, len(rejected))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scan rejected product: %w", err)
		}
		existing[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate rejected products: %w", err)
	}

	var missing []string
	for _, id := range rejected {
		if _, ok := existing[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return domain.NewStockError(domain.ErrProductNotFound, missing)
	}
	return domain.NewStockError(domain.ErrInsufficientStock, rejected)
}

var _ domain.ProductRepository = (*productRepository)(nil)

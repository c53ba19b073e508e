package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type stockMovementRepository struct {
	q querier
}

// NewStockMovementRepository создаёт PostgreSQL-реализацию журнала остатков.
func NewStockMovementRepository(store *Store) domain.StockMovementRepository {
	return &stockMovementRepository{q: store.DB()}
}

func (r *stockMovementRepository) Append(ctx context.Context, movements ...domain.StockMovement) error {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	for _, m := range movements {
		if m.Occurred.IsZero() {
			m.Occurred = now
		}
		orderID := sql.NullString{String: m.OrderID, Valid: m.OrderID != ""}
		if _, err := r.q.ExecContext(ctx, `
			INSERT INTO stock_movements (product_id, order_id, delta, balance, reason, occurred)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, m.ProductID, orderID, m.Delta, m.Balance, string(m.Reason), m.Occurred); err != nil {
			return fmt.Errorf("append stock movement: %w", err)
		}
	}
	return nil
}

func (r *stockMovementRepository) ListByProduct(ctx context.Context, productID string, limit int) ([]domain.StockMovement, error) {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	query := `
		SELECT product_id, order_id, delta, balance, reason, occurred
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY occurred DESC, id DESC
	`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.q.QueryContext(ctx, query+" LIMIT $2", productID, limit)
	} else {
		rows, err = r.q.QueryContext(ctx, query, productID)
	}
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	movements := make([]domain.StockMovement, 0)
	for rows.Next() {
		var (
			m       domain.StockMovement
			orderID sql.NullString
			reason  string
		)
		if err := rows.Scan(&m.ProductID, &orderID, &m.Delta, &m.Balance, &reason, &m.Occurred); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		m.OrderID = orderID.String
		m.Reason = domain.MovementReason(reason)
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock movements: %w", err)
	}
	return movements, nil
}

var _ domain.StockMovementRepository = (*stockMovementRepository)(nil)

package store

import (
	"context"
	"fmt"

	"hotchick-orders/db"
	"hotchick-orders/models"
)

// PostgresStore writes orders into the orders table through the shared pool.
// db.Init must have run before the first append.
type PostgresStore struct{}

func NewPostgresStore() *PostgresStore { return &PostgresStore{} }

func (s *PostgresStore) AppendOrder(ctx context.Context, order models.Order) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO orders (order_id, ordered_at, items, total_amount, payment_method)
		VALUES ($1, $2, $3, $4, $5)`,
		order.ID, order.CreatedAt, order.ItemsSummary, order.TotalAmount, order.PaymentMethod,
	)
	if err != nil {
		return fmt.Errorf("%w: insert order: %v", ErrRemote, err)
	}
	return nil
}

func (s *PostgresStore) FetchAll(ctx context.Context) ([][]string, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT order_id, ordered_at, items, total_amount, payment_method
		FROM orders
		ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var id, at, items, payment string
		var total int64
		if err := rows.Scan(&id, &at, &items, &total, &payment); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetch, err)
		}
		out = append(out, []string{id, at, items, fmt.Sprintf("%d", total), payment})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return out, nil
}

package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cobramax/backend/internal/domain/expense"
)

type ExpenseRepository struct {
	pool *pgxpool.Pool
}

func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

func (r *ExpenseRepository) ListBetween(ctx context.Context, from, to time.Time) ([]expense.Entity, error) {
	q := `
SELECT id, concept, amount, spent_at, notes
FROM expenses
WHERE spent_at >= $1 AND spent_at <= $2
ORDER BY spent_at DESC
`
	rows, err := r.pool.Query(ctx, q, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]expense.Entity, 0)
	for rows.Next() {
		var item expense.Entity
		if err := rows.Scan(&item.ID, &item.Concept, &item.Amount, &item.Date, &item.Notes); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

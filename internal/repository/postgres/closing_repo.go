package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/cobramax/backend/internal/domain/closing"
)

const uniqueViolationCode = "23505"

type ClosingRepository struct {
	pool *pgxpool.Pool
}

func NewClosingRepository(pool *pgxpool.Pool) *ClosingRepository {
	return &ClosingRepository{pool: pool}
}

func (r *ClosingRepository) GetByDate(ctx context.Context, date time.Time) (*closing.Entity, error) {
	q := `
SELECT id, closing_date, opening_cash, closing_cash, created_at
FROM daily_closings
WHERE closing_date = $1::date
`
	out := &closing.Entity{}
	err := r.pool.QueryRow(ctx, q, date).
		Scan(&out.ID, &out.Date, &out.OpeningCash, &out.ClosingCash, &out.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, closing.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create relies on the unique index on closing_date: a duplicate close
// attempt fails at the storage layer, never overwriting the stored row.
func (r *ClosingRepository) Create(ctx context.Context, date time.Time, opening, closingCash decimal.Decimal) (*closing.Entity, error) {
	q := `
INSERT INTO daily_closings (closing_date, opening_cash, closing_cash)
VALUES ($1::date, $2, $3)
RETURNING id, closing_date, opening_cash, closing_cash, created_at
`
	out := &closing.Entity{}
	err := r.pool.QueryRow(ctx, q, date, opening, closingCash).
		Scan(&out.ID, &out.Date, &out.OpeningCash, &out.ClosingCash, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, closing.ErrAlreadyClosed
		}
		return nil, err
	}
	return out, nil
}

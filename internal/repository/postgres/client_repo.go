package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cobramax/backend/internal/domain/client"
	"github.com/cobramax/backend/internal/domain/loan"
)

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*client.Entity, error) {
	q := `SELECT` + clientColumns + ` FROM clients c WHERE c.id = $1`
	out := &client.Entity{}
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&out.ID, &out.Code, &out.Document, &out.FirstName, &out.LastName, &out.HomeAddress,
		&out.CollectionAddress, &out.Phone, &out.Photo, &out.Country, &out.City, &out.PersonalReferences,
		&out.Active, &out.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, loan.ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ClientRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]client.Entity, error) {
	q := `
SELECT` + clientColumns + `
FROM clients c
WHERE c.created_at >= $1 AND c.created_at <= $2
ORDER BY c.created_at DESC
`
	rows, err := r.pool.Query(ctx, q, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]client.Entity, 0)
	for rows.Next() {
		var item client.Entity
		err := rows.Scan(
			&item.ID, &item.Code, &item.Document, &item.FirstName, &item.LastName, &item.HomeAddress,
			&item.CollectionAddress, &item.Phone, &item.Photo, &item.Country, &item.City, &item.PersonalReferences,
			&item.Active, &item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

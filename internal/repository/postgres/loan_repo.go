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

const loanColumns = `
l.id, l.client_id, l.collector_id, l.principal, l.interest_rate, l.interest_amount,
l.installments, l.installment_value, l.frequency, l.channel, l.start_date, l.maturity_date,
l.status, l.grace_days, l.late_fee_per_day, l.insurance_kind, l.insurance_value,
l.insurance_total, l.notes, l.created_at`

const clientColumns = `
c.id, c.client_code, c.document, c.first_name, c.last_name, c.home_address,
c.collection_address, c.phone, c.photo, c.country, c.city, c.personal_references,
c.active, c.created_at`

type LoanRepository struct {
	pool *pgxpool.Pool
}

func NewLoanRepository(pool *pgxpool.Pool) *LoanRepository {
	return &LoanRepository{pool: pool}
}

func scanLoan(row pgx.Row) (*loan.Entity, error) {
	out := &loan.Entity{}
	err := row.Scan(
		&out.ID, &out.ClientID, &out.CollectorID, &out.Principal, &out.InterestRate, &out.InterestAmount,
		&out.Installments, &out.InstallmentValue, &out.Frequency, &out.Channel, &out.StartDate, &out.MaturityDate,
		&out.Status, &out.GraceDays, &out.LateFeePerDay, &out.InsuranceKind, &out.InsuranceValue,
		&out.InsuranceTotal, &out.Notes, &out.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func scanLoanWithClient(rows pgx.Rows) (*loan.Entity, error) {
	l := &loan.Entity{}
	c := &client.Entity{}
	err := rows.Scan(
		&l.ID, &l.ClientID, &l.CollectorID, &l.Principal, &l.InterestRate, &l.InterestAmount,
		&l.Installments, &l.InstallmentValue, &l.Frequency, &l.Channel, &l.StartDate, &l.MaturityDate,
		&l.Status, &l.GraceDays, &l.LateFeePerDay, &l.InsuranceKind, &l.InsuranceValue,
		&l.InsuranceTotal, &l.Notes, &l.CreatedAt,
		&c.ID, &c.Code, &c.Document, &c.FirstName, &c.LastName, &c.HomeAddress,
		&c.CollectionAddress, &c.Phone, &c.Photo, &c.Country, &c.City, &c.PersonalReferences,
		&c.Active, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	l.Client = c
	return l, nil
}

func (r *LoanRepository) Create(ctx context.Context, in loan.CreateInput) (*loan.Entity, error) {
	q := `
INSERT INTO loans (
  client_id, collector_id, principal, interest_rate, interest_amount, installments,
  installment_value, frequency, channel, start_date, maturity_date, status,
  grace_days, late_fee_per_day, insurance_kind, insurance_value, insurance_total, notes
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,'ACTIVO',$12,$13,$14,$15,$16,$17)
RETURNING id, client_id, collector_id, principal, interest_rate, interest_amount,
          installments, installment_value, frequency, channel, start_date, maturity_date,
          status, grace_days, late_fee_per_day, insurance_kind, insurance_value,
          insurance_total, notes, created_at
`
	created, err := scanLoan(r.pool.QueryRow(ctx, q,
		in.ClientID, in.CollectorID, in.Principal, in.InterestRate, in.InterestAmount, in.Installments,
		in.InstallmentValue, in.Frequency, in.Channel, in.StartDate, in.MaturityDate,
		in.GraceDays, in.LateFeePerDay, in.InsuranceKind, in.InsuranceValue, in.InsuranceTotal, in.Notes,
	))
	if err != nil {
		return nil, err
	}

	q = `SELECT` + clientColumns + ` FROM clients c WHERE c.id = $1`
	c := &client.Entity{}
	err = r.pool.QueryRow(ctx, q, created.ClientID).Scan(
		&c.ID, &c.Code, &c.Document, &c.FirstName, &c.LastName, &c.HomeAddress,
		&c.CollectionAddress, &c.Phone, &c.Photo, &c.Country, &c.City, &c.PersonalReferences,
		&c.Active, &c.CreatedAt,
	)
	if err == nil {
		created.Client = c
	}
	return created, nil
}

func (r *LoanRepository) GetByID(ctx context.Context, id string) (*loan.Entity, error) {
	q := `SELECT` + loanColumns + ` FROM loans l WHERE l.id = $1`
	out, err := scanLoan(r.pool.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, loan.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *LoanRepository) ListActive(ctx context.Context) ([]loan.Entity, error) {
	q := `
SELECT` + loanColumns + `,` + clientColumns + `
FROM loans l
JOIN clients c ON c.id = l.client_id
WHERE l.status = 'ACTIVO'
ORDER BY l.start_date DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]loan.Entity, 0)
	index := map[string]int{}
	ids := make([]string, 0)
	for rows.Next() {
		item, err := scanLoanWithClient(rows)
		if err != nil {
			return nil, err
		}
		index[item.ID] = len(out)
		ids = append(ids, item.ID)
		out = append(out, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	// Payments attach in a second pass, newest first per loan.
	pq := `
SELECT id, loan_id, amount, paid_at, notes
FROM payments
WHERE loan_id = ANY($1)
ORDER BY paid_at DESC
`
	prows, err := r.pool.Query(ctx, pq, ids)
	if err != nil {
		return nil, err
	}
	defer prows.Close()
	for prows.Next() {
		var p loan.Payment
		if err := prows.Scan(&p.ID, &p.LoanID, &p.Amount, &p.Date, &p.Notes); err != nil {
			return nil, err
		}
		if i, ok := index[p.LoanID]; ok {
			out[i].Payments = append(out[i].Payments, p)
		}
	}
	if err := prows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *LoanRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]loan.Entity, error) {
	q := `
SELECT` + loanColumns + `,` + clientColumns + `
FROM loans l
JOIN clients c ON c.id = l.client_id
WHERE l.created_at >= $1 AND l.created_at <= $2
ORDER BY l.created_at DESC
`
	rows, err := r.pool.Query(ctx, q, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]loan.Entity, 0)
	for rows.Next() {
		item, err := scanLoanWithClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *LoanRepository) CountByClient(ctx context.Context) (map[string]int64, error) {
	q := `SELECT client_id, COUNT(*)::bigint FROM loans GROUP BY client_id`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int64{}
	for rows.Next() {
		var clientID string
		var n int64
		if err := rows.Scan(&clientID, &n); err != nil {
			return nil, err
		}
		out[clientID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *LoanRepository) CountActiveTransfersCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	q := `
SELECT COUNT(*)::bigint
FROM loans
WHERE channel = 'TRANSFERENCIA' AND status = 'ACTIVO'
  AND created_at >= $1 AND created_at <= $2
`
	var n int64
	if err := r.pool.QueryRow(ctx, q, from, to).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

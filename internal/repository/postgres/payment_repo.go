package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cobramax/backend/internal/domain/client"
	"github.com/cobramax/backend/internal/domain/loan"
)

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

func (r *PaymentRepository) ListBetween(ctx context.Context, from, to time.Time) ([]loan.Payment, error) {
	q := `
SELECT p.id, p.loan_id, p.amount, p.paid_at, p.notes,` + loanColumns + `,` + clientColumns + `
FROM payments p
JOIN loans l ON l.id = p.loan_id
JOIN clients c ON c.id = l.client_id
WHERE p.paid_at >= $1 AND p.paid_at <= $2
ORDER BY p.paid_at DESC
`
	rows, err := r.pool.Query(ctx, q, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]loan.Payment, 0)
	for rows.Next() {
		var p loan.Payment
		l := &loan.Entity{}
		c := &client.Entity{}
		err := rows.Scan(
			&p.ID, &p.LoanID, &p.Amount, &p.Date, &p.Notes,
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
		p.Loan = l
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

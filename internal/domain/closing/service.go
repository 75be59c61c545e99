package closing

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cobramax/backend/internal/domain/expense"
	"github.com/cobramax/backend/internal/domain/loan"
	"github.com/cobramax/backend/internal/money"
)

type Service struct {
	closings Repository
	loans    loan.Repository
	payments loan.PaymentRepository
	expenses expense.Repository
	now      func() time.Time
}

func NewService(closings Repository, loans loan.Repository, payments loan.PaymentRepository, expenses expense.Repository) *Service {
	return &Service{
		closings: closings,
		loans:    loans,
		payments: payments,
		expenses: expenses,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// DayWindow returns the inclusive [startOfDay, endOfDay] bounds for a
// calendar date in UTC.
func DayWindow(date time.Time) (time.Time, time.Time) {
	y, m, d := date.UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	end := time.Date(y, m, d, 23, 59, 59, 999999999, time.UTC)
	return start, end
}

// ComputeClosing is the chain equation: closing = opening + collected
// - lent - expenses.
func ComputeClosing(opening, collected, lent, expenses decimal.Decimal) decimal.Decimal {
	return opening.Add(collected).Sub(lent).Sub(expenses)
}

// Statement projects a day's cash movement without writing anything.
// The opening balance carries forward from the previous day's closing
// when one exists, otherwise zero.
func (s *Service) Statement(ctx context.Context, date time.Time) (*Statement, error) {
	start, end := DayWindow(date)

	payments, err := s.payments.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	loansToday, err := s.loans.ListCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	expensesToday, err := s.expenses.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	collected := money.Zero
	for _, p := range payments {
		collected = collected.Add(p.Amount)
	}
	lent := money.Zero
	for _, l := range loansToday {
		lent = lent.Add(l.Principal)
	}
	spent := money.Zero
	for _, e := range expensesToday {
		spent = spent.Add(e.Amount)
	}

	opening := money.Zero
	prev, err := s.closings.GetByDate(ctx, start.AddDate(0, 0, -1))
	switch {
	case err == nil:
		opening = prev.ClosingCash
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	st := &Statement{
		Date:        start,
		OpeningCash: opening,
		Collected:   collected,
		Lent:        lent,
		Expenses:    spent,
		ClosingCash: ComputeClosing(opening, collected, lent, spent),
	}

	existing, err := s.closings.GetByDate(ctx, start)
	switch {
	case err == nil:
		st.Closed = true
		st.ClosingID = existing.ID
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}
	return st, nil
}

// Close persists the day's closing exactly once. The unique index on
// the closing date is the sole concurrency guard; a duplicate insert
// surfaces as ErrAlreadyClosed and the stored row stays untouched.
func (s *Service) Close(ctx context.Context, date time.Time) (*Entity, error) {
	st, err := s.Statement(ctx, date)
	if err != nil {
		return nil, err
	}
	if st.Closed {
		return nil, ErrAlreadyClosed
	}
	return s.closings.Create(ctx, st.Date, st.OpeningCash, st.ClosingCash)
}

package report

import (
	"github.com/shopspring/decimal"

	"github.com/cobramax/backend/internal/domain/loan"
	"github.com/cobramax/backend/internal/money"
)

// AccruedLateFees sums late fees across a day's payments. Each payment
// is judged against its own loan's maturity: a loan matured strictly
// before the payment contributes lateFeePerDay * full days late,
// anything else contributes zero. The fee is a property of the payment
// moment, not of the loan in isolation.
func AccruedLateFees(payments []loan.Payment) decimal.Decimal {
	total := money.Zero
	for _, p := range payments {
		if p.Loan == nil || !p.Loan.MaturityDate.Before(p.Date) {
			continue
		}
		daysLate := int64(p.Date.Sub(p.Loan.MaturityDate).Hours() / 24)
		total = total.Add(p.Loan.LateFeePerDay.Mul(decimal.NewFromInt(daysLate)))
	}
	return total
}

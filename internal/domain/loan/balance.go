package loan

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cobramax/backend/internal/domain/client"
	"github.com/cobramax/backend/internal/money"
)

// Balance is the derived financial position of a single loan.
type Balance struct {
	TotalOwed        decimal.Decimal `json:"montoTotal"`
	TotalPaid        decimal.Decimal `json:"totalPagado"`
	Pending          decimal.Decimal `json:"saldoPendiente"`
	InstallmentsPaid int             `json:"cuotasPagadas"`
	LastActivity     time.Time       `json:"fechaActividadReciente"`
}

// ComputeBalance derives totals for one loan against its own payment
// set. The pending balance is intentionally not clamped: over-payment
// shows as a negative balance, a credit in the collector's favor.
func ComputeBalance(l *Entity) Balance {
	owed := TotalOwed(l)

	paid := money.Zero
	for _, p := range l.Payments {
		paid = paid.Add(p.Amount)
	}

	last := l.CreatedAt
	if last.IsZero() {
		last = l.StartDate
	}
	if len(l.Payments) > 0 && l.Payments[0].Date.After(last) {
		last = l.Payments[0].Date
	}

	return Balance{
		TotalOwed:        owed,
		TotalPaid:        paid,
		Pending:          owed.Sub(paid),
		InstallmentsPaid: len(l.Payments),
		LastActivity:     last,
	}
}

// TotalOwed is principal plus flat interest: principal * (1 + rate/100).
func TotalOwed(l *Entity) decimal.Decimal {
	return l.Principal.Add(money.Percent(l.Principal, l.InterestRate))
}

type LoanWithBalance struct {
	Entity
	Balance
}

// ClientBundle groups a client's loans with rolled-up totals.
type ClientBundle struct {
	Client                *client.Entity    `json:"cliente"`
	Loans                 []LoanWithBalance `json:"prestamos"`
	LastActivity          time.Time         `json:"fechaActividadReciente"`
	TotalPending          decimal.Decimal   `json:"saldoTotalPendiente"`
	TotalInstallmentsPaid int               `json:"cuotasTotalesPagadas"`
	TotalPrincipal        decimal.Decimal   `json:"montoTotalPrestado"`
}

// GroupByClient folds loans into per-client bundles and sorts the
// result by most recent activity, newest first. The fold preserves
// input order, so clients with equal activity keep the order in which
// their loans arrived.
func GroupByClient(loans []Entity) []ClientBundle {
	byClient := map[string]int{}
	bundles := []ClientBundle{}

	for i := range loans {
		l := &loans[i]
		if l.Client == nil {
			continue
		}
		bal := ComputeBalance(l)

		idx, ok := byClient[l.Client.ID]
		if !ok {
			idx = len(bundles)
			byClient[l.Client.ID] = idx
			bundles = append(bundles, ClientBundle{
				Client:         l.Client,
				LastActivity:   bal.LastActivity,
				TotalPending:   money.Zero,
				TotalPrincipal: money.Zero,
			})
		}

		b := &bundles[idx]
		b.Loans = append(b.Loans, LoanWithBalance{Entity: *l, Balance: bal})
		b.TotalPending = b.TotalPending.Add(bal.Pending)
		b.TotalInstallmentsPaid += bal.InstallmentsPaid
		b.TotalPrincipal = b.TotalPrincipal.Add(l.Principal)
		if bal.LastActivity.After(b.LastActivity) {
			b.LastActivity = bal.LastActivity
		}
	}

	sort.SliceStable(bundles, func(i, j int) bool {
		return bundles[i].LastActivity.After(bundles[j].LastActivity)
	})
	return bundles
}

// FilterWithBalance keeps only bundles still owing money.
func FilterWithBalance(bundles []ClientBundle) []ClientBundle {
	out := make([]ClientBundle, 0, len(bundles))
	for _, b := range bundles {
		if b.TotalPending.IsPositive() {
			out = append(out, b)
		}
	}
	return out
}

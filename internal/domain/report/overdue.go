package report

import (
	"math"
	"time"

	"github.com/cobramax/backend/internal/domain/loan"
)

// OverdueLoans selects active loans past maturity as of now (wall
// clock, not the report's target date) and derives days overdue plus
// the pending balance against each loan's own payment set.
func OverdueLoans(active []loan.Entity, now time.Time) []OverdueLoan {
	out := []OverdueLoan{}
	for i := range active {
		l := &active[i]
		if l.Status != loan.StatusActive || !l.MaturityDate.Before(now) {
			continue
		}

		bal := loan.ComputeBalance(l)
		days := int(math.Ceil(now.Sub(l.MaturityDate).Hours() / 24))

		item := OverdueLoan{
			ID:               l.ID,
			Monto:            l.Principal,
			ValorCuota:       l.InstallmentValue,
			Cuotas:           l.Installments,
			FechaVencimiento: l.MaturityDate,
			DiasVencido:      days,
			TotalPagado:      bal.TotalPaid,
			SaldoPendiente:   bal.Pending,
		}
		if l.Client != nil {
			item.Cliente = l.Client.FullName()
			item.Documento = l.Client.Document
			item.Telefono = l.Client.Phone
		}
		out = append(out, item)
	}
	return out
}

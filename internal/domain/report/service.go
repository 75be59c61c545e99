package report

import (
	"context"
	"errors"
	"time"

	"github.com/cobramax/backend/internal/db"
	"github.com/cobramax/backend/internal/domain/client"
	"github.com/cobramax/backend/internal/domain/closing"
	"github.com/cobramax/backend/internal/domain/expense"
	"github.com/cobramax/backend/internal/domain/loan"
	"github.com/cobramax/backend/internal/money"
)

type CollectorRepository interface {
	GetCollectorByID(ctx context.Context, collectorID string) (*db.Collector, error)
}

type Service struct {
	collectors CollectorRepository
	clients    client.Repository
	loans      loan.Repository
	payments   loan.PaymentRepository
	expenses   expense.Repository
	closings   closing.Repository
	now        func() time.Time
}

func NewService(
	collectors CollectorRepository,
	clients client.Repository,
	loans loan.Repository,
	payments loan.PaymentRepository,
	expenses expense.Repository,
	closings closing.Repository,
) *Service {
	return &Service{
		collectors: collectors,
		clients:    clients,
		loans:      loans,
		payments:   payments,
		expenses:   expenses,
		closings:   closings,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Daily assembles the collector's end-of-day report for the given
// date. Every request fetches fresh data; nothing is cached between
// calls and nothing is written.
func (s *Service) Daily(ctx context.Context, collectorID string, date time.Time) (*DailyReport, error) {
	start, end := closing.DayWindow(date)

	payments, err := s.payments.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	createdToday, err := s.loans.ListCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	active, err := s.loans.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	expensesToday, err := s.expenses.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	newClients, err := s.clients.ListCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	loanCounts, err := s.loans.CountByClient(ctx)
	if err != nil {
		return nil, err
	}
	transfersPending, err := s.loans.CountActiveTransfersCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := &DailyReport{
		Fecha:          start,
		NombreCobrador: "N/A",
		NumeroRuta:     "N/A",
	}

	collector, err := s.collectors.GetCollectorByID(ctx, collectorID)
	switch {
	case err == nil:
		out.NombreCobrador = collector.FullName()
		out.NumeroRuta = collector.Phone
	case !errors.Is(err, db.ErrNotFound):
		return nil, err
	}

	totalCollected := money.Zero
	for _, p := range payments {
		totalCollected = totalCollected.Add(p.Amount)
	}
	totalLent := money.Zero
	for i := range createdToday {
		totalLent = totalLent.Add(createdToday[i].Principal)
	}
	totalExpenses := money.Zero
	for _, e := range expensesToday {
		totalExpenses = totalExpenses.Add(e.Amount)
	}

	out.TotalCobrado = totalCollected
	out.MoraCobrada = AccruedLateFees(payments)
	out.TotalPrestado = totalLent
	out.TotalGastos = totalExpenses
	out.CantidadPagos = len(payments)
	out.CantidadPrestamos = len(createdToday)
	out.CantidadGastos = len(expensesToday)

	transferTotal, transferCount := SummarizeTransfers(createdToday)
	out.DineroTransferencia = transferTotal
	out.ResumenTransferencias = TransferSummary{
		TotalTransferencia:       transferTotal,
		TransferenciasRealizadas: transferCount,
		TransferenciasPendientes: transfersPending,
	}

	opening := money.Zero
	prev, err := s.closings.GetByDate(ctx, start.AddDate(0, 0, -1))
	switch {
	case err == nil:
		opening = prev.ClosingCash
	case !errors.Is(err, closing.ErrNotFound):
		return nil, err
	}
	out.SaldoInicial = opening
	out.SaldoEfectivo = closing.ComputeClosing(opening, totalCollected, totalLent, totalExpenses)

	todayClosing, err := s.closings.GetByDate(ctx, start)
	switch {
	case err == nil:
		out.Cerrado = true
		out.CierreID = todayClosing.ID
	case !errors.Is(err, closing.ErrNotFound):
		return nil, err
	}

	visited := VisitedClientIDs(payments)
	partition := PartitionByVisit(loan.GroupByClient(active), visited)
	out.ResumenClientes = ClientSummary{
		ClientesNuevos:     len(newClients),
		ClientesVisitados:  len(partition.Visited),
		ClientesPendientes: len(partition.NotVisited),
		ClientesPorVisitar: len(partition.NotVisited),
	}
	out.ResumenPrestamos = LoanSummary{
		NuevosPrestamos:     len(createdToday),
		PrestamosRealizados: len(active),
	}

	candidates := RenewalCandidates(loanCounts)
	out.ResumenRenovaciones = RenewalSummary{
		RenovacionClientes:     len(candidates),
		ClientesPorRenovar:     CountClientsDueForRenewal(active, start),
		RenovacionesPendientes: CountRenewalBacklog(active, start),
		RenovacionesRealizadas: CountRenewalsExecuted(createdToday, candidates),
	}

	out.DetallePagos = paymentLines(payments)
	out.DetallePrestamos = loanLines(createdToday)
	out.DetalleGastos = expenseLines(expensesToday)
	out.DetalleClientesNuevos = clientLines(newClients)

	return out, nil
}

// ClientVisits assembles the route-coverage report: visit partition,
// overdue loans, and the day's collections.
func (s *Service) ClientVisits(ctx context.Context, date time.Time) (*VisitReport, error) {
	start, end := closing.DayWindow(date)

	payments, err := s.payments.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	active, err := s.loans.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	visited := VisitedClientIDs(payments)
	partition := PartitionByVisit(loan.GroupByClient(active), visited)
	overdue := OverdueLoans(active, s.now())

	totalCollected := money.Zero
	for _, p := range payments {
		totalCollected = totalCollected.Add(p.Amount)
	}

	out := &VisitReport{
		Fecha: start.Format("2006-01-02"),
		Resumen: VisitSummary{
			TotalClientes:          len(partition.Visited) + len(partition.NotVisited),
			TotalPrestamosActivos:  len(active),
			TotalPrestamosVencidos: len(overdue),
			TotalCobradoHoy:        totalCollected,
			ClientesVisitados:      len(partition.Visited),
			ClientesNoVisitados:    len(partition.NotVisited),
		},
		Detalles: VisitDetails{
			ClientesVisitados:   visitLines(partition.Visited),
			ClientesNoVisitados: visitLines(partition.NotVisited),
			PrestamosVencidos:   overdue,
			CobrosHoy:           collectionLines(payments),
		},
	}
	return out, nil
}

func paymentLines(payments []loan.Payment) []PaymentLine {
	out := make([]PaymentLine, 0, len(payments))
	for _, p := range payments {
		line := PaymentLine{
			ID:            p.ID,
			Monto:         p.Amount,
			Fecha:         p.Date,
			Observaciones: p.Notes,
		}
		if p.Loan != nil && p.Loan.Client != nil {
			line.Cliente = PaymentClient{
				Nombre:    p.Loan.Client.FirstName,
				Apellido:  p.Loan.Client.LastName,
				Documento: p.Loan.Client.Document,
			}
		}
		out = append(out, line)
	}
	return out
}

func loanLines(loans []loan.Entity) []LoanLine {
	out := make([]LoanLine, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		line := LoanLine{
			ID:          l.ID,
			Monto:       l.Principal,
			Interes:     l.InterestRate,
			FechaInicio: l.StartDate,
		}
		if l.Client != nil {
			line.Cliente = PaymentClient{
				Nombre:   l.Client.FirstName,
				Apellido: l.Client.LastName,
			}
		}
		out = append(out, line)
	}
	return out
}

func expenseLines(expenses []expense.Entity) []ExpenseLine {
	out := make([]ExpenseLine, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, ExpenseLine{
			ID:            e.ID,
			Concepto:      e.Concept,
			Monto:         e.Amount,
			Fecha:         e.Date,
			Observaciones: e.Notes,
		})
	}
	return out
}

func clientLines(clients []client.Entity) []ClientLine {
	out := make([]ClientLine, 0, len(clients))
	for _, c := range clients {
		out = append(out, ClientLine{
			ID:        c.ID,
			Nombre:    c.FirstName,
			Apellido:  c.LastName,
			Documento: c.Document,
		})
	}
	return out
}

func visitLines(bundles []loan.ClientBundle) []ClientVisitLine {
	out := make([]ClientVisitLine, 0, len(bundles))
	for _, b := range bundles {
		paid := money.Zero
		for _, l := range b.Loans {
			paid = paid.Add(l.TotalPaid)
		}
		out = append(out, ClientVisitLine{
			ID:               b.Client.ID,
			Nombre:           b.Client.FullName(),
			PrestamosActivos: len(b.Loans),
			TotalPrestado:    b.TotalPrincipal,
			TotalPagado:      paid,
			SaldoPendiente:   b.TotalPending,
		})
	}
	return out
}

func collectionLines(payments []loan.Payment) []CollectionLine {
	out := make([]CollectionLine, 0, len(payments))
	for _, p := range payments {
		line := CollectionLine{ID: p.ID, Monto: p.Amount, Fecha: p.Date}
		if p.Loan != nil && p.Loan.Client != nil {
			line.Cliente = p.Loan.Client.FullName()
		}
		out = append(out, line)
	}
	return out
}

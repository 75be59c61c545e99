package report

import (
	"testing"
	"time"

	"github.com/cobramax/backend/internal/domain/client"
	"github.com/cobramax/backend/internal/domain/loan"
)

func TestOverdueLoans(t *testing.T) {
	now := day("2024-03-20")
	ana := &client.Entity{ID: "c1", FirstName: "Ana", LastName: "Diaz", Document: "123", Phone: "555"}

	active := []loan.Entity{
		{
			ID: "l1", Status: loan.StatusActive, Client: ana,
			Principal: dec("1000"), InterestRate: dec("20"),
			MaturityDate: day("2024-03-10"),
			Payments:     []loan.Payment{{Amount: dec("400"), Date: day("2024-03-12")}},
		},
		// Not yet matured.
		{ID: "l2", Status: loan.StatusActive, MaturityDate: day("2024-04-01")},
		// Matured but already paid off, the status gates it out.
		{ID: "l3", Status: loan.StatusPaid, MaturityDate: day("2024-01-01")},
	}

	out := OverdueLoans(active, now)
	if len(out) != 1 {
		t.Fatalf("expected 1 overdue loan, got %d", len(out))
	}

	o := out[0]
	if o.ID != "l1" {
		t.Errorf("ID = %q", o.ID)
	}
	if o.DiasVencido != 10 {
		t.Errorf("DiasVencido = %d, want 10", o.DiasVencido)
	}
	// Pending includes interest: 1200 owed minus 400 paid.
	if !o.SaldoPendiente.Equal(dec("800")) {
		t.Errorf("SaldoPendiente = %s, want 800", o.SaldoPendiente)
	}
	if o.Cliente != "Ana Diaz" || o.Documento != "123" || o.Telefono != "555" {
		t.Errorf("client fields = %+v", o)
	}
}

func TestOverdueLoansPartialDayRoundsUp(t *testing.T) {
	now := day("2024-03-10").Add(12 * time.Hour)
	active := []loan.Entity{
		{ID: "l1", Status: loan.StatusActive, Principal: dec("100"), MaturityDate: day("2024-03-09").Add(6 * time.Hour)},
	}

	// 30 hours late counts as 2 days.
	out := OverdueLoans(active, now)
	if len(out) != 1 {
		t.Fatalf("expected 1 overdue loan, got %d", len(out))
	}
	if out[0].DiasVencido != 2 {
		t.Errorf("DiasVencido = %d, want 2", out[0].DiasVencido)
	}
}

func TestOverdueLoansEmpty(t *testing.T) {
	if out := OverdueLoans(nil, day("2024-03-10")); len(out) != 0 {
		t.Errorf("expected none, got %d", len(out))
	}
}

package report

import (
	"testing"

	"github.com/cobramax/backend/internal/domain/loan"
)

func TestRenewalCandidates(t *testing.T) {
	counts := map[string]int64{"c1": 1, "c2": 2, "c3": 5}

	c := RenewalCandidates(counts)
	if len(c) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(c))
	}
	if _, ok := c["c1"]; ok {
		t.Error("single-loan client is not a renewal candidate")
	}
}

func TestCountRenewalsExecuted(t *testing.T) {
	created := []loan.Entity{
		{ID: "l1", ClientID: "c1"},
		{ID: "l2", ClientID: "c2"},
	}
	candidates := map[string]struct{}{"c2": {}}

	if got := CountRenewalsExecuted(created, candidates); got != 1 {
		t.Errorf("CountRenewalsExecuted = %d, want 1", got)
	}
}

func TestCountClientsDueForRenewal(t *testing.T) {
	reportDate := day("2024-03-10")
	active := []loan.Entity{
		// Matures inside the 5-day horizon.
		{ClientID: "c1", Status: loan.StatusActive, MaturityDate: day("2024-03-12")},
		// Exactly on the horizon boundary still counts.
		{ClientID: "c2", Status: loan.StatusActive, MaturityDate: day("2024-03-15")},
		// Beyond the horizon.
		{ClientID: "c3", Status: loan.StatusActive, MaturityDate: day("2024-03-16")},
		// Second loan for c1, counted once per client.
		{ClientID: "c1", Status: loan.StatusActive, MaturityDate: day("2024-03-11")},
	}

	if got := CountClientsDueForRenewal(active, reportDate); got != 2 {
		t.Errorf("CountClientsDueForRenewal = %d, want 2", got)
	}
}

func TestCountRenewalBacklog(t *testing.T) {
	reportDate := day("2024-03-10")
	active := []loan.Entity{
		{ClientID: "c1", Status: loan.StatusActive, MaturityDate: day("2024-03-05")},
		{ClientID: "c2", Status: loan.StatusActive, MaturityDate: day("2024-03-09")},
		// Maturing on the report date is not backlog yet.
		{ClientID: "c3", Status: loan.StatusActive, MaturityDate: day("2024-03-10")},
		{ClientID: "c4", Status: loan.StatusActive, MaturityDate: day("2024-03-20")},
	}

	if got := CountRenewalBacklog(active, reportDate); got != 2 {
		t.Errorf("CountRenewalBacklog = %d, want 2", got)
	}
}

func TestSummarizeTransfers(t *testing.T) {
	created := []loan.Entity{
		{Principal: dec("100"), Channel: loan.ChannelTransfer},
		{Principal: dec("200"), Channel: loan.ChannelCash},
		{Principal: dec("300"), Channel: loan.ChannelTransfer},
	}

	total, count := SummarizeTransfers(created)
	if !total.Equal(dec("400")) {
		t.Errorf("total = %s, want 400", total)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

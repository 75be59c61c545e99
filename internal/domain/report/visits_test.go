package report

import (
	"testing"

	"github.com/cobramax/backend/internal/domain/client"
	"github.com/cobramax/backend/internal/domain/loan"
)

func TestVisitedClientIDs(t *testing.T) {
	ana := &client.Entity{ID: "c1"}
	l := &loan.Entity{ID: "l1", Client: ana}

	payments := []loan.Payment{
		{ID: "p1", Loan: l},
		{ID: "p2", Loan: l},
		{ID: "p3"}, // detached, ignored
	}

	ids := VisitedClientIDs(payments)
	if len(ids) != 1 {
		t.Fatalf("expected 1 visited client, got %d", len(ids))
	}
	if _, ok := ids["c1"]; !ok {
		t.Error("c1 should be visited")
	}
}

func TestPartitionByVisitIsDisjointAndCovering(t *testing.T) {
	bundles := []loan.ClientBundle{
		{Client: &client.Entity{ID: "c1"}},
		{Client: &client.Entity{ID: "c2"}},
		{Client: &client.Entity{ID: "c3"}},
	}
	visited := map[string]struct{}{"c2": {}}

	p := PartitionByVisit(bundles, visited)
	if len(p.Visited) != 1 || p.Visited[0].Client.ID != "c2" {
		t.Errorf("Visited = %+v", p.Visited)
	}
	if len(p.NotVisited) != 2 {
		t.Errorf("NotVisited = %+v", p.NotVisited)
	}
	if len(p.Visited)+len(p.NotVisited) != len(bundles) {
		t.Error("partition must cover every bundle")
	}

	seen := map[string]int{}
	for _, b := range p.Visited {
		seen[b.Client.ID]++
	}
	for _, b := range p.NotVisited {
		seen[b.Client.ID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("client %s appears %d times", id, n)
		}
	}
}

func TestPartitionByVisitEmptyInput(t *testing.T) {
	p := PartitionByVisit(nil, map[string]struct{}{"c1": {}})
	if len(p.Visited) != 0 || len(p.NotVisited) != 0 {
		t.Errorf("expected empty partition, got %+v", p)
	}
}

package report

import (
	"github.com/cobramax/backend/internal/domain/loan"
)

// VisitedClientIDs collects the distinct owning clients of the day's
// payments. A client counts as visited the moment any of their loans
// received a payment.
func VisitedClientIDs(payments []loan.Payment) map[string]struct{} {
	ids := map[string]struct{}{}
	for _, p := range payments {
		if p.Loan == nil || p.Loan.Client == nil {
			continue
		}
		ids[p.Loan.Client.ID] = struct{}{}
	}
	return ids
}

// VisitPartition splits clients holding active loans into visited and
// not visited. The two sides are disjoint and together cover every
// client with at least one active loan; clients without active loans
// appear on neither side.
type VisitPartition struct {
	Visited    []loan.ClientBundle
	NotVisited []loan.ClientBundle
}

func PartitionByVisit(bundles []loan.ClientBundle, visited map[string]struct{}) VisitPartition {
	out := VisitPartition{
		Visited:    []loan.ClientBundle{},
		NotVisited: []loan.ClientBundle{},
	}
	for _, b := range bundles {
		if _, ok := visited[b.Client.ID]; ok {
			out.Visited = append(out.Visited, b)
		} else {
			out.NotVisited = append(out.NotVisited, b)
		}
	}
	return out
}

package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cobramax/backend/internal/domain/loan"
	"github.com/cobramax/backend/internal/money"
)

// renewalDueSoonDays is how far ahead a maturing loan flags its client
// as a renewal prospect.
const renewalDueSoonDays = 5

// RenewalCandidates returns the clients holding more than one loan
// all-time, in any state.
func RenewalCandidates(loanCounts map[string]int64) map[string]struct{} {
	out := map[string]struct{}{}
	for clientID, n := range loanCounts {
		if n > 1 {
			out[clientID] = struct{}{}
		}
	}
	return out
}

// CountRenewalsExecuted counts today's new loans that went to a
// renewal candidate.
func CountRenewalsExecuted(createdToday []loan.Entity, candidates map[string]struct{}) int {
	n := 0
	for i := range createdToday {
		if _, ok := candidates[createdToday[i].ClientID]; ok {
			n++
		}
	}
	return n
}

// CountClientsDueForRenewal counts distinct clients holding an active
// loan maturing on or before reportDate + 5 days.
func CountClientsDueForRenewal(active []loan.Entity, reportDate time.Time) int {
	limit := reportDate.AddDate(0, 0, renewalDueSoonDays)
	seen := map[string]struct{}{}
	for i := range active {
		l := &active[i]
		if l.Status == loan.StatusActive && !l.MaturityDate.After(limit) {
			seen[l.ClientID] = struct{}{}
		}
	}
	return len(seen)
}

// CountRenewalBacklog counts active loans whose maturity falls strictly
// before the report's target date. This deliberately compares against
// the report date, not wall-clock now: the overdue detector answers a
// different question.
func CountRenewalBacklog(active []loan.Entity, reportDate time.Time) int {
	n := 0
	for i := range active {
		l := &active[i]
		if l.Status == loan.StatusActive && l.MaturityDate.Before(reportDate) {
			n++
		}
	}
	return n
}

// SummarizeTransfers totals the transfer-funded loans among today's
// new loans.
func SummarizeTransfers(createdToday []loan.Entity) (total decimal.Decimal, count int) {
	total = money.Zero
	for i := range createdToday {
		l := &createdToday[i]
		if l.Channel == loan.ChannelTransfer {
			total = total.Add(l.Principal)
			count++
		}
	}
	return total, count
}

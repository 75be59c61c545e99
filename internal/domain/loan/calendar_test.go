package loan

import "testing"

func TestDaysPerPeriod(t *testing.T) {
	cases := []struct {
		freq PaymentFrequency
		want int
	}{
		{FreqDaily, 1},
		{FreqMondayToFriday, 1},
		{FreqMondayToSaturday, 1},
		{FreqWeekly, 7},
		{FreqEvery14Days, 14},
		{FreqBiweekly, 15},
		{FreqMonthly, 30},
		{FreqEndOfMonth, 30},
		{FreqQuarterly, 90},
		{FreqFourMonthly, 120},
		{FreqSemiannual, 180},
		{FreqAnnual, 365},
		{PaymentFrequency("ALGO_RARO"), 1},
		{PaymentFrequency(""), 1},
	}
	for _, c := range cases {
		if got := DaysPerPeriod(c.freq); got != c.want {
			t.Errorf("DaysPerPeriod(%q) = %d, want %d", c.freq, got, c.want)
		}
	}
}

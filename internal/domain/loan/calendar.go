package loan

type PaymentFrequency string

const (
	FreqDaily            PaymentFrequency = "DIARIO"
	FreqMondayToFriday   PaymentFrequency = "LUNES_A_VIERNES"
	FreqMondayToSaturday PaymentFrequency = "LUNES_A_SABADO"
	FreqWeekly           PaymentFrequency = "SEMANAL"
	FreqEvery14Days      PaymentFrequency = "CATORCENAL"
	FreqBiweekly         PaymentFrequency = "QUINCENAL"
	FreqMonthly          PaymentFrequency = "MENSUAL"
	FreqEndOfMonth       PaymentFrequency = "FIN_DE_MES"
	FreqQuarterly        PaymentFrequency = "TRIMESTRAL"
	FreqFourMonthly      PaymentFrequency = "CUATRIMESTRAL"
	FreqSemiannual       PaymentFrequency = "SEMESTRAL"
	FreqAnnual           PaymentFrequency = "ANUAL"
)

var daysPerPeriod = map[PaymentFrequency]int{
	FreqDaily:            1,
	FreqMondayToFriday:   1,
	FreqMondayToSaturday: 1,
	FreqWeekly:           7,
	FreqEvery14Days:      14,
	FreqBiweekly:         15,
	FreqMonthly:          30,
	FreqEndOfMonth:       30,
	FreqQuarterly:        90,
	FreqFourMonthly:      120,
	FreqSemiannual:       180,
	FreqAnnual:           365,
}

// DaysPerPeriod maps a payment frequency to the days in one installment
// period. Unknown codes fall back to daily.
func DaysPerPeriod(f PaymentFrequency) int {
	if d, ok := daysPerPeriod[f]; ok {
		return d
	}
	return 1
}

package entity

import "strconv"

// Period selects bucket granularity and count.
type Period string

const (
	Period24h     Period = "24h"
	Period7d      Period = "7d"
	Period30d     Period = "30d"
	PeriodMonthly Period = "mensal"
)

// PeriodSpec holds the fixed constants of one period.
type PeriodSpec struct {
	Period           Period
	Title            string
	Buckets          int
	Base             float64
	Range            float64
	Offset           int
	MinutesPerBucket float64
	Label            func(i int) string
}

var weekdays = []string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sáb", "Dom"}

var months = []string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

var periodSpecs = map[Period]PeriodSpec{
	Period24h: {
		Period: Period24h, Title: "Últimas 24h", Buckets: 24,
		Base: 0.18, Range: 0.25, Offset: 1, MinutesPerBucket: 60,
		Label: func(i int) string { return strconv.Itoa(i) + "h" },
	},
	Period7d: {
		Period: Period7d, Title: "Últimos 7 dias", Buckets: 7,
		Base: 0.2, Range: 0.22, Offset: 11, MinutesPerBucket: 1440,
		Label: func(i int) string { return weekdays[i] },
	},
	Period30d: {
		Period: Period30d, Title: "Últimos 30 dias", Buckets: 30,
		Base: 0.17, Range: 0.28, Offset: 21, MinutesPerBucket: 1440,
		Label: func(i int) string { return strconv.Itoa(i + 1) },
	},
	// mensal trata cada mês como 30 dias
	PeriodMonthly: {
		Period: PeriodMonthly, Title: "Últimos 12 meses", Buckets: 12,
		Base: 0.19, Range: 0.24, Offset: 31, MinutesPerBucket: 30 * 1440,
		Label: func(i int) string { return months[i] },
	},
}

// LookupPeriod returns the fixed constants of a period.
func LookupPeriod(p Period) (PeriodSpec, bool) {
	spec, ok := periodSpecs[p]
	return spec, ok
}

// MinutesPerBucket returns the extrapolation weight of one bucket, or 0 for unknown periods.
func (p Period) MinutesPerBucket() float64 {
	return periodSpecs[p].MinutesPerBucket
}

// Valid reports whether p is a known period.
func (p Period) Valid() bool {
	_, ok := periodSpecs[p]
	return ok
}

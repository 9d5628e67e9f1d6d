package entity

// Summary holds the KPIs derived from a series, in the series' base currency.
type Summary struct {
	Average float64 `json:"average"`
	Total   float64 `json:"total"`
	Peak    float64 `json:"peak"`
	TrendUp bool    `json:"trend_up"`
	// LossMinutes is only set by variants with a loss-rate model.
	LossMinutes *int `json:"loss_minutes,omitempty"`
}

package entity

import "time"

// Dashboard is one fully computed view of the page, ready to render or export.
type Dashboard struct {
	Title       string       `json:"title"`
	Variant     string       `json:"variant"`
	Selection   Selection    `json:"selection"`
	PeriodTitle string       `json:"period_title"`
	Rate        float64      `json:"rate"`
	Points      []Point      `json:"points"`
	Summary     Summary      `json:"summary"`
	Drivers     []CostDriver `json:"cost_drivers"`
	Headlines   []string     `json:"headlines,omitempty"`
	GeneratedAt time.Time    `json:"generated_at"`
}

const (
	DashboardTitle       = "Painel de Custo por Minuto"
	DashboardDescription = "Visualize indicadores essenciais e tendências de custo por minuto."
)

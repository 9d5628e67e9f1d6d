package entity

// CostDriver is an illustrative cost-center row. It is configured, never derived from the series.
type CostDriver struct {
	Name  string  `json:"name"`
	CPM   float64 `json:"cpm"`
	Share float64 `json:"share"`
}

// DefaultCostDrivers returns the placeholder breakdown shown when no config overrides it.
func DefaultCostDrivers() []CostDriver {
	return []CostDriver{
		{Name: "Atendimento", CPM: 0.26, Share: 0.38},
		{Name: "Infraestrutura", CPM: 0.21, Share: 0.27},
		{Name: "Licenças", CPM: 0.19, Share: 0.2},
		{Name: "Treinamento", CPM: 0.16, Share: 0.15},
	}
}

package entity

// AllUnits is the unit option that aggregates every organizational unit.
const AllUnits = "Todas"

// LossRateModel is the placeholder loss-minutes model: one rate for "all units", another for a single unit.
type LossRateModel struct {
	AllUnits   float64 `json:"all_units"`
	SingleUnit float64 `json:"single_unit"`
}

// Rate picks the rate for the selected unit.
func (m LossRateModel) Rate(unit string) float64 {
	if unit == "" || unit == AllUnits {
		return m.AllUnits
	}
	return m.SingleUnit
}

// Variant describes one dashboard configuration: which filters it offers and which metrics it shows.
type Variant struct {
	Name       string         `json:"name"`
	Periods    []Period       `json:"periods"`
	Units      []string       `json:"units,omitempty"`
	Currencies []string       `json:"currencies"`
	LossModel  *LossRateModel `json:"loss_model,omitempty"`
}

// HasUnits reports whether the variant exposes the unit filter.
func (v Variant) HasUnits() bool { return len(v.Units) > 0 }

// OffersPeriod reports whether p is selectable in this variant.
func (v Variant) OffersPeriod(p Period) bool {
	for _, candidate := range v.Periods {
		if candidate == p {
			return true
		}
	}
	return false
}

// OffersUnit reports whether unit is selectable in this variant.
func (v Variant) OffersUnit(unit string) bool {
	if !v.HasUnits() {
		return unit == ""
	}
	return contains(v.Units, unit)
}

// OffersCurrency reports whether code is selectable in this variant.
func (v Variant) OffersCurrency(code string) bool {
	return contains(v.Currencies, code)
}

// DefaultSelection returns the initial filter state of the variant.
func (v Variant) DefaultSelection() Selection {
	sel := Selection{Period: v.Periods[0], Currency: v.Currencies[0]}
	if v.HasUnits() {
		sel.Unit = v.Units[0]
	}
	return sel
}

const (
	VariantCost  = "custo"
	VariantUnits = "unidades"
)

// BuiltinVariants returns the two dashboards shipped with the CLI.
func BuiltinVariants() map[string]Variant {
	return map[string]Variant{
		VariantCost: {
			Name:       VariantCost,
			Periods:    []Period{Period24h, Period7d, Period30d},
			Currencies: []string{"BRL", "USD"},
		},
		VariantUnits: {
			Name:       VariantUnits,
			Periods:    []Period{Period24h, Period7d, Period30d, PeriodMonthly},
			Units:      []string{AllUnits, "Unidade A", "Unidade B", "Unidade C"},
			Currencies: []string{"BRL"},
			LossModel:  &LossRateModel{AllUnits: 0.02, SingleUnit: 0.025},
		},
	}
}

// Selection is the current filter state of a dashboard page.
type Selection struct {
	Period   Period `json:"period"`
	Unit     string `json:"unit,omitempty"`
	Currency string `json:"currency"`
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

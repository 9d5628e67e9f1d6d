package service

import (
	"fmt"

	"github.com/diillson/cpm-dashboard-go/internal/domain/entity"
	"github.com/diillson/cpm-dashboard-go/internal/shared/types"
	"github.com/diillson/cpm-dashboard-go/pkg/money"
)

// Card tones. Rising cost is "up".
const (
	ToneUp   = "up"
	ToneDown = "down"
)

// BuildCards formats the KPI cards of a view in its selected currency.
// The loss-minutes card only appears for variants with a loss-rate model.
func BuildCards(view entity.Dashboard) ([]types.Card, error) {
	code := view.Selection.Currency
	format := func(v float64) (string, error) {
		return money.Format(v*view.Rate, code)
	}

	avg, err := format(view.Summary.Average)
	if err != nil {
		return nil, err
	}
	total, err := format(view.Summary.Total)
	if err != nil {
		return nil, err
	}
	peak, err := format(view.Summary.Peak)
	if err != nil {
		return nil, err
	}

	tone, trend := ToneDown, "Baixa"
	if view.Summary.TrendUp {
		tone, trend = ToneUp, "Alta"
	}

	cards := []types.Card{
		{Title: "Custo médio por min", Value: avg, Tone: tone},
		{Title: "Custo total (período)", Value: total},
		{Title: "Pico de custo/min", Value: peak},
		{Title: "Tendência", Value: trend, Tone: tone},
	}
	if view.Summary.LossMinutes != nil {
		cards = append(cards, types.Card{
			Title: "Minutos perdidos",
			Value: fmt.Sprintf("%d min", *view.Summary.LossMinutes),
		})
	}
	return cards, nil
}

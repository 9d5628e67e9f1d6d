package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/cpm-dashboard-go/internal/domain/entity"
)

func series(values ...float64) []entity.Point {
	points := make([]entity.Point, len(values))
	for i, v := range values {
		points[i] = entity.Point{Label: string(rune('a' + i)), Value: v}
	}
	return points
}

func TestAveragePeakTotal(t *testing.T) {
	points := series(0.2, 0.4, 0.3)

	assert.InDelta(t, 0.3, Average(points), 1e-12)
	assert.InDelta(t, 0.4, Peak(points), 1e-12)
	assert.InDelta(t, (0.2+0.4+0.3)*60, Total(points, entity.Period24h), 1e-9)
	assert.InDelta(t, (0.2+0.4+0.3)*1440, Total(points, entity.Period7d), 1e-9)
	assert.InDelta(t, (0.2+0.4+0.3)*43200, Total(points, entity.PeriodMonthly), 1e-9)
}

func TestTotalMatchesAverageIdentity(t *testing.T) {
	points := series(0.18, 0.33, 0.41, 0.27, 0.22)
	for _, period := range []entity.Period{entity.Period24h, entity.Period7d, entity.Period30d, entity.PeriodMonthly} {
		want := Average(points) * float64(len(points)) * period.MinutesPerBucket()
		assert.InDelta(t, want, Total(points, period), 1e-6, string(period))
	}
}

func TestTrendUpComparesEndpointsOnly(t *testing.T) {
	tests := []struct {
		name   string
		points []entity.Point
		want   bool
	}{
		{"subida", series(0.2, 0.1, 0.3), true},
		{"queda", series(0.3, 0.9, 0.2), false},
		{"empate conta como alta", series(0.25, 0.1, 0.25), true},
		{"ponto único", series(0.25), true},
		{"vazio", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrendUp(tt.points))
		})
	}
}

func TestEmptySeriesDoesNotPanic(t *testing.T) {
	assert.Zero(t, Average(nil))
	assert.Zero(t, Peak(nil))
	assert.Zero(t, Total(nil, entity.Period24h))
}

func TestLossMinutes(t *testing.T) {
	assert.Equal(t, 29, LossMinutes(24, entity.Period24h, 0.02))  // 24*60*0.02 = 28.8
	assert.Equal(t, 36, LossMinutes(24, entity.Period24h, 0.025)) // 36
	assert.Equal(t, 252, LossMinutes(7, entity.Period7d, 0.025))  // 252
	assert.Equal(t, 10368, LossMinutes(12, entity.PeriodMonthly, 0.02))
}

func TestSummarize(t *testing.T) {
	points := series(0.2, 0.4)

	plain := Summarize(entity.Period24h, points, nil, "")
	assert.Nil(t, plain.LossMinutes)
	assert.True(t, plain.TrendUp)

	model := &entity.LossRateModel{AllUnits: 0.02, SingleUnit: 0.025}
	all := Summarize(entity.Period24h, points, model, entity.AllUnits)
	require.NotNil(t, all.LossMinutes)
	assert.Equal(t, 2, *all.LossMinutes) // 2*60*0.02 = 2.4

	single := Summarize(entity.Period24h, points, model, "Unidade A")
	require.NotNil(t, single.LossMinutes)
	assert.Equal(t, 3, *single.LossMinutes) // 2*60*0.025 = 3
}

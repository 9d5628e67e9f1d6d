package service

import (
	"math"

	"github.com/diillson/cpm-dashboard-go/internal/domain/entity"
)

// Average returns the arithmetic mean of the series values.
func Average(points []entity.Point) float64 {
	if len(points) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range points {
		sum += p.Value
	}
	return sum / float64(len(points))
}

// Total extrapolates the per-minute values to the whole period using the bucket weight.
func Total(points []entity.Point, period entity.Period) float64 {
	perBucketMinutes := period.MinutesPerBucket()
	total := 0.0
	for _, p := range points {
		total += p.Value * perBucketMinutes
	}
	return total
}

// Peak returns the largest value of the series.
func Peak(points []entity.Point) float64 {
	if len(points) == 0 {
		return 0
	}
	peak := points[0].Value
	for _, p := range points[1:] {
		if p.Value > peak {
			peak = p.Value
		}
	}
	return peak
}

// TrendUp compares only the endpoints of the series: last >= first.
func TrendUp(points []entity.Point) bool {
	if len(points) == 0 {
		return false
	}
	return points[len(points)-1].Value >= points[0].Value
}

// LossMinutes is the illustrative minutes-lost figure: bucketCount * minutesPerBucket * lossRate, rounded.
func LossMinutes(bucketCount int, period entity.Period, lossRate float64) int {
	return int(math.Round(float64(bucketCount) * period.MinutesPerBucket() * lossRate))
}

// Summarize computes every KPI of a series. model may be nil for variants without loss minutes.
func Summarize(period entity.Period, points []entity.Point, model *entity.LossRateModel, unit string) entity.Summary {
	summary := entity.Summary{
		Average: Average(points),
		Total:   Total(points, period),
		Peak:    Peak(points),
		TrendUp: TrendUp(points),
	}
	if model != nil {
		loss := LossMinutes(len(points), period, model.Rate(unit))
		summary.LossMinutes = &loss
	}
	return summary
}

package repository

import (
	"context"

	"github.com/diillson/cpm-dashboard-go/internal/domain/entity"
)

// SeriesRepository defines the source of cost-per-minute series.
type SeriesRepository interface {
	// GenerateSeries returns the ordered points for a period; unit is empty when the variant has no unit filter.
	GenerateSeries(ctx context.Context, period entity.Period, unit string) ([]entity.Point, error)
}

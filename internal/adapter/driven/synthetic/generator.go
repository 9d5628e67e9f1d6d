package synthetic

import (
	"fmt"

	"github.com/diillson/cpm-dashboard-go/internal/domain/entity"
	"github.com/diillson/cpm-dashboard-go/internal/shared/types"
)

// Generate builds the synthetic series for a period. The unit seeds the PRNG; an empty unit
// reproduces the unseeded series of the currency dashboard.
func Generate(period entity.Period, unit string) ([]entity.Point, error) {
	spec, ok := entity.LookupPeriod(period)
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownPeriod, period)
	}

	rand := SeedFrom(unit)
	points := make([]entity.Point, spec.Buckets)
	for i := range points {
		points[i] = entity.Point{
			Label: spec.Label(i),
			Value: spec.Base + rand(i+spec.Offset)*spec.Range, // custo/min
		}
	}
	return points, nil
}

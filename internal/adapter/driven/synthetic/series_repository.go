package synthetic

import (
	"context"

	"github.com/diillson/cpm-dashboard-go/internal/domain/entity"
	"github.com/diillson/cpm-dashboard-go/internal/domain/repository"
	"github.com/diillson/cpm-dashboard-go/pkg/log"
)

// SeriesRepositoryImpl implementa o SeriesRepository com dados sintéticos.
type SeriesRepositoryImpl struct{}

// NewSeriesRepository cria uma nova implementação do SeriesRepository.
func NewSeriesRepository() repository.SeriesRepository {
	return &SeriesRepositoryImpl{}
}

// GenerateSeries gera a série determinística para o período e unidade.
func (r *SeriesRepositoryImpl) GenerateSeries(ctx context.Context, period entity.Period, unit string) ([]entity.Point, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	points, err := Generate(period, unit)
	if err != nil {
		return nil, err
	}
	log.ForContext(ctx).WithFields(log.Fields{
		"period": period,
		"unit":   unit,
		"points": len(points),
	}).Debug("synthetic series generated")
	return points, nil
}

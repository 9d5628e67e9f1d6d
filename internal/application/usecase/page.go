package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diillson/cpm-dashboard-go/internal/domain/entity"
	"github.com/diillson/cpm-dashboard-go/internal/domain/repository"
	"github.com/diillson/cpm-dashboard-go/internal/domain/service"
	"github.com/diillson/cpm-dashboard-go/internal/shared/types"
	"github.com/diillson/cpm-dashboard-go/pkg/log"
	"github.com/diillson/cpm-dashboard-go/pkg/money"
)

// DefaultLoadingDelay is the simulated latency of "Aplicar filtros".
const DefaultLoadingDelay = 600 * time.Millisecond

// PageOptions configures a dashboard page.
type PageOptions struct {
	Variant      entity.Variant
	Rates        map[string]float64
	Drivers      []entity.CostDriver
	Headlines    []string
	LoadingDelay time.Duration
}

type memoEntry struct {
	period  entity.Period
	unit    string
	points  []entity.Point
	summary entity.Summary
}

// Page holds the UI state of one dashboard: selected filters and the loading flag.
type Page struct {
	series repository.SeriesRepository
	opts   PageOptions
	now    func() time.Time

	mu      sync.Mutex
	sel     entity.Selection
	loading bool
	gen     int
	timer   *time.Timer
	idle    chan struct{}
	memo    *memoEntry
}

// NewPage cria uma página com a seleção padrão da variante.
func NewPage(series repository.SeriesRepository, opts PageOptions) *Page {
	if opts.Rates == nil {
		opts.Rates = money.DefaultRates()
	}
	if opts.Drivers == nil {
		opts.Drivers = entity.DefaultCostDrivers()
	}
	if opts.LoadingDelay <= 0 {
		opts.LoadingDelay = DefaultLoadingDelay
	}
	return &Page{
		series: series,
		opts:   opts,
		now:    time.Now,
		sel:    opts.Variant.DefaultSelection(),
	}
}

// Variant returns the page's variant.
func (p *Page) Variant() entity.Variant { return p.opts.Variant }

// Selection returns the current filters.
func (p *Page) Selection() entity.Selection {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sel
}

// SetPeriod changes the period filter.
func (p *Page) SetPeriod(period entity.Period) error {
	if !period.Valid() {
		return fmt.Errorf("%w: %q", types.ErrUnknownPeriod, period)
	}
	if !p.opts.Variant.OffersPeriod(period) {
		return fmt.Errorf("%w: period %q", types.ErrInvalidSelection, period)
	}
	p.mu.Lock()
	p.sel.Period = period
	p.mu.Unlock()
	return nil
}

// SetUnit changes the unit filter.
func (p *Page) SetUnit(unit string) error {
	if !p.opts.Variant.OffersUnit(unit) {
		return fmt.Errorf("%w: unit %q", types.ErrInvalidSelection, unit)
	}
	p.mu.Lock()
	p.sel.Unit = unit
	p.mu.Unlock()
	return nil
}

// SetCurrency changes the display currency. The series is not regenerated.
func (p *Page) SetCurrency(code string) error {
	if !p.opts.Variant.OffersCurrency(code) {
		return fmt.Errorf("%w: currency %q", types.ErrInvalidSelection, code)
	}
	if _, err := money.Convert(0, code, p.opts.Rates); err != nil {
		return err
	}
	p.mu.Lock()
	p.sel.Currency = code
	p.mu.Unlock()
	return nil
}

// View computes the dashboard for the current selection. Series and summary are memoized
// on (period, unit); changing only the currency reuses them.
func (p *Page) View(ctx context.Context) (entity.Dashboard, error) {
	p.mu.Lock()
	sel := p.sel
	memo := p.memo
	p.mu.Unlock()

	if memo == nil || memo.period != sel.Period || memo.unit != sel.Unit {
		points, err := p.series.GenerateSeries(ctx, sel.Period, sel.Unit)
		if err != nil {
			return entity.Dashboard{}, fmt.Errorf("error generating series: %w", err)
		}
		memo = &memoEntry{
			period:  sel.Period,
			unit:    sel.Unit,
			points:  points,
			summary: service.Summarize(sel.Period, points, p.opts.Variant.LossModel, sel.Unit),
		}
		p.mu.Lock()
		p.memo = memo
		p.mu.Unlock()
		log.ForContext(ctx).WithField("selection", sel).Debug("dashboard recomputed")
	}

	rate, err := money.Convert(1, sel.Currency, p.opts.Rates)
	if err != nil {
		return entity.Dashboard{}, err
	}

	spec, _ := entity.LookupPeriod(sel.Period)
	return entity.Dashboard{
		Title:       entity.DashboardTitle,
		Variant:     p.opts.Variant.Name,
		Selection:   sel,
		PeriodTitle: spec.Title,
		Rate:        rate,
		Points:      append([]entity.Point(nil), memo.points...),
		Summary:     memo.summary,
		Drivers:     p.opts.Drivers,
		Headlines:   p.opts.Headlines,
		GeneratedAt: p.now(),
	}, nil
}

// ApplyFilters sets the loading flag and clears it after the loading delay.
// Calling it again while loading restarts the delay.
func (p *Page) ApplyFilters() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
	}
	if !p.loading {
		p.idle = make(chan struct{})
	}
	p.loading = true
	p.gen++
	gen := p.gen
	p.timer = time.AfterFunc(p.opts.LoadingDelay, func() { p.finishLoading(gen) })
}

func (p *Page) finishLoading(gen int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	// a newer ApplyFilters owns the flag
	if gen != p.gen || !p.loading {
		return
	}
	p.loading = false
	p.timer = nil
	close(p.idle)
	p.idle = nil
}

// Loading reports whether filters are being applied.
func (p *Page) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// WaitIdle blocks until the loading flag is cleared or ctx ends.
func (p *Page) WaitIdle(ctx context.Context) error {
	p.mu.Lock()
	idle := p.idle
	p.mu.Unlock()
	if idle == nil {
		return nil
	}
	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

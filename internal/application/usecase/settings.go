package usecase

import (
	"fmt"
	"time"

	"github.com/diillson/cpm-dashboard-go/internal/domain/entity"
	"github.com/diillson/cpm-dashboard-go/internal/shared/types"
	"github.com/diillson/cpm-dashboard-go/pkg/money"
	"github.com/diillson/cpm-dashboard-go/pkg/ticker"
)

// Settings is the effective configuration after merging defaults, config file, environment and flags.
type Settings struct {
	Variant      string
	Period       string
	Unit         string
	Currency     string
	Rates        map[string]float64
	Drivers      []entity.CostDriver
	LossRates    *entity.LossRateModel
	TickerItems  []string
	TickerSpeed  time.Duration
	LoadingDelay time.Duration
	ReportName   string
	ReportType   []string
	Dir          string
	LogLevel     string
}

func defaultSettings() *Settings {
	return &Settings{
		Variant:      entity.VariantCost,
		Rates:        money.DefaultRates(),
		Drivers:      entity.DefaultCostDrivers(),
		TickerItems:  ticker.DefaultItems(),
		TickerSpeed:  ticker.DefaultSpeed,
		LoadingDelay: DefaultLoadingDelay,
		ReportType:   []string{"csv"},
	}
}

// ResolveSettings merges configuration sources. Precedence: flags > env > file > defaults.
func (uc *DashboardUseCase) ResolveSettings(args *types.CLIArgs) (*Settings, error) {
	s := defaultSettings()

	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		applyConfigFile(s, cfg)
	}

	env, err := uc.configRepo.LoadEnv()
	if err != nil {
		return nil, err
	}
	if env != nil {
		override(&s.Variant, env.Variant)
		override(&s.Period, env.Period)
		override(&s.Unit, env.Unit)
		override(&s.Currency, env.Currency)
		override(&s.LogLevel, env.LogLevel)
		override(&s.Dir, env.Dir)
	}

	override(&s.Variant, args.Variant)
	override(&s.Period, args.Period)
	override(&s.Unit, args.Unit)
	override(&s.Currency, args.Currency)
	override(&s.ReportName, args.ReportName)
	override(&s.Dir, args.Dir)
	override(&s.LogLevel, args.LogLevel)
	if len(args.ReportType) > 0 {
		s.ReportType = args.ReportType
	}

	return s, nil
}

func applyConfigFile(s *Settings, cfg *types.Config) {
	override(&s.Variant, cfg.Variant)
	override(&s.Period, cfg.Period)
	override(&s.Unit, cfg.Unit)
	override(&s.Currency, cfg.Currency)
	override(&s.ReportName, cfg.ReportName)
	override(&s.Dir, cfg.Dir)
	override(&s.LogLevel, cfg.LogLevel)

	for code, rate := range cfg.CurrencyRates {
		s.Rates[code] = rate
	}
	if len(cfg.CostDrivers) > 0 {
		drivers := make([]entity.CostDriver, len(cfg.CostDrivers))
		for i, d := range cfg.CostDrivers {
			drivers[i] = entity.CostDriver{Name: d.Name, CPM: d.CPM, Share: d.Share}
		}
		s.Drivers = drivers
	}
	if cfg.LossRates != nil {
		s.LossRates = &entity.LossRateModel{AllUnits: cfg.LossRates.AllUnits, SingleUnit: cfg.LossRates.SingleUnit}
	}
	if len(cfg.TickerItems) > 0 {
		s.TickerItems = cfg.TickerItems
	}
	if cfg.TickerSpeedSeconds > 0 {
		s.TickerSpeed = time.Duration(cfg.TickerSpeedSeconds) * time.Second
	}
	if cfg.LoadingDelayMs > 0 {
		s.LoadingDelay = time.Duration(cfg.LoadingDelayMs) * time.Millisecond
	}
	if len(cfg.ReportType) > 0 {
		s.ReportType = cfg.ReportType
	}
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// NewPage builds the page described by the settings and applies the selected filters.
func (uc *DashboardUseCase) NewPage(s *Settings) (*Page, error) {
	variant, ok := entity.BuiltinVariants()[s.Variant]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownVariant, s.Variant)
	}
	if variant.LossModel != nil && s.LossRates != nil {
		model := *s.LossRates
		variant.LossModel = &model
	}

	page := NewPage(uc.seriesRepo, PageOptions{
		Variant:      variant,
		Rates:        s.Rates,
		Drivers:      s.Drivers,
		Headlines:    s.TickerItems,
		LoadingDelay: s.LoadingDelay,
	})

	if s.Period != "" {
		if err := page.SetPeriod(entity.Period(s.Period)); err != nil {
			return nil, err
		}
	}
	if s.Unit != "" {
		if err := page.SetUnit(s.Unit); err != nil {
			return nil, err
		}
	}
	if s.Currency != "" {
		if err := page.SetCurrency(s.Currency); err != nil {
			return nil, err
		}
	}
	return page, nil
}

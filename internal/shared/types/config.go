package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Variant            string             `json:"variant" yaml:"variant" toml:"variant" validate:"omitempty,oneof=custo unidades"`
	Period             string             `json:"period" yaml:"period" toml:"period" validate:"omitempty,oneof=24h 7d 30d mensal"`
	Unit               string             `json:"unit" yaml:"unit" toml:"unit"`
	Currency           string             `json:"currency" yaml:"currency" toml:"currency" validate:"omitempty,len=3,uppercase"`
	CurrencyRates      map[string]float64 `json:"currency_rates" yaml:"currency_rates" toml:"currency_rates" validate:"omitempty,dive,keys,len=3,endkeys,gt=0"`
	CostDrivers        []CostDriverConfig `json:"cost_drivers" yaml:"cost_drivers" toml:"cost_drivers" validate:"omitempty,dive"`
	LossRates          *LossRatesConfig   `json:"loss_rates" yaml:"loss_rates" toml:"loss_rates" validate:"omitempty"`
	TickerItems        []string           `json:"ticker_items" yaml:"ticker_items" toml:"ticker_items" validate:"omitempty,dive,required"`
	TickerSpeedSeconds int                `json:"ticker_speed_seconds" yaml:"ticker_speed_seconds" toml:"ticker_speed_seconds" validate:"gte=0"`
	LoadingDelayMs     int                `json:"loading_delay_ms" yaml:"loading_delay_ms" toml:"loading_delay_ms" validate:"gte=0"`
	ReportName         string             `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType         []string           `json:"report_type" yaml:"report_type" toml:"report_type" validate:"omitempty,dive,oneof=csv json pdf html"`
	Dir                string             `json:"dir" yaml:"dir" toml:"dir"`
	LogLevel           string             `json:"log_level" yaml:"log_level" toml:"log_level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
}

// CostDriverConfig overrides one row of the cost-center table.
type CostDriverConfig struct {
	Name  string  `json:"name" yaml:"name" toml:"name" validate:"required"`
	CPM   float64 `json:"cpm" yaml:"cpm" toml:"cpm" validate:"gte=0"`
	Share float64 `json:"share" yaml:"share" toml:"share" validate:"gte=0,lte=1"`
}

// LossRatesConfig overrides the illustrative loss-rate model.
type LossRatesConfig struct {
	AllUnits   float64 `json:"all_units" yaml:"all_units" toml:"all_units" validate:"gte=0,lte=1"`
	SingleUnit float64 `json:"single_unit" yaml:"single_unit" toml:"single_unit" validate:"gte=0,lte=1"`
}

// EnvOverrides holds the CPM_* environment variables.
type EnvOverrides struct {
	Variant  string `envconfig:"VARIANT"`
	Period   string `envconfig:"PERIOD"`
	Unit     string `envconfig:"UNIT"`
	Currency string `envconfig:"CURRENCY"`
	LogLevel string `envconfig:"LOG_LEVEL"`
	Dir      string `envconfig:"DIR"`
}

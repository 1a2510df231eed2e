package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"option-surface/internal/logging"
	"option-surface/internal/pricing"
)

// Config materialises application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Logging   logging.Config  `mapstructure:"logging"`
	Contract  ContractConfig  `mapstructure:"contract"`
	Market    MarketConfig    `mapstructure:"market"`
	Valuation ValuationConfig `mapstructure:"valuation"`
	Grid      GridConfig      `mapstructure:"grid"`
	Export    ExportConfig    `mapstructure:"export"`
	Watch     WatchConfig     `mapstructure:"watch"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// ContractConfig describes the option being valued.
type ContractConfig struct {
	Kind        string  `mapstructure:"kind"`
	Strike      float64 `mapstructure:"strike"`
	Cost        float64 `mapstructure:"cost"`
	Expiry      string  `mapstructure:"expiry"`
	TenorMonths int     `mapstructure:"tenor_months"`
}

// MarketConfig holds the single-point market inputs.
type MarketConfig struct {
	UnderlyingPrice float64 `mapstructure:"underlying_price"`
	Volatility      float64 `mapstructure:"volatility"`
	RiskFreeRate    float64 `mapstructure:"risk_free_rate"`
}

// Valuation methods accepted by ValuationConfig.Method.
const (
	MethodBlackScholes = "bs"
	MethodTree         = "tree"
	MethodMonteCarlo   = "mc"
)

// ValuationConfig selects the single-point pricing method.
type ValuationConfig struct {
	Method     string           `mapstructure:"method"`
	TreeSteps  int              `mapstructure:"tree_steps"`
	MonteCarlo MonteCarloConfig `mapstructure:"monte_carlo"`
}

// MonteCarloConfig sizes the Monte Carlo simulation.
type MonteCarloConfig struct {
	Paths int    `mapstructure:"paths"`
	Steps int    `mapstructure:"steps"`
	Seed  uint64 `mapstructure:"seed"`
}

// LimitsConfig mirrors pricing.ShockLimits.
type LimitsConfig struct {
	Down  float64 `mapstructure:"down"`
	Up    float64 `mapstructure:"up"`
	Steps int     `mapstructure:"steps"`
}

// GridConfig defines the shock grid around the base point.
type GridConfig struct {
	BasePrice        float64      `mapstructure:"base_price"`
	BaseVolatility   float64      `mapstructure:"base_volatility"`
	PriceLimits      LimitsConfig `mapstructure:"price_limits"`
	VolatilityLimits LimitsConfig `mapstructure:"volatility_limits"`
	Workers          int          `mapstructure:"workers"`
}

// ExportConfig sets CSV and chart rendering behaviour.
type ExportConfig struct {
	Width    int   `mapstructure:"width"`
	Height   int   `mapstructure:"height"`
	Slices   int   `mapstructure:"slices"`
	Decimals int32 `mapstructure:"decimals"`
}

// WatchConfig governs periodic revaluation.
type WatchConfig struct {
	Interval      time.Duration `mapstructure:"interval"`
	AlignToBucket bool          `mapstructure:"align_to_bucket"`
	StartupDelay  time.Duration `mapstructure:"startup_delay"`
	CSVPath       string        `mapstructure:"csv_path"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SHOCKGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "shockgrid")
	v.SetDefault("app.environment", "development")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("contract.kind", "call")
	v.SetDefault("contract.strike", 45.0)
	v.SetDefault("contract.cost", 0.0)
	v.SetDefault("contract.expiry", "")
	v.SetDefault("contract.tenor_months", 4)

	v.SetDefault("market.underlying_price", 40.0)
	v.SetDefault("market.volatility", 0.4)
	v.SetDefault("market.risk_free_rate", 0.04)

	v.SetDefault("valuation.method", MethodBlackScholes)
	v.SetDefault("valuation.tree_steps", pricing.DefaultTreeSteps)
	v.SetDefault("valuation.monte_carlo.paths", pricing.DefaultMonteCarloParams().Paths)
	v.SetDefault("valuation.monte_carlo.steps", pricing.DefaultMonteCarloParams().Steps)
	v.SetDefault("valuation.monte_carlo.seed", pricing.DefaultMonteCarloParams().Seed)

	v.SetDefault("grid.base_price", 40.0)
	v.SetDefault("grid.base_volatility", 0.4)
	v.SetDefault("grid.price_limits.down", 0.3)
	v.SetDefault("grid.price_limits.up", 0.3)
	v.SetDefault("grid.price_limits.steps", 100)
	v.SetDefault("grid.volatility_limits.down", 0.5)
	v.SetDefault("grid.volatility_limits.up", 0.5)
	v.SetDefault("grid.volatility_limits.steps", 100)
	v.SetDefault("grid.workers", 0)

	v.SetDefault("export.width", 1280)
	v.SetDefault("export.height", 720)
	v.SetDefault("export.slices", 5)
	v.SetDefault("export.decimals", 4)

	v.SetDefault("watch.interval", "1m")
	v.SetDefault("watch.align_to_bucket", true)
	v.SetDefault("watch.startup_delay", "0s")
	v.SetDefault("watch.csv_path", "")
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.StringToTimeDurationHookFunc()
	}
}

// Validate performs basic sanity checks on the configuration values. Numeric
// domain rules for pricing inputs are enforced by the pricing package itself.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch strings.ToLower(c.Contract.Kind) {
	case "call", "put":
	default:
		return fmt.Errorf("contract.kind must be call or put, got %q", c.Contract.Kind)
	}
	switch c.Valuation.Method {
	case MethodBlackScholes, MethodTree, MethodMonteCarlo:
	default:
		return fmt.Errorf("valuation.method must be bs, tree or mc, got %q", c.Valuation.Method)
	}
	if c.Valuation.TreeSteps < 1 {
		return fmt.Errorf("valuation.tree_steps must be at least 1")
	}
	if c.Valuation.MonteCarlo.Paths < 1 || c.Valuation.MonteCarlo.Steps < 1 {
		return fmt.Errorf("valuation.monte_carlo.paths and valuation.monte_carlo.steps must be at least 1")
	}
	if c.Contract.Expiry == "" && c.Contract.TenorMonths <= 0 {
		return fmt.Errorf("contract.tenor_months must be greater than zero when contract.expiry is empty")
	}
	if c.Grid.Workers < 0 {
		return fmt.Errorf("grid.workers cannot be negative")
	}
	if c.Export.Width <= 0 || c.Export.Height <= 0 {
		return fmt.Errorf("export.width and export.height must be greater than zero")
	}
	if c.Export.Slices <= 0 {
		return fmt.Errorf("export.slices must be greater than zero")
	}
	if c.Export.Decimals < 0 {
		return fmt.Errorf("export.decimals cannot be negative")
	}
	if c.Watch.Interval <= 0 {
		return fmt.Errorf("watch.interval must be greater than zero")
	}
	return nil
}

// IsPut reports whether the configured contract is a put.
func (c *Config) IsPut() bool {
	return strings.EqualFold(c.Contract.Kind, "put")
}

// MonteCarloParams converts the simulation settings for the pricing package.
func (c *Config) MonteCarloParams() pricing.MonteCarloParams {
	mc := c.Valuation.MonteCarlo
	return pricing.MonteCarloParams{Paths: mc.Paths, Steps: mc.Steps, Seed: mc.Seed}
}

// ResolveExpiry returns the configured expiry, or observedAt plus the tenor
// when no explicit expiry is set.
func (c *Config) ResolveExpiry(observedAt time.Time) (time.Time, error) {
	if c.Contract.Expiry != "" {
		return pricing.ParseExpiry(c.Contract.Expiry)
	}
	return observedAt.AddDate(0, c.Contract.TenorMonths, 0), nil
}

// Package config loads the backend configuration.
// An optional .env file is loaded first, then an optional YAML file, and
// ZAKAT_<SECTION>_<KEY> environment variables override both.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/simaogato/zakatflow-backend/internal/domain"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "ZAKAT"

// Store backends
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Store     StoreConfig     `mapstructure:"store"`
	Ledger    LedgerConfig    `mapstructure:"ledger"`
	PriceFeed PriceFeedConfig `mapstructure:"pricefeed"`
}

// ServerConfig holds the listener options of cmd/server.
type ServerConfig struct {
	GRPCAddr        string        `mapstructure:"grpc_addr"`
	HTTPAddr        string        `mapstructure:"http_addr"`
	AuthToken       string        `mapstructure:"auth_token"` // empty disables gRPC auth
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// StoreConfig selects and configures the persistence backend.
type StoreConfig struct {
	Backend     string `mapstructure:"backend"`
	FilePath    string `mapstructure:"file_path"`
	PostgresDSN string `mapstructure:"postgres_dsn"`
	MongoURI    string `mapstructure:"mongo_uri"`
	MongoDB     string `mapstructure:"mongo_db"`
}

type LedgerConfig struct {
	Name string `mapstructure:"name"`
}

// PriceFeedConfig holds the live price hint settings. Prices are USD per gram.
type PriceFeedConfig struct {
	Enabled          bool          `mapstructure:"enabled"`
	BaseURL          string        `mapstructure:"base_url"`
	Timeout          time.Duration `mapstructure:"timeout"`
	Retries          int           `mapstructure:"retries"`
	BreakerThreshold uint32        `mapstructure:"breaker_threshold"`
	BreakerCooldown  time.Duration `mapstructure:"breaker_cooldown"`
	Schedule         string        `mapstructure:"schedule"`
	GoldPerGram      string        `mapstructure:"gold_per_gram"`
	SilverPerGram    string        `mapstructure:"silver_per_gram"`
	GoldMin          string        `mapstructure:"gold_min"`
	GoldMax          string        `mapstructure:"gold_max"`
	SilverMin        string        `mapstructure:"silver_min"`
	SilverMax        string        `mapstructure:"silver_max"`
}

// Load reads the optional env file and config file and materializes a validated Config.
// Both paths may be empty; a missing default .env is not an error.
func Load(envFile, configFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		_ = godotenv.Load()
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.grpc_addr", ":50051")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("server.auth_token", "")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("log.level", "info")

	v.SetDefault("store.backend", BackendFile)
	v.SetDefault("store.file_path", "./data/zakat.json")
	v.SetDefault("store.postgres_dsn", "")
	v.SetDefault("store.mongo_uri", "")
	v.SetDefault("store.mongo_db", "zakat")

	v.SetDefault("ledger.name", domain.DefaultLedger)

	v.SetDefault("pricefeed.enabled", true)
	v.SetDefault("pricefeed.base_url", "https://api.metals.live")
	v.SetDefault("pricefeed.timeout", "10s")
	v.SetDefault("pricefeed.retries", 2)
	v.SetDefault("pricefeed.breaker_threshold", 5)
	v.SetDefault("pricefeed.breaker_cooldown", "1m")
	v.SetDefault("pricefeed.schedule", "*/30 * * * *")
	v.SetDefault("pricefeed.gold_per_gram", "66")
	v.SetDefault("pricefeed.silver_per_gram", "0.80")
	v.SetDefault("pricefeed.gold_min", "20")
	v.SetDefault("pricefeed.gold_max", "300")
	v.SetDefault("pricefeed.silver_min", "0.1")
	v.SetDefault("pricefeed.silver_max", "10")
}

// Validate ensures that the configuration is usable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("ZAKAT_LOG_LEVEL is invalid: %w", err)
	}

	switch c.Store.Backend {
	case BackendFile:
		if c.Store.FilePath == "" {
			return errors.New("ZAKAT_STORE_FILE_PATH must be provided for the file backend")
		}
	case BackendPostgres:
		if c.Store.PostgresDSN == "" {
			return errors.New("ZAKAT_STORE_POSTGRES_DSN must be provided for the postgres backend")
		}
	case BackendMongo:
		if c.Store.MongoURI == "" {
			return errors.New("ZAKAT_STORE_MONGO_URI must be provided for the mongo backend")
		}
		if c.Store.MongoDB == "" {
			return errors.New("ZAKAT_STORE_MONGO_DB must be provided for the mongo backend")
		}
	default:
		return fmt.Errorf("ZAKAT_STORE_BACKEND %q is invalid, expected file, postgres or mongo", c.Store.Backend)
	}

	if strings.TrimSpace(c.Ledger.Name) == "" {
		return errors.New("ZAKAT_LEDGER_NAME must not be empty")
	}

	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("ZAKAT_SERVER_SHUTDOWN_TIMEOUT must be positive")
	}

	return c.PriceFeed.validate()
}

func (p PriceFeedConfig) validate() error {
	gold, err := positiveDecimal("ZAKAT_PRICEFEED_GOLD_PER_GRAM", p.GoldPerGram)
	if err != nil {
		return err
	}
	silver, err := positiveDecimal("ZAKAT_PRICEFEED_SILVER_PER_GRAM", p.SilverPerGram)
	if err != nil {
		return err
	}

	goldBand, silverBand, err := p.Bands()
	if err != nil {
		return err
	}
	if !gold.GreaterThanOrEqual(goldBand[0]) || !gold.LessThanOrEqual(goldBand[1]) {
		return fmt.Errorf("default gold price %s is outside the plausible range", gold)
	}
	if !silver.GreaterThanOrEqual(silverBand[0]) || !silver.LessThanOrEqual(silverBand[1]) {
		return fmt.Errorf("default silver price %s is outside the plausible range", silver)
	}

	if !p.Enabled {
		return nil
	}
	if p.BaseURL == "" {
		return errors.New("ZAKAT_PRICEFEED_BASE_URL must be provided when the price feed is enabled")
	}
	if p.Retries < 0 {
		return errors.New("ZAKAT_PRICEFEED_RETRIES cannot be negative")
	}
	if _, err := cron.ParseStandard(p.Schedule); err != nil {
		return fmt.Errorf("ZAKAT_PRICEFEED_SCHEDULE is invalid: %w", err)
	}
	return nil
}

// DefaultPrices returns the seed prices of the hint cell
func (p PriceFeedConfig) DefaultPrices() (gold, silver decimal.Decimal, err error) {
	if gold, err = positiveDecimal("ZAKAT_PRICEFEED_GOLD_PER_GRAM", p.GoldPerGram); err != nil {
		return
	}
	silver, err = positiveDecimal("ZAKAT_PRICEFEED_SILVER_PER_GRAM", p.SilverPerGram)
	return
}

// Bands returns the plausible per-gram [min, max] of gold and silver
func (p PriceFeedConfig) Bands() (gold, silver [2]decimal.Decimal, err error) {
	if gold, err = band("gold", p.GoldMin, p.GoldMax); err != nil {
		return
	}
	silver, err = band("silver", p.SilverMin, p.SilverMax)
	return
}

func band(metal, minValue, maxValue string) ([2]decimal.Decimal, error) {
	lo, err := positiveDecimal(metal+" minimum", minValue)
	if err != nil {
		return [2]decimal.Decimal{}, err
	}
	hi, err := positiveDecimal(metal+" maximum", maxValue)
	if err != nil {
		return [2]decimal.Decimal{}, err
	}
	if !lo.LessThan(hi) {
		return [2]decimal.Decimal{}, fmt.Errorf("%s price range is empty: %s >= %s", metal, lo, hi)
	}
	return [2]decimal.Decimal{lo, hi}, nil
}

func positiveDecimal(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s is not a number: %w", name, err)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%s must be positive", name)
	}
	return d, nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, ":50051", cfg.Server.GRPCAddr)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, BackendFile, cfg.Store.Backend)
	assert.Equal(t, "zakatDistributions", cfg.Ledger.Name)
	assert.True(t, cfg.PriceFeed.Enabled)
	assert.Equal(t, 10*time.Second, cfg.PriceFeed.Timeout)
	assert.Equal(t, uint32(5), cfg.PriceFeed.BreakerThreshold)

	gold, silver, err := cfg.PriceFeed.DefaultPrices()
	require.NoError(t, err)
	assert.True(t, gold.Equal(decimal.NewFromInt(66)))
	assert.True(t, silver.Equal(decimal.RequireFromString("0.8")))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ZAKAT_STORE_BACKEND", "Postgres")
	t.Setenv("ZAKAT_STORE_POSTGRES_DSN", "postgres://zakat@localhost/zakat?sslmode=disable")
	t.Setenv("ZAKAT_PRICEFEED_TIMEOUT", "3s")
	t.Setenv("ZAKAT_PRICEFEED_ENABLED", "false")
	t.Setenv("ZAKAT_LEDGER_NAME", "household")

	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, BackendPostgres, cfg.Store.Backend)
	assert.Equal(t, "postgres://zakat@localhost/zakat?sslmode=disable", cfg.Store.PostgresDSN)
	assert.Equal(t, 3*time.Second, cfg.PriceFeed.Timeout)
	assert.False(t, cfg.PriceFeed.Enabled)
	assert.Equal(t, "household", cfg.Ledger.Name)
}

func TestLoad_Files(t *testing.T) {
	dir := t.TempDir()

	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("ZAKAT_LOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("ZAKAT_LOG_LEVEL") })

	configFile := filepath.Join(dir, "config.yaml")
	yaml := "store:\n  backend: mongo\n  mongo_uri: mongodb://localhost:27017\n  mongo_db: zakat_test\nserver:\n  grpc_addr: \":6000\"\n"
	require.NoError(t, os.WriteFile(configFile, []byte(yaml), 0o600))

	cfg, err := Load(envFile, configFile)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, BackendMongo, cfg.Store.Backend)
	assert.Equal(t, "zakat_test", cfg.Store.MongoDB)
	assert.Equal(t, ":6000", cfg.Server.GRPCAddr)
}

func TestLoad_MissingFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "absent.env"), "")
	assert.NoError(t, err, "a missing env file falls back to the environment")

	_, err = Load("", filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err, "an explicit config file must exist")
}

func validConfig() Config {
	return Config{
		Server: ServerConfig{GRPCAddr: ":50051", HTTPAddr: ":8080", ShutdownTimeout: time.Second},
		Log:    LogConfig{Level: "info"},
		Store:  StoreConfig{Backend: BackendFile, FilePath: "./data/zakat.json"},
		Ledger: LedgerConfig{Name: "zakatDistributions"},
		PriceFeed: PriceFeedConfig{
			Enabled:       true,
			BaseURL:       "https://api.metals.live",
			Schedule:      "*/30 * * * *",
			GoldPerGram:   "66",
			SilverPerGram: "0.80",
			GoldMin:       "20",
			GoldMax:       "300",
			SilverMin:     "0.1",
			SilverMax:     "10",
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(c *Config)
		expectedErrMsg string
	}{
		{name: "Valid", mutate: func(c *Config) {}},
		{
			name:           "Unknown Backend",
			mutate:         func(c *Config) { c.Store.Backend = "sqlite" },
			expectedErrMsg: "ZAKAT_STORE_BACKEND",
		},
		{
			name:           "File Backend Without Path",
			mutate:         func(c *Config) { c.Store.FilePath = "" },
			expectedErrMsg: "ZAKAT_STORE_FILE_PATH",
		},
		{
			name:           "Mongo Without URI",
			mutate:         func(c *Config) { c.Store.Backend = BackendMongo; c.Store.MongoDB = "zakat" },
			expectedErrMsg: "ZAKAT_STORE_MONGO_URI",
		},
		{
			name:           "Bad Log Level",
			mutate:         func(c *Config) { c.Log.Level = "loud" },
			expectedErrMsg: "ZAKAT_LOG_LEVEL",
		},
		{
			name:           "Empty Ledger Name",
			mutate:         func(c *Config) { c.Ledger.Name = "  " },
			expectedErrMsg: "ZAKAT_LEDGER_NAME",
		},
		{
			name:           "Bad Schedule",
			mutate:         func(c *Config) { c.PriceFeed.Schedule = "every minute" },
			expectedErrMsg: "ZAKAT_PRICEFEED_SCHEDULE",
		},
		{
			name: "Bad Schedule Ignored When Disabled",
			mutate: func(c *Config) {
				c.PriceFeed.Enabled = false
				c.PriceFeed.Schedule = "every minute"
			},
		},
		{
			name:           "Inverted Range",
			mutate:         func(c *Config) { c.PriceFeed.GoldMin = "400" },
			expectedErrMsg: "gold price range is empty",
		},
		{
			name:           "Default Outside Range",
			mutate:         func(c *Config) { c.PriceFeed.SilverPerGram = "25" },
			expectedErrMsg: "outside the plausible range",
		},
		{
			name:           "Non Numeric Price",
			mutate:         func(c *Config) { c.PriceFeed.GoldPerGram = "lots" },
			expectedErrMsg: "ZAKAT_PRICEFEED_GOLD_PER_GRAM is not a number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.expectedErrMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)
		})
	}
}

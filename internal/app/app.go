// Package app wires configuration, stores and services into one object shared by cmd/server and cmd/zakatctl.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/simaogato/zakatflow-backend/internal/adapter/pricefeed/metalslive"
	"github.com/simaogato/zakatflow-backend/internal/adapter/repository/filestore"
	"github.com/simaogato/zakatflow-backend/internal/adapter/repository/mongodb"
	"github.com/simaogato/zakatflow-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/zakatflow-backend/internal/config"
	"github.com/simaogato/zakatflow-backend/internal/domain"
	"github.com/simaogato/zakatflow-backend/internal/observability"
	"github.com/simaogato/zakatflow-backend/internal/usecase/calculator"
	"github.com/simaogato/zakatflow-backend/internal/usecase/ledger"
	"github.com/simaogato/zakatflow-backend/internal/usecase/pricefeed"
	"github.com/simaogato/zakatflow-backend/internal/usecase/report"
	"github.com/simaogato/zakatflow-backend/pkg/logger"
)

// App holds every long-lived component of the backend
type App struct {
	Config     *config.Config
	Logger     *zap.Logger
	Metrics    *observability.Metrics
	Currencies *domain.CurrencyTable

	Prices    *pricefeed.PriceCell
	Collector *pricefeed.Collector // nil when the price feed is disabled

	Calculator *calculator.CalculatorService
	Ledger     *ledger.LedgerService
	Reports    *report.ReportService

	store *store
}

// store bundles the three repositories of one backend
type store struct {
	distributions domain.DistributionRepository
	obligations   domain.ObligationRepository
	preferences   domain.PreferencesRepository
	ping          func(ctx context.Context) error
	close         func(ctx context.Context) error
}

// New opens the configured store and builds every service.
// Logic:
//  1. Open the backend selected by cfg.Store.Backend
//  2. Seed the price cell with the configured defaults
//  3. Build the live collector when the price feed is enabled
//  4. Build calculator, ledger and report services on top of the repositories
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	log = logger.OrNop(log)
	metrics := observability.NewMetrics()
	currencies := domain.DefaultCurrencyTable(logger.Named(log, "currency"))

	st, err := openStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}

	gold, silver, err := cfg.PriceFeed.DefaultPrices()
	if err != nil {
		_ = st.close(ctx)
		return nil, err
	}
	prices := pricefeed.NewPriceCell(gold, silver)

	var collector *pricefeed.Collector
	if cfg.PriceFeed.Enabled {
		goldBand, silverBand, err := cfg.PriceFeed.Bands()
		if err != nil {
			_ = st.close(ctx)
			return nil, err
		}
		clientCfg := metalslive.DefaultConfig()
		clientCfg.BaseURL = cfg.PriceFeed.BaseURL
		clientCfg.Timeout = cfg.PriceFeed.Timeout
		clientCfg.Retries = cfg.PriceFeed.Retries
		clientCfg.BreakerThreshold = cfg.PriceFeed.BreakerThreshold
		clientCfg.BreakerCooldown = cfg.PriceFeed.BreakerCooldown

		collector = pricefeed.NewCollector(
			metalslive.NewClient(clientCfg),
			prices,
			map[domain.Metal]pricefeed.Range{
				domain.MetalGold:   {Min: goldBand[0], Max: goldBand[1]},
				domain.MetalSilver: {Min: silverBand[0], Max: silverBand[1]},
			},
			logger.Named(log, "pricefeed"),
			metrics,
		)
	}

	calc := calculator.NewCalculatorService(
		currencies, st.obligations, st.preferences, prices,
		logger.Named(log, "svc.calculator"), metrics,
	)
	ledgerSvc := ledger.NewLedgerService(
		currencies, st.distributions, st.obligations, cfg.Ledger.Name,
		logger.Named(log, "svc.ledger"), metrics,
	)

	log.Info("application wired",
		zap.String("store", cfg.Store.Backend),
		zap.String("ledger", cfg.Ledger.Name),
		zap.Bool("price_feed", collector != nil),
	)

	return &App{
		Config:     cfg,
		Logger:     log,
		Metrics:    metrics,
		Currencies: currencies,
		Prices:     prices,
		Collector:  collector,
		Calculator: calc,
		Ledger:     ledgerSvc,
		Reports:    report.NewReportService(currencies, ledgerSvc, calc),
		store:      st,
	}, nil
}

// Ping checks that the store is reachable
func (a *App) Ping(ctx context.Context) error {
	return a.store.ping(ctx)
}

// Close releases the store
func (a *App) Close(ctx context.Context) error {
	if err := a.store.close(ctx); err != nil {
		return fmt.Errorf("failed to close %s store: %w", a.Config.Store.Backend, err)
	}
	return nil
}

func openStore(ctx context.Context, cfg config.StoreConfig) (*store, error) {
	switch cfg.Backend {
	case config.BackendFile:
		db, err := filestore.NewDB(cfg.FilePath)
		if err != nil {
			return nil, err
		}
		return &store{
			distributions: filestore.NewDistributionRepository(db),
			obligations:   filestore.NewObligationRepository(db),
			preferences:   filestore.NewPreferencesRepository(db),
			ping:          db.Ping,
			close:         func(context.Context) error { return db.Close() },
		}, nil

	case config.BackendPostgres:
		db, err := postgres.NewDB(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return &store{
			distributions: postgres.NewDistributionRepository(db),
			obligations:   postgres.NewObligationRepository(db),
			preferences:   postgres.NewPreferencesRepository(db),
			ping:          db.PingContext,
			close:         func(context.Context) error { return db.Close() },
		}, nil

	case config.BackendMongo:
		db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		return &store{
			distributions: mongodb.NewDistributionRepository(db),
			obligations:   mongodb.NewObligationRepository(db),
			preferences:   mongodb.NewPreferencesRepository(db),
			ping:          db.Ping,
			close:         db.Close,
		}, nil
	}

	return nil, errors.New("unknown store backend: " + cfg.Backend)
}

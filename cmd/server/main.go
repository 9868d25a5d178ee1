package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/zakatflow-backend/internal/adapter/grpc"
	zakatv1 "github.com/simaogato/zakatflow-backend/internal/adapter/grpc/zakat/v1"
	"github.com/simaogato/zakatflow-backend/internal/adapter/httpapi"
	"github.com/simaogato/zakatflow-backend/internal/app"
	"github.com/simaogato/zakatflow-backend/internal/config"
	"github.com/simaogato/zakatflow-backend/internal/scheduler"
	"github.com/simaogato/zakatflow-backend/pkg/logger"
)

func main() {
	// 1. Load configuration (.env, optional YAML file, ZAKAT_* overrides)
	cfg, err := config.Load(os.Getenv("ZAKAT_ENV_FILE"), os.Getenv("ZAKAT_CONFIG_FILE"))
	if err != nil {
		bootstrap := logger.Must(logger.New("info"))
		bootstrap.Fatal("failed to load configuration", zap.Error(err))
	}

	log := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// 2. Open the store and build the services
	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to initialize application", zap.Error(err))
	}

	// 3. Start the price scheduler when the live feed is enabled
	var sched *scheduler.Scheduler
	if application.Collector != nil {
		sched = scheduler.NewScheduler(application.Collector, cfg.PriceFeed.Schedule, cfg.PriceFeed.Timeout*2, logger.Named(log, "scheduler"))
		if err := sched.Start(); err != nil {
			log.Fatal("failed to start price scheduler", zap.Error(err))
		}
	}

	// 4. Build the gRPC server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.RecoveryInterceptor(logger.Named(log, "grpc")),
			grpcadapter.LoggingInterceptor(logger.Named(log, "grpc"), application.Metrics),
			grpcadapter.AuthInterceptor(cfg.Server.AuthToken),
		),
	)

	grpcAdapter := grpcadapter.NewServer(
		application.Calculator,
		application.Ledger,
		application.Reports,
		application.Collector,
		application.Prices,
		application.Currencies,
	)
	zakatv1.RegisterZakatServiceServer(grpcServer, grpcAdapter)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(zakatv1.ZakatService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	reflection.Register(grpcServer)

	// 5. Build the HTTP ops server
	httpServer := &http.Server{
		Addr: cfg.Server.HTTPAddr,
		Handler: httpapi.NewRouter(httpapi.Deps{
			Registry: application.Metrics.Registry,
			Store:    application.Ping,
			Reports:  application.Reports,
			Logger:   logger.Named(log, "http"),
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatal("failed to listen", zap.String("addr", cfg.Server.GRPCAddr), zap.Error(err))
	}

	// 6. Serve until a signal arrives or a server fails
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("gRPC server listening", zap.String("addr", cfg.Server.GRPCAddr))
		return grpcServer.Serve(lis)
	})

	g.Go(func() error {
		log.Info("HTTP server listening", zap.String("addr", cfg.Server.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down gracefully")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warn("HTTP server shutdown incomplete", zap.Error(err))
		}
		gracefulStop(shutdownCtx, grpcServer)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", zap.Error(err))
	}

	// 7. Release background work and the store
	if sched != nil {
		<-sched.Stop().Done()
	}
	closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := application.Close(closeCtx); err != nil {
		log.Error("failed to close application", zap.Error(err))
	}
	log.Info("server stopped")
}

// gracefulStop drains in-flight RPCs, forcing a stop once ctx expires
func gracefulStop(ctx context.Context, grpcServer *grpclib.Server) {
	done := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		grpcServer.Stop()
	}
}

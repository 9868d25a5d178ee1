package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/simaogato/zakatflow-backend/internal/domain"
	"github.com/simaogato/zakatflow-backend/pkg/logger"
)

// Refresher refreshes every price hint; failures are absorbed by the implementation.
type Refresher interface {
	RefreshAll(ctx context.Context) []domain.PriceHint
}

// Scheduler polls the live price feed on a cron schedule.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	schedule  string
	timeout   time.Duration
	logger    *zap.Logger

	// startup tracks the immediate refresh, which runs outside the cron loop
	startup sync.WaitGroup
}

// NewScheduler creates a new scheduler instance. timeout bounds a single poll.
func NewScheduler(refresher Refresher, schedule string, timeout time.Duration, log *zap.Logger) *Scheduler {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Scheduler{
		// overlapping polls are skipped rather than queued
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		refresher: refresher,
		schedule:  schedule,
		timeout:   timeout,
		logger:    logger.OrNop(log),
	}
}

// Start registers the refresh job, runs one immediate refresh in the background and starts the cron loop.
func (s *Scheduler) Start() error {
	s.logger.Info("starting price scheduler", zap.String("schedule", s.schedule))

	if _, err := s.cron.AddFunc(s.schedule, s.refresh); err != nil {
		return fmt.Errorf("failed to schedule price refresh: %w", err)
	}

	s.startup.Go(s.refresh)
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and returns a context that is done once running jobs finish,
// including the startup refresh.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("stopping price scheduler")
	cronDone := s.cron.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-cronDone.Done()
		s.startup.Wait()
		cancel()
	}()
	return ctx
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	hints := s.refresher.RefreshAll(ctx)
	s.logger.Debug("price hints refreshed", zap.Int("updated", len(hints)))
}

// Package scheduler runs the periodic aggregate reconciliation.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/cardnight/ledger/internal/services/ledger"
)

// Reconciler recomputes stored player aggregates
type Reconciler interface {
	ReconcileAggregates(ctx context.Context) (ledger.ReconcileResult, error)
}

// Scheduler wraps a gocron scheduler holding the reconcile job
type Scheduler struct {
	sched  gocron.Scheduler
	job    gocron.Job
	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger
}

// New registers the reconcile job to run every interval.
// Runs never overlap; a run still in progress when the next is due is skipped.
func New(reconciler Reconciler, interval time.Duration, logger *slog.Logger) (*Scheduler, error) {
	if interval <= 0 {
		return nil, errors.New("reconcile interval must be positive")
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		sched:  sched,
		ctx:    ctx,
		cancel: cancel,
		logger: logger.With(slog.String("component", "scheduler")),
	}

	job, err := sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.reconcile, reconciler),
		gocron.WithName("reconcile-aggregates"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		cancel()
		_ = sched.Shutdown()
		return nil, fmt.Errorf("register reconcile job: %w", err)
	}
	s.job = job
	return s, nil
}

func (s *Scheduler) reconcile(reconciler Reconciler) {
	start := time.Now()
	result, err := reconciler.ReconcileAggregates(s.ctx)
	if err != nil {
		s.logger.Error("aggregate reconciliation failed",
			slog.Int("checked", result.Checked),
			slog.Int("updated", result.Updated),
			slog.Int("failed", result.Failed),
			slog.Any("error", err))
		return
	}
	s.logger.Info("aggregates reconciled",
		slog.Int("checked", result.Checked),
		slog.Int("updated", result.Updated),
		slog.Duration("duration", time.Since(start)))
}

// Start begins scheduling
func (s *Scheduler) Start() {
	s.sched.Start()
	s.logger.Info("scheduler started")
}

// RunNow triggers the reconcile job immediately
func (s *Scheduler) RunNow() error {
	return s.job.RunNow()
}

// Shutdown stops the scheduler and cancels a running reconciliation
func (s *Scheduler) Shutdown() error {
	s.cancel()
	if err := s.sched.Shutdown(); err != nil {
		return fmt.Errorf("shutdown scheduler: %w", err)
	}
	s.logger.Info("scheduler stopped")
	return nil
}

// Package scheduler drives the periodic commission sync. One goroutine runs
// the loop, so invocations never overlap; a run that fails or times out is
// simply retried on the next tick, relying on the sync being idempotent.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smallbiznis/komisi/internal/clock"
	commissiondomain "github.com/smallbiznis/komisi/internal/commission/domain"
	obsmetrics "github.com/smallbiznis/komisi/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var ErrInvalidConfig = errors.New("invalid_scheduler_config")

type Params struct {
	fx.In

	Log           *zap.Logger
	Clock         clock.Clock
	CommissionSvc commissiondomain.Service
	Config        Config `optional:"true"`
}

type Scheduler struct {
	log           *zap.Logger
	clock         clock.Clock
	cfg           Config
	commissionSvc commissiondomain.Service
}

func New(p Params) (*Scheduler, error) {
	if p.Log == nil || p.Clock == nil || p.CommissionSvc == nil {
		return nil, ErrInvalidConfig
	}
	return &Scheduler{
		log:           p.Log.Named("scheduler").With(zap.String("component", "scheduler")),
		clock:         p.Clock,
		cfg:           p.Config.withDefaults(),
		commissionSvc: p.CommissionSvc,
	}, nil
}

func (s *Scheduler) RunForever(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.RunInterval)
	defer ticker.Stop()

	for {
		if err := s.RunOnce(ctx); err != nil {
			s.log.Warn("commission sync run failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) RunOnce(parent context.Context) error {
	return s.runJob(parent, "commission_sync", s.cfg.RunTimeout, s.syncJob)
}

func (s *Scheduler) runJob(
	parent context.Context,
	name string,
	timeout time.Duration,
	fn func(ctx context.Context) error,
) error {
	start := s.clock.Now()
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	syncMetrics := obsmetrics.Sync()

	err := fn(ctx)
	syncMetrics.ObserveRunDuration(s.clock.Now().Sub(start))
	if err == nil {
		syncMetrics.IncRun(obsmetrics.RunResultOK)
		return nil
	}

	// A deadline is a soft timeout: committed batches stand, the next tick
	// picks up the remainder.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		syncMetrics.IncRun(obsmetrics.RunResultTimeout)
		s.log.Warn("job timed out",
			zap.String("job", name),
			zap.Duration("timeout", timeout),
			zap.Error(err),
		)
		return nil
	}

	syncMetrics.IncRun(obsmetrics.RunResultError)
	return fmt.Errorf("%s: %w", name, err)
}

func (s *Scheduler) syncJob(ctx context.Context) error {
	report, err := s.commissionSvc.Sync(ctx)

	syncMetrics := obsmetrics.Sync()
	syncMetrics.AddRecords(obsmetrics.RecordActionCreated, report.Created)
	syncMetrics.AddRecords(obsmetrics.RecordActionUpdated, report.Updated)
	syncMetrics.AddRecords(obsmetrics.RecordActionDeleted, report.Deleted)

	if err != nil {
		return err
	}

	if report.Writes() > 0 {
		s.log.Info("commission sync applied changes",
			zap.Int("created", report.Created),
			zap.Int("updated", report.Updated),
			zap.Int("deleted", report.Deleted),
		)
	}
	return nil
}

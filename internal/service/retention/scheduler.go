package retention

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/config"
	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/domain"
)

type policyRunner interface {
	Run(ctx context.Context, policy domain.RetentionPolicy, scope Scope, dryRun bool, maxCount int) (*domain.Report, error)
}

// Scheduler runs the configured retention policy over all inspections on a
// cron schedule. A run that is still going when the next tick fires causes
// that tick to be skipped.
type Scheduler struct {
	runner  policyRunner
	cfg     config.RetentionConfig
	cron    *cron.Cron
	log     *slog.Logger
	mu      sync.Mutex
	running bool
	// runCtx belongs to the current Start; cancel ends it on Stop.
	runCtx context.Context
	cancel context.CancelFunc
}

// NewScheduler creates a scheduler for cfg. It does nothing until Start.
func NewScheduler(log *slog.Logger, runner policyRunner, cfg config.RetentionConfig) *Scheduler {
	log = log.With("component", "retention.scheduler")
	return &Scheduler{
		runner: runner,
		cfg:    cfg,
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cron.DiscardLogger),
		)),
		log: log,
	}
}

// Start registers the job and starts the cron loop. An empty schedule is a
// no-op. The scheduler stops when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cfg.ScheduleEnabled() {
		s.log.Info("retention schedule not configured, scheduler disabled")
		return nil
	}
	if s.running {
		return nil
	}

	if _, err := cron.ParseStandard(s.cfg.Schedule); err != nil {
		return fmt.Errorf("invalid retention schedule %q: %w", s.cfg.Schedule, err)
	}

	// A restarted scheduler keeps exactly one job, bound to the new ctx.
	for _, e := range s.cron.Entries() {
		s.cron.Remove(e.ID)
	}

	runCtx, cancel := context.WithCancel(ctx)
	if _, err := s.cron.AddFunc(s.cfg.Schedule, func() { s.RunOnce(runCtx) }); err != nil {
		cancel()
		return fmt.Errorf("schedule retention job: %w", err)
	}

	s.cron.Start()
	s.running = true
	s.runCtx = runCtx
	s.cancel = cancel

	s.log.Info("retention scheduler started",
		slog.String("schedule", s.cfg.Schedule),
		slog.String("policy", s.cfg.SchedulePolicy),
		slog.Bool("dry_run", s.cfg.ScheduleDryRun),
	)

	go func() {
		<-runCtx.Done()
		s.stop(runCtx)
	}()

	return nil
}

// RunOnce executes one scheduled run, bounded by the configured timeout.
func (s *Scheduler) RunOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	if s.cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RunTimeout)
		defer cancel()
	}

	policy := domain.RetentionPolicy(s.cfg.SchedulePolicy)
	report, err := s.runner.Run(ctx, policy, Scope{}, s.cfg.ScheduleDryRun, 0)
	if err != nil {
		s.log.Error("scheduled retention run failed", slog.String("error", err.Error()))
		return
	}

	if !report.Success {
		s.log.Warn("scheduled retention run unsuccessful",
			slog.Int("errors", report.Errors),
			slog.Bool("interrupted", report.Interrupted),
		)
	}
}

// Stop stops the scheduler, cancels a run in progress and waits for it to
// return.
func (s *Scheduler) Stop() {
	s.stop(nil)
}

// stop stops the scheduler. A non-nil owner only stops the Start that
// created it, so a watcher from an earlier Start cannot stop a later one.
func (s *Scheduler) stop(owner context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || (owner != nil && owner != s.runCtx) {
		return
	}
	s.cancel()
	<-s.cron.Stop().Done()
	s.running = false
	s.log.Info("retention scheduler stopped")
}

// IsRunning reports whether the cron loop is active.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// NextRun returns the next scheduled run time, or nil when not scheduled.
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}
	next := entries[0].Next
	return &next
}

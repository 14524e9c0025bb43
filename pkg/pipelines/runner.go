// Package pipelines hosts the recurring background jobs: feed polling,
// the polling-flag watchdog, the presence reaper, checkpoint GC, and
// the proposal expiry sweep. Each pipeline is a named discover/handle
// pair on a cron cadence with bounded fan-out.
package pipelines

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// Target is one unit of work for a pipeline tick.
type Target struct {
	ID      string
	Payload any
}

// Pipeline is a named recurring task. Discover enumerates the targets
// due this tick; Handle processes one target under the per-target
// timeout. Per-target failures are isolated and collated into the
// batch summary.
type Pipeline struct {
	Name           string
	Interval       time.Duration
	ConcurrencyCap int
	TargetTimeout  time.Duration
	Discover       func(ctx context.Context) ([]Target, error)
	Handle         func(ctx context.Context, target Target) error
}

// Notifier receives batch-failure summaries. Implementations must be
// best-effort; the runner never blocks on them.
type Notifier interface {
	Notify(ctx context.Context, title, message string)
}

// Runner schedules pipelines on a shared cron engine.
type Runner struct {
	cron     *cron.Cron
	notifier Notifier
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// NewRunner creates a runner. notifier may be nil.
func NewRunner(notifier Notifier) *Runner {
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		cron:     cron.New(),
		notifier: notifier,
		logger:   slog.With("component", "pipelines"),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Register schedules a pipeline. Ticks that arrive while the previous
// run is still in flight are skipped.
func (r *Runner) Register(p Pipeline) error {
	if p.Name == "" || p.Discover == nil || p.Handle == nil {
		return fmt.Errorf("pipeline requires a name, discover, and handle")
	}
	if p.Interval <= 0 {
		return fmt.Errorf("pipeline %q has no interval", p.Name)
	}
	if p.ConcurrencyCap <= 0 {
		p.ConcurrencyCap = 1
	}

	var inFlight atomic.Bool
	_, err := r.cron.AddFunc(fmt.Sprintf("@every %s", p.Interval), func() {
		if !inFlight.CompareAndSwap(false, true) {
			r.logger.Warn("Pipeline tick skipped, previous run still in flight", "pipeline", p.Name)
			return
		}
		defer inFlight.Store(false)
		r.runOnce(r.ctx, p)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule pipeline %q: %w", p.Name, err)
	}
	r.logger.Info("Pipeline registered",
		"pipeline", p.Name,
		"interval", p.Interval,
		"concurrency_cap", p.ConcurrencyCap)
	return nil
}

// Start begins scheduling. Pipelines do not run their first tick until
// one interval has elapsed.
func (r *Runner) Start() {
	r.cron.Start()
	r.logger.Info("Pipeline runner started")
}

// Stop cancels in-flight handlers and waits for running jobs.
func (r *Runner) Stop() {
	r.cancel()
	<-r.cron.Stop().Done()
	r.logger.Info("Pipeline runner stopped")
}

// runOnce executes one tick: discover targets, fan out up to the cap,
// collate the batch summary.
func (r *Runner) runOnce(ctx context.Context, p Pipeline) {
	log := r.logger.With("pipeline", p.Name)
	started := time.Now()

	targets, err := p.Discover(ctx)
	if err != nil {
		log.Error("Pipeline discovery failed", "error", err)
		return
	}
	if len(targets) == 0 {
		return
	}

	var processed, failed atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.ConcurrencyCap)
	for _, target := range targets {
		g.Go(func() error {
			tctx := gctx
			if p.TargetTimeout > 0 {
				var cancel context.CancelFunc
				tctx, cancel = context.WithTimeout(gctx, p.TargetTimeout)
				defer cancel()
			}
			if err := p.Handle(tctx, target); err != nil {
				failed.Add(1)
				log.Warn("Pipeline target failed", "target", target.ID, "error", err)
				return nil // isolate: siblings keep running
			}
			processed.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	log.Info("Pipeline batch complete",
		"targets", len(targets),
		"processed", processed.Load(),
		"failed", failed.Load(),
		"duration_ms", time.Since(started).Milliseconds())

	if n := failed.Load(); n > 0 && r.notifier != nil {
		r.notifier.Notify(ctx,
			fmt.Sprintf("pipeline %s: %d/%d targets failed", p.Name, n, len(targets)),
			fmt.Sprintf("batch started %s, duration %s", started.Format(time.RFC3339), time.Since(started).Round(time.Millisecond)))
	}
}

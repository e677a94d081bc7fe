package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	cronlib "github.com/robfig/cron/v3"

	"newsletter-dispatch/internal/core/port"
)

// Runner performs one dispatch run.
type Runner interface {
	Run(ctx context.Context) (*port.RunStats, error)
}

// cronParser supports standard 5-field cron and descriptors like "@hourly".
var cronParser = cronlib.NewParser(
	cronlib.Minute | cronlib.Hour | cronlib.Dom | cronlib.Month | cronlib.Dow | cronlib.Descriptor,
)

// abortGrace bounds how long Stop waits for a cancelled run to unwind.
const abortGrace = 5 * time.Second

// Scheduler triggers dispatch runs on a cron schedule evaluated in the
// deployment's time zone. A tick that fires while the previous run is still
// going is skipped, so runs never overlap inside one process.
type Scheduler struct {
	cron    *cronlib.Cron
	runner  Runner
	timeout time.Duration
	logger  *slog.Logger

	// base is the parent of every background run. It keeps ctx's values but
	// not its cancellation; only Stop cancels it.
	base   context.Context
	cancel context.CancelFunc
	runs   sync.WaitGroup
}

// New parses spec and prepares a scheduler. Nothing runs until Start.
func New(spec string, loc *time.Location, runner Runner, timeout time.Duration, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if loc == nil {
		loc = time.Local
	}
	sched, err := cronParser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("parse dispatch schedule %q: %w", spec, err)
	}

	cl := cronLogger{logger: logger}
	s := &Scheduler{
		cron: cronlib.New(
			cronlib.WithLocation(loc),
			cronlib.WithParser(cronParser),
			cronlib.WithLogger(cl),
			cronlib.WithChain(cronlib.Recover(cl), cronlib.SkipIfStillRunning(cl)),
		),
		runner:  runner,
		timeout: timeout,
		logger:  logger,
	}
	s.base, s.cancel = context.WithCancel(context.Background())
	s.cron.Schedule(sched, cronlib.FuncJob(s.tick))
	return s, nil
}

// Start begins firing runs. Runs inherit ctx's values, but cancelling ctx
// does not interrupt them: shutdown goes through Stop. Start must be called
// at most once.
func (s *Scheduler) Start(ctx context.Context) {
	s.base, s.cancel = context.WithCancel(context.WithoutCancel(ctx))
	s.cron.Start()
	s.logger.Info("dispatch scheduler started", slog.Time("next_run", s.Next()))
}

// Trigger starts one run in the background, outside the cron schedule.
// Stop waits for it like for a scheduled run.
func (s *Scheduler) Trigger() {
	s.runs.Add(1)
	base := s.base
	go func() {
		defer s.runs.Done()
		if _, err := s.RunNow(base); err != nil {
			s.logger.Error("triggered dispatch run failed", slog.Any("error", err))
		}
	}()
}

// Stop prevents new runs and waits for the running ones to finish. When ctx
// ends first the runs are cancelled and given a short grace period to
// record their outcome.
func (s *Scheduler) Stop(ctx context.Context) error {
	stopped := s.cron.Stop()
	done := make(chan struct{})
	go func() {
		<-stopped.Done()
		s.runs.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.cancel()
		s.logger.Info("dispatch scheduler stopped")
		return nil
	case <-ctx.Done():
	}

	s.logger.Warn("cancelling running dispatch", slog.Any("error", ctx.Err()))
	s.cancel()
	select {
	case <-done:
	case <-time.After(abortGrace):
	}
	return fmt.Errorf("wait for running dispatch: %w", ctx.Err())
}

// Next returns the next scheduled fire time, or the zero time before Start.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// RunNow performs a single run bounded by the run timeout.
func (s *Scheduler) RunNow(ctx context.Context) (*port.RunStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.runner.Run(ctx)
}

func (s *Scheduler) tick() {
	if _, err := s.RunNow(s.base); err != nil {
		s.logger.Error("scheduled dispatch run failed", slog.Any("error", err))
	}
}

// cronLogger adapts slog to the cron.Logger interface.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}

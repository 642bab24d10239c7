package pipeline

import (
	"context"
	"log/slog"
	"time"
)

// ProcessFunc handles one source: fetch, normalize, dedup-check, write.
// Failures are the source's own problem; the scheduler logs and moves on.
type ProcessFunc func(ctx context.Context, source string) error

// RetryPolicy retries a failed source a fixed number of times with a
// fixed pause in between. The zero value means a single attempt.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// SchedulerOptions configures a Scheduler. Zero fields take the defaults
// noted on each.
type SchedulerOptions struct {
	Sources   []string
	BatchSize int           // default 5
	Cooldown  time.Duration // pause between batches, default 60s
	CycleRest time.Duration // pause between full passes, default 24h
	Retry     RetryPolicy   // default: one attempt, no retry
	Process   ProcessFunc
	Logger    *slog.Logger // default slog.Default()
}

// Scheduler walks the source list in fixed-size batches on a single
// goroutine, sleeping between batches and between full passes. Every
// suspension point honours context cancellation, so the loop can be
// stopped cleanly mid-cycle.
type Scheduler struct {
	sources   []string
	batchSize int
	cooldown  time.Duration
	cycleRest time.Duration
	retry     RetryPolicy
	process   ProcessFunc
	logger    *slog.Logger

	// sleep is swappable in tests; production always uses the
	// context-aware default.
	sleep func(ctx context.Context, d time.Duration) error
}

func NewScheduler(opts SchedulerOptions) *Scheduler {
	batchSize := opts.BatchSize
	if batchSize == 0 {
		batchSize = 5
	}

	cooldown := opts.Cooldown
	if cooldown == 0 {
		cooldown = 60 * time.Second
	}

	cycleRest := opts.CycleRest
	if cycleRest == 0 {
		cycleRest = 24 * time.Hour
	}

	retry := opts.Retry
	if retry.MaxAttempts == 0 {
		retry.MaxAttempts = 1
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		sources:   opts.Sources,
		batchSize: batchSize,
		cooldown:  cooldown,
		cycleRest: cycleRest,
		retry:     retry,
		process:   opts.Process,
		logger:    logger,
		sleep:     sleep,
	}
}

// Run loops full passes over the source list, resting cycleRest between
// them, until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		if err := s.RunOnce(ctx); err != nil {
			return err
		}

		s.logger.Info("cycle complete, sleeping before next pass", "rest", s.cycleRest)
		if err := s.sleep(ctx, s.cycleRest); err != nil {
			return err
		}
	}
}

// RunOnce processes every source once, batch by batch, with the cooldown
// pause between batches. The only error it returns is ctx's.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	for start := 0; start < len(s.sources); start += s.batchSize {
		end := start + s.batchSize
		if end > len(s.sources) {
			end = len(s.sources)
		}

		for _, source := range s.sources[start:end] {
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := s.processWithRetry(ctx, source); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.logger.Error("error processing source", "source", source, "error", err)
			}
		}

		s.logger.Info("batch complete, cooling down", "cooldown", s.cooldown)
		if err := s.sleep(ctx, s.cooldown); err != nil {
			return err
		}
	}

	return nil
}

func (s *Scheduler) processWithRetry(ctx context.Context, source string) error {
	var err error
	for attempt := 1; attempt <= s.retry.MaxAttempts; attempt++ {
		err = s.process(ctx, source)
		if err == nil {
			return nil
		}

		if attempt < s.retry.MaxAttempts {
			s.logger.Warn("retrying source", "source", source, "attempt", attempt, "error", err)
			if serr := s.sleep(ctx, s.retry.Backoff); serr != nil {
				return serr
			}
		}
	}
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

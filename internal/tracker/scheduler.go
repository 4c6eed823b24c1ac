package tracker

import (
	"context"
	"time"
)

// Scheduler runs a task on a fixed interval until its context is
// cancelled. Runs never overlap: a slow task simply delays the next
// tick.
type Scheduler struct {
	interval     time.Duration
	initialDelay time.Duration
	task         func(context.Context)
}

type SchedulerOption func(*Scheduler)

// WithInitialDelay schedules one extra run shortly after start, before
// the regular cadence begins. Zero disables it.
func WithInitialDelay(d time.Duration) SchedulerOption {
	return func(s *Scheduler) { s.initialDelay = d }
}

func NewScheduler(interval time.Duration, task func(context.Context), opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{interval: interval, task: task}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	if s.initialDelay > 0 {
		select {
		case <-time.After(s.initialDelay):
			s.task(ctx)
		case <-ctx.Done():
			return
		}
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.task(ctx)
		case <-ctx.Done():
			return
		}
	}
}

package scheduler

import (
	"context"
	"time"
)

// Scheduler invokes a task on a fixed interval. It replaces cron-style
// schedule strings with an explicit interval + callback pair.
type Scheduler struct {
	interval   time.Duration
	task       func()
	runAtStart bool
}

// New creates a scheduler. When runAtStart is true the task fires once
// immediately when Run is called, before the first tick.
func New(interval time.Duration, task func(), runAtStart bool) *Scheduler {
	return &Scheduler{
		interval:   interval,
		task:       task,
		runAtStart: runAtStart,
	}
}

// Run blocks, invoking the task every interval until ctx is cancelled.
// Invocations run sequentially on this goroutine; a slow task delays the
// next tick rather than overlapping it.
func (s *Scheduler) Run(ctx context.Context) {
	if s.runAtStart {
		s.task()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.task()
		}
	}
}

package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunAtStartFiresImmediately(t *testing.T) {
	var count atomic.Int64

	ctx, cancel := context.WithCancel(context.Background())
	s := New(time.Hour, func() { count.Add(1); cancel() }, true)

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}

	assert.Equal(t, int64(1), count.Load())
}

func TestPeriodicInvocation(t *testing.T) {
	var count atomic.Int64

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	s := New(20*time.Millisecond, func() { count.Add(1) }, false)

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()
	<-done

	// 120ms window with a 20ms interval: at least a few ticks, and none
	// after cancellation.
	got := count.Load()
	assert.GreaterOrEqual(t, got, int64(2))

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, got, count.Load())
}

func TestNoImmediateRunWithoutFlag(t *testing.T) {
	var count atomic.Int64

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	s := New(time.Hour, func() { count.Add(1) }, false)
	s.Run(ctx)

	assert.Zero(t, count.Load())
}

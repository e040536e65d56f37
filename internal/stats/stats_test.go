package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshotIsEmpty(t *testing.T) {
	s := New()
	snap := s.Snapshot()

	assert.Zero(t, snap.TotalRequests)
	assert.Zero(t, snap.SuccessfulRequests)
	assert.Zero(t, snap.FailedRequests)
	assert.Equal(t, "0.00%", snap.SuccessRate)
	assert.Nil(t, snap.LastRequestTime)
	assert.Nil(t, snap.LastSuccessTime)
	assert.False(t, snap.StartTime.IsZero())
}

func TestCountersBalance(t *testing.T) {
	s := New()

	// 3 attempts: two succeed, one fails
	s.RecordAttempt()
	s.RecordSuccess()
	s.RecordAttempt()
	s.RecordFailure()
	s.RecordAttempt()
	s.RecordSuccess()

	snap := s.Snapshot()
	assert.Equal(t, int64(3), snap.TotalRequests)
	assert.Equal(t, int64(2), snap.SuccessfulRequests)
	assert.Equal(t, int64(1), snap.FailedRequests)
	assert.Equal(t, snap.TotalRequests, snap.SuccessfulRequests+snap.FailedRequests)
}

func TestSuccessRateFormatting(t *testing.T) {
	s := New()

	s.RecordAttempt()
	s.RecordSuccess()
	s.RecordAttempt()
	s.RecordFailure()
	s.RecordAttempt()
	s.RecordFailure()

	snap := s.Snapshot()
	assert.Equal(t, "33.33%", snap.SuccessRate)
}

func TestSuccessRateAllSucceeded(t *testing.T) {
	s := New()

	s.RecordAttempt()
	s.RecordSuccess()

	snap := s.Snapshot()
	assert.Equal(t, "100.00%", snap.SuccessRate)
}

func TestTimestampsTracked(t *testing.T) {
	s := New()

	s.RecordAttempt()
	snap := s.Snapshot()
	require.NotNil(t, snap.LastRequestTime)
	assert.Nil(t, snap.LastSuccessTime)

	s.RecordSuccess()
	snap = s.Snapshot()
	require.NotNil(t, snap.LastSuccessTime)
	assert.False(t, snap.LastSuccessTime.Before(*snap.LastRequestTime))
}

func TestUptime(t *testing.T) {
	s := New()
	assert.GreaterOrEqual(t, s.Uptime().Nanoseconds(), int64(0))
}

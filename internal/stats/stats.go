package stats

import (
	"fmt"
	"sync"
	"time"

	"github.com/solana-devtools/sol-refill/internal/models"
)

// Stats accumulates process-wide request statistics. All mutation goes
// through the Record methods so the total == successful + failed invariant
// holds after every completed orchestration. Nothing is persisted.
type Stats struct {
	mu          sync.Mutex
	total       int64
	succeeded   int64
	failed      int64
	lastRequest time.Time
	lastSuccess time.Time
	started     time.Time
}

// New creates a statistics accumulator with the start time pinned to now
func New() *Stats {
	return &Stats{started: time.Now().UTC()}
}

// RecordAttempt counts an orchestration attempt
func (s *Stats) RecordAttempt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total++
	s.lastRequest = time.Now().UTC()
}

// RecordSuccess counts a successful funding outcome
func (s *Stats) RecordSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.succeeded++
	s.lastSuccess = time.Now().UTC()
}

// RecordFailure counts a cycle where every funding method failed
func (s *Stats) RecordFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed++
}

// Uptime returns time elapsed since process start
func (s *Stats) Uptime() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.started)
}

// Snapshot returns a consistent copy of the counters with the derived
// success rate. Rate is 0.00 when no requests have run yet.
func (s *Stats) Snapshot() models.StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := models.StatsSnapshot{
		TotalRequests:      s.total,
		SuccessfulRequests: s.succeeded,
		FailedRequests:     s.failed,
		SuccessRate:        formatRate(s.succeeded, s.total),
		StartTime:          s.started,
		UptimeSeconds:      time.Since(s.started).Seconds(),
	}

	if !s.lastRequest.IsZero() {
		t := s.lastRequest
		snap.LastRequestTime = &t
	}
	if !s.lastSuccess.IsZero() {
		t := s.lastSuccess
		snap.LastSuccessTime = &t
	}

	return snap
}

func formatRate(succeeded, total int64) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(succeeded)/float64(total)*100)
}

package session

import "sync"

// Limiter caps orchestrated requests per rolling session. The count tracks
// attempts, not successes: a cycle that ultimately fails still consumes a
// slot. State is in-memory only and lost on restart.
type Limiter struct {
	mu    sync.Mutex
	count int
	limit int
}

// NewLimiter creates a limiter allowing up to limit attempts per session
func NewLimiter(limit int) *Limiter {
	return &Limiter{limit: limit}
}

// CanRequest reports whether another attempt fits in the current session
func (l *Limiter) CanRequest() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count < l.limit
}

// RecordAttempt consumes one session slot
func (l *Limiter) RecordAttempt() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.count++
}

// Reset starts a new session. Invoked on a fixed schedule, independent of
// request activity.
func (l *Limiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.count = 0
}

// Usage returns the current count and the configured limit
func (l *Limiter) Usage() (count, limit int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count, l.limit
}

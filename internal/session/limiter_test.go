package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanRequestUntilLimit(t *testing.T) {
	limiter := NewLimiter(2)

	assert.True(t, limiter.CanRequest())
	limiter.RecordAttempt()
	assert.True(t, limiter.CanRequest())
	limiter.RecordAttempt()
	assert.False(t, limiter.CanRequest())

	count, limit := limiter.Usage()
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, limit)
}

func TestResetClearsCount(t *testing.T) {
	limiter := NewLimiter(2)

	limiter.RecordAttempt()
	limiter.RecordAttempt()
	limiter.RecordAttempt() // over the limit, still just a counter
	assert.False(t, limiter.CanRequest())

	limiter.Reset()

	count, _ := limiter.Usage()
	assert.Equal(t, 0, count)
	assert.True(t, limiter.CanRequest())
}

func TestResetIdempotent(t *testing.T) {
	limiter := NewLimiter(1)

	limiter.Reset()
	limiter.Reset()

	count, _ := limiter.Usage()
	assert.Equal(t, 0, count)
}

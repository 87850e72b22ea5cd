package signupfeed

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// RetryManager decides whether a failed publish is tried again and after how long.
type RetryManager struct {
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
}

func NewRetryManager(maxRetries int, baseDelay time.Duration) *RetryManager {
	return &RetryManager{
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		maxDelay:   baseDelay * 16,
	}
}

// ShouldRetry reports whether attempt (1 based) may be followed by another one.
func (r *RetryManager) ShouldRetry(attempt int, err error) (bool, time.Duration) {
	if attempt > r.maxRetries || !r.isRetryableError(err) {
		return false, 0
	}
	return true, r.calculateBackoff(attempt)
}

func (r *RetryManager) isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled)
}

// calculateBackoff is base * 2^(attempt-1) with ±25% jitter, capped at maxDelay.
func (r *RetryManager) calculateBackoff(attempt int) time.Duration {
	if attempt <= 1 || r.baseDelay <= 0 {
		return r.baseDelay
	}

	backoff := r.baseDelay * time.Duration(1<<(attempt-1))

	if quarter := int64(backoff / 4); quarter > 0 {
		jitter := time.Duration(rand.Int63n(2*quarter+1) - quarter)
		backoff += jitter
	}

	if backoff > r.maxDelay {
		backoff = r.maxDelay
	}
	return backoff
}

// ABOUTME: Retry helpers for OpenAI calls with exponential backoff
// ABOUTME: Used by the blocking chat path; streams are never retried
package util

import (
	"math/rand/v2"
	"time"
)

const maxBackoff = 30 * time.Second

// Backoff returns the delay before the given retry attempt: base
// doubled per attempt, capped at 30s, with +/-25% jitter. Attempt 0 is
// the initial call and gets no delay.
func Backoff(base time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	if attempt > 30 {
		attempt = 30 // keep the shift below overflow
	}
	d := base * time.Duration(1<<uint(attempt))
	if d > maxBackoff || d <= 0 {
		d = maxBackoff
	}
	jitter := time.Duration(rand.Int64N(int64(d)/2)) - d/4
	return d + jitter
}

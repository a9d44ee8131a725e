package anchor

import (
	"time"
)

// RetryPolicy is a pure description of the retry behavior: no sleeping, no
// I/O, so it is testable without a network. The client composes it with an
// injected http.Client.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: time.Second}
}

// ShouldRetry answers for a failed attempt. Network errors (err != nil with
// no response) and bare 5xx statuses are transient; anything the upstream
// answered deliberately is final.
func (p RetryPolicy) ShouldRetry(attempt int, err error) bool {
	if attempt >= p.MaxAttempts {
		return false
	}
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Retryable()
	}
	return err != nil
}

// Backoff grows linearly with the attempt number: 1s, 2s, 3s with the
// default base delay.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	return p.BaseDelay * time.Duration(attempt)
}

//go:build unit

package anchor_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"anchor-gateway/internal/infra/anchor"

	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestShouldRetry(t *testing.T) {
	policy := anchor.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Second}

	cases := []struct {
		name    string
		attempt int
		err     error
		want    bool
	}{
		{name: "network error retries", attempt: 1, err: errors.New("connection refused"), want: true},
		{name: "bare 500 retries", attempt: 1, err: &anchor.APIError{StatusCode: 500}, want: true},
		{name: "bare 502 retries", attempt: 2, err: &anchor.APIError{StatusCode: 502}, want: true},
		{name: "structured 500 is final", attempt: 1, err: &anchor.APIError{StatusCode: 500, Code: anchor.CodeInternalError}, want: false},
		{name: "400 is final", attempt: 1, err: &anchor.APIError{StatusCode: 400}, want: false},
		{name: "409 is final", attempt: 1, err: &anchor.APIError{StatusCode: 409, Code: anchor.CodeNoAvailability}, want: false},
		{name: "attempt budget exhausted", attempt: 3, err: &anchor.APIError{StatusCode: 500}, want: false},
		{name: "past budget", attempt: 4, err: errors.New("boom"), want: false},
		{name: "nil error never retries", attempt: 1, err: nil, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, policy.ShouldRetry(tc.attempt, tc.err))
		})
	}
}

func TestBackoff(t *testing.T) {
	policy := anchor.DefaultRetryPolicy()
	assert.Equal(t, time.Second, policy.Backoff(1))
	assert.Equal(t, 2*time.Second, policy.Backoff(2))
	assert.Equal(t, 3*time.Second, policy.Backoff(3))
}

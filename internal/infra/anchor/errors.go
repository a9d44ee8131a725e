package anchor

import (
	"encoding/json"
	"fmt"
)

// Error codes the upstream API is known to emit. Anything else is passed
// through untranslated.
const (
	CodeValidationError   = "VALIDATION_ERROR"
	CodeNoAvailability    = "NO_AVAILABILITY"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeDatabaseError     = "DATABASE_ERROR"
	CodeInternalError     = "INTERNAL_ERROR"
	CodeNotFound          = "NOT_FOUND"
)

// APIError is a structured upstream failure: either an error envelope the
// API returned deliberately, or a bare non-2xx status.
type APIError struct {
	StatusCode    int
	Code          string
	Message       string
	Details       json.RawMessage
	CorrelationID string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("anchor API error: %s (status=%d, code=%s)", e.Message, e.StatusCode, e.Code)
	}
	return fmt.Sprintf("anchor API error: %s (status=%d)", e.Message, e.StatusCode)
}

// Retryable reports whether a fresh attempt might succeed. Structured error
// envelopes are authoritative answers, never retried; only bare 5xx counts.
func (e *APIError) Retryable() bool {
	return e.Code == "" && e.StatusCode >= 500
}

func newAPIError(status int, we *wireError, fallbackMsg string) *APIError {
	apiErr := &APIError{StatusCode: status, Message: fallbackMsg}
	if we != nil {
		apiErr.Code = we.Code
		apiErr.Details = we.Details
		apiErr.CorrelationID = we.CorrelationID
		if we.Message != "" {
			apiErr.Message = we.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("API error: %d", status)
	}
	return apiErr
}

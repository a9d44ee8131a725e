// Package anchor is the HTTP client for the external reservations API. The
// gateway owns no booking state; everything here is request/response
// plumbing with retry, error decoding, and header handling in one place.
package anchor

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"anchor-gateway/internal/domain/booking"
	"anchor-gateway/internal/pkg/config"
	"anchor-gateway/internal/pkg/errs"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	retry   RetryPolicy
	logger  *slog.Logger
}

func NewClient(cfg config.AnchorConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
		retry: RetryPolicy{
			MaxAttempts: cfg.MaxAttempts,
			BaseDelay:   cfg.RetryBaseDelay,
		},
		logger: logger,
	}
}

// CreateTableBooking posts a booking with retry on transient upstream
// failure. Structured error envelopes and 4xx statuses are final on the
// first attempt.
func (c *Client) CreateTableBooking(ctx context.Context, payload booking.Payload, idempotencyKey string) (*Booking, error) {
	if c.apiKey == "" {
		return nil, errs.ErrAnchorNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "marshal booking payload")
	}

	headers := map[string]string{}
	if idempotencyKey != "" {
		headers["Idempotency-Key"] = idempotencyKey
	}

	var lastErr error
	for attempt := 1; ; attempt++ {
		raw, err := c.do(ctx, http.MethodPost, "/table-bookings", body, headers)
		if err == nil {
			var b Booking
			if err := json.Unmarshal(raw, &b); err != nil {
				return nil, errs.Wrap(err, "decode booking response")
			}
			b.Raw = raw
			return &b, nil
		}

		lastErr = err
		if !c.retry.ShouldRetry(attempt, err) {
			return nil, lastErr
		}

		c.logger.Warn("table booking attempt failed, retrying",
			"attempt", attempt, "error", err)
		if err := sleep(ctx, c.retry.Backoff(attempt)); err != nil {
			return nil, lastErr
		}
	}
}

// GetBusinessHours fetches the weekly schedule plus special-date overrides.
func (c *Client) GetBusinessHours(ctx context.Context) (*BusinessHours, error) {
	if c.apiKey == "" {
		return nil, errs.ErrAnchorNotConfigured
	}

	raw, err := c.do(ctx, http.MethodGet, "/business/hours", nil, nil)
	if err != nil {
		return nil, err
	}

	var hours BusinessHours
	if err := json.Unmarshal(raw, &hours); err != nil {
		return nil, errs.Wrap(err, "decode business hours")
	}
	return &hours, nil
}

// CheckTableAvailability queries free slots for a day.
func (c *Client) CheckTableAvailability(ctx context.Context, q AvailabilityQuery) (*Availability, error) {
	if c.apiKey == "" {
		return nil, errs.ErrAnchorNotConfigured
	}

	query := url.Values{}
	query.Set("date", q.Date)
	query.Set("party_size", strconv.Itoa(q.PartySize))
	if q.Time != "" {
		query.Set("time", q.Time)
	}
	if q.Duration != "" {
		query.Set("duration", q.Duration)
	}

	raw, err := c.do(ctx, http.MethodGet, "/table-bookings/availability?"+query.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}

	var avail Availability
	if err := json.Unmarshal(raw, &avail); err != nil {
		return nil, errs.Wrap(err, "decode availability")
	}
	avail.Raw = raw
	return &avail, nil
}

// GetTableBooking looks a booking up by its reference. The body is returned
// raw; the lookup route forwards the external object untouched.
func (c *Client) GetTableBooking(ctx context.Context, reference string) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, errs.ErrAnchorNotConfigured
	}
	return c.do(ctx, http.MethodGet, "/table-bookings/"+url.PathEscape(reference), nil, nil)
}

// CancelTableBooking deletes a booking by reference.
func (c *Client) CancelTableBooking(ctx context.Context, reference string) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, errs.ErrAnchorNotConfigured
	}
	return c.do(ctx, http.MethodDelete, "/table-bookings/"+url.PathEscape(reference), nil, nil)
}

// GetSundayLunchMenu fetches the current pre-order menu.
func (c *Client) GetSundayLunchMenu(ctx context.Context) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, errs.ErrAnchorNotConfigured
	}
	return c.do(ctx, http.MethodGet, "/table-bookings/menu/sunday-lunch", nil, nil)
}

// do performs one HTTP exchange and normalizes the three upstream answer
// shapes: bare object, {success:true,data}, and {success:false,error}. The
// unwrapped data is returned; every failure becomes an *APIError (or a
// wrapped transport error).
func (c *Client) do(ctx context.Context, method, path string, body []byte, headers map[string]string) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errs.Wrap(err, "build anchor request")
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "anchor request failed")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "read anchor response")
	}

	var env envelope
	decoded := json.Unmarshal(respBody, &env) == nil

	if resp.StatusCode >= http.StatusBadRequest {
		var we *wireError
		fallback := strings.TrimSpace(string(respBody))
		if decoded {
			we = env.Error
			if we == nil && env.Message != "" {
				fallback = env.Message
			}
		}
		apiErr := newAPIError(resp.StatusCode, we, fallback)
		c.logAPIError(method, path, apiErr)
		return nil, apiErr
	}

	if decoded && env.Success != nil && !*env.Success {
		apiErr := newAPIError(resp.StatusCode, env.Error, "upstream reported failure")
		c.logAPIError(method, path, apiErr)
		return nil, apiErr
	}

	if decoded && len(env.Data) > 0 {
		return env.Data, nil
	}
	return respBody, nil
}

func (c *Client) logAPIError(method, path string, apiErr *APIError) {
	attrs := []any{
		"method", method,
		"path", path,
		"status", apiErr.StatusCode,
		"code", apiErr.Code,
	}
	if apiErr.CorrelationID != "" {
		attrs = append(attrs, "correlation_id", apiErr.CorrelationID)
	}
	c.logger.Error("anchor API error", attrs...)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

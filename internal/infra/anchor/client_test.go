//go:build unit

package anchor_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"anchor-gateway/internal/domain/booking"
	"anchor-gateway/internal/infra/anchor"
	"anchor-gateway/internal/pkg/config"
	"anchor-gateway/internal/pkg/errs"
	"anchor-gateway/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*anchor.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig().Anchor
	cfg.BaseURL = srv.URL
	return anchor.NewClient(cfg, testLogger()), srv
}

func testPayload() booking.Payload {
	return builder.NewBookingBuilder().Build().ToPayload()
}

func TestCreateTableBooking(t *testing.T) {
	t.Run("success with bare object response", func(t *testing.T) {
		var gotKey, gotAPIKey atomic.Value
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey.Store(r.Header.Get("Idempotency-Key"))
			gotAPIKey.Store(r.Header.Get("X-API-Key"))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"booking_reference": "TB-2026-1234",
				"status":            "confirmed",
			})
		}))

		b, err := client.CreateTableBooking(context.Background(), testPayload(), "key-1")
		require.NoError(t, err)
		assert.Equal(t, "TB-2026-1234", b.Reference())
		assert.Equal(t, "confirmed", b.Status)
		assert.NotEmpty(t, b.Raw)
		assert.Equal(t, "key-1", gotKey.Load())
		assert.NotEmpty(t, gotAPIKey.Load())
	})

	t.Run("success envelope is unwrapped", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success":true,"data":{"booking_reference":"TB-9","status":"pending_payment","payment_required":true,"payment_details":{"amount":20}}}`))
		}))

		b, err := client.CreateTableBooking(context.Background(), testPayload(), "")
		require.NoError(t, err)
		assert.Equal(t, "TB-9", b.BookingReference)
		assert.True(t, b.PaymentRequired)
		assert.JSONEq(t, `{"amount":20}`, string(b.PaymentDetails))
	})

	t.Run("structured error is final on first attempt", func(t *testing.T) {
		var calls atomic.Int32
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"success":false,"error":{"code":"NO_AVAILABILITY","message":"no tables","correlation_id":"corr-7"}}`))
		}))

		_, err := client.CreateTableBooking(context.Background(), testPayload(), "")
		var apiErr *anchor.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, anchor.CodeNoAvailability, apiErr.Code)
		assert.Equal(t, "no tables", apiErr.Message)
		assert.Equal(t, "corr-7", apiErr.CorrelationID)
		assert.Equal(t, int32(1), calls.Load(), "deliberate upstream answers are not retried")
	})

	t.Run("bare 5xx retries up to the attempt budget", func(t *testing.T) {
		var calls atomic.Int32
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			http.Error(w, "upstream exploded", http.StatusBadGateway)
		}))

		_, err := client.CreateTableBooking(context.Background(), testPayload(), "")
		var apiErr *anchor.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("5xx then success recovers", func(t *testing.T) {
		var calls atomic.Int32
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte(`{"booking_reference":"TB-42","status":"confirmed"}`))
		}))

		b, err := client.CreateTableBooking(context.Background(), testPayload(), "")
		require.NoError(t, err)
		assert.Equal(t, "TB-42", b.Reference())
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("cancelled context stops the retry loop", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err := client.CreateTableBooking(ctx, testPayload(), "")
		assert.Error(t, err)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("missing API key fails before any network call", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			calls.Add(1)
		}))
		t.Cleanup(srv.Close)

		cfg := config.NewTestConfig().Anchor
		cfg.BaseURL = srv.URL
		cfg.APIKey = ""
		client := anchor.NewClient(cfg, testLogger())

		_, err := client.CreateTableBooking(context.Background(), testPayload(), "")
		assert.ErrorIs(t, err, errs.ErrAnchorNotConfigured)
		assert.Equal(t, int32(0), calls.Load())
	})
}

func TestGetBusinessHours(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/business/hours", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"regularHours": {
					"monday": {"is_closed": false, "kitchen": null},
					"friday": {"opens": "12:00", "closes": "23:00", "kitchen": {"opens": "12:00", "closes": "21:00"}}
				},
				"specialHours": [{"date": "2026-12-25", "is_closed": true, "note": "Closed for Christmas Day"}]
			}
		}`))
	}))

	hours, err := client.GetBusinessHours(context.Background())
	require.NoError(t, err)

	assert.True(t, hours.RegularHours["monday"].KitchenClosed(), "null kitchen means no food service")
	assert.False(t, hours.RegularHours["friday"].KitchenClosed())
	require.Len(t, hours.SpecialHours, 1)
	assert.True(t, hours.SpecialHours[0].ClosesKitchen())
}

func TestCheckTableAvailability(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/table-bookings/availability", r.URL.Path)
		assert.Equal(t, "2026-09-18", r.URL.Query().Get("date"))
		assert.Equal(t, "4", r.URL.Query().Get("party_size"))
		_, _ = w.Write([]byte(`{"available":true,"time_slots":[{"time":"18:00","available":true},{"time":"19:00","available":false}]}`))
	}))

	avail, err := client.CheckTableAvailability(context.Background(), anchor.AvailabilityQuery{
		Date:      "2026-09-18",
		PartySize: 4,
	})
	require.NoError(t, err)
	assert.True(t, avail.Available)
	require.Len(t, avail.TimeSlots, 2)
	assert.False(t, avail.TimeSlots[1].Available)
}

func TestGetTableBooking(t *testing.T) {
	t.Run("raw passthrough", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/table-bookings/TB-77", r.URL.Path)
			_, _ = w.Write([]byte(`{"booking_reference":"TB-77","status":"confirmed","extra_upstream_field":1}`))
		}))

		raw, err := client.GetTableBooking(context.Background(), "TB-77")
		require.NoError(t, err)
		assert.JSONEq(t, `{"booking_reference":"TB-77","status":"confirmed","extra_upstream_field":1}`, string(raw))
	})

	t.Run("upstream 404", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"error":{"code":"NOT_FOUND","message":"booking not found"}}`))
		}))

		_, err := client.GetTableBooking(context.Background(), "TB-0")
		var apiErr *anchor.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, anchor.CodeNotFound, apiErr.Code)
	})
}

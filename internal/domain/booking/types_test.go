//go:build unit

package booking_test

import (
	"encoding/json"
	"testing"

	"anchor-gateway/internal/domain/booking"
	"anchor-gateway/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPayload(t *testing.T) {
	t.Run("channel defaults", func(t *testing.T) {
		req := builder.NewBookingBuilder().WithSource("").Build()
		p := req.ToPayload()

		assert.Equal(t, booking.DefaultDurationMinutes, p.DurationMinutes)
		assert.Equal(t, booking.SourceWebsite, p.Source)
		assert.True(t, p.Customer.SMSOptIn, "sms_opt_in defaults to true when unstated")
	})

	t.Run("explicit sms opt-out survives", func(t *testing.T) {
		req := builder.NewBookingBuilder().WithSMSOptIn(false).Build()
		assert.False(t, req.ToPayload().Customer.SMSOptIn)
	})

	t.Run("optional fields are pruned, not sent empty", func(t *testing.T) {
		req := builder.NewBookingBuilder().Build()
		req.SpecialRequirements = "   "
		req.DietaryRequirements = booking.StringList{"  ", ""}
		req.Allergies = nil

		raw, err := json.Marshal(req.ToPayload())
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(raw, &m))
		assert.NotContains(t, m, "special_requirements")
		assert.NotContains(t, m, "dietary_requirements")
		assert.NotContains(t, m, "allergies")
	})

	t.Run("string list entries are trimmed", func(t *testing.T) {
		req := builder.NewBookingBuilder().Build()
		req.DietaryRequirements = booking.StringList{" vegan ", "", "gluten free"}

		got := req.ToPayload().DietaryRequirements
		if diff := cmp.Diff([]string{"vegan", "gluten free"}, got); diff != "" {
			t.Errorf("dietary requirements mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("menu selections only cross the wire for sunday lunch", func(t *testing.T) {
		sel := builder.MenuSelection()

		regular := builder.NewBookingBuilder().WithMenuSelections(sel).Build()
		assert.Empty(t, regular.ToPayload().MenuSelections)

		lunch := builder.NewBookingBuilder().
			WithType(booking.TypeSundayLunch).
			WithDate(builder.SundayDate).
			WithMenuSelections(sel).
			Build()
		assert.Len(t, lunch.ToPayload().MenuSelections, 1)
	})
}

func TestIdempotencyKey(t *testing.T) {
	req := builder.NewBookingBuilder().Build()

	// same logical booking, same key, every time
	assert.Equal(t, req.IdempotencyKey(), req.IdempotencyKey())
	assert.Equal(t, "2026-09-18-19:00-07700900123-4", req.IdempotencyKey())

	other := builder.NewBookingBuilder().WithPartySize(5).Build()
	assert.NotEqual(t, req.IdempotencyKey(), other.IdempotencyKey())
}

func TestInferType(t *testing.T) {
	assert.Equal(t, booking.TypeSundayRoast, booking.InferType("", builder.SundayDate))
	assert.Equal(t, booking.TypeRegular, booking.InferType("", builder.FridayDate))
	assert.Equal(t, booking.TypeRegular, booking.InferType(booking.TypeRegular, builder.SundayDate))
	assert.Equal(t, booking.TypeSundayLunch, booking.InferType(booking.TypeSundayLunch, builder.FridayDate))
}

func TestRequiresKitchen(t *testing.T) {
	assert.True(t, booking.TypeRegular.RequiresKitchen())
	assert.True(t, booking.TypeSundayLunch.RequiresKitchen())
	assert.False(t, booking.TypeSundayRoast.RequiresKitchen())
}

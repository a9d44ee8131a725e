//go:build unit

package booking_test

import (
	"errors"
	"testing"

	"anchor-gateway/internal/domain/booking"
	"anchor-gateway/internal/pkg/errs"
	"anchor-gateway/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("complete regular request passes", func(t *testing.T) {
		req := builder.NewBookingBuilder().Build()
		assert.NoError(t, req.Validate())
	})

	t.Run("missing fields are collected, not reported one at a time", func(t *testing.T) {
		req := builder.NewBookingBuilder().
			WithDate("").
			WithTime("").
			WithCustomer(booking.Customer{LastName: "Smith", MobileNumber: "07700900123"}).
			Build()

		err := req.Validate()
		var vErr *booking.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"date", "time", "customer.first_name"}, vErr.Missing)
	})

	t.Run("party size range", func(t *testing.T) {
		cases := []struct {
			name string
			size int
			ok   bool
		}{
			{name: "minimum", size: 1, ok: true},
			{name: "maximum", size: 20, ok: true},
			{name: "over maximum", size: 21, ok: false},
			{name: "negative", size: -3, ok: false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				err := builder.NewBookingBuilder().WithPartySize(tc.size).Build().Validate()
				if tc.ok {
					assert.NoError(t, err)
				} else {
					// a range failure is not a missing-field failure
					assert.ErrorIs(t, err, errs.ErrPartySizeOutOfRange)
					var vErr *booking.ValidationError
					assert.False(t, errors.As(err, &vErr))
				}
			})
		}
	})

	t.Run("zero party size reads as missing", func(t *testing.T) {
		err := builder.NewBookingBuilder().WithPartySize(0).Build().Validate()
		var vErr *booking.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Missing, "party_size")
	})

	t.Run("sunday lunch requires menu selections", func(t *testing.T) {
		req := builder.NewBookingBuilder().
			WithType(booking.TypeSundayLunch).
			WithDate(builder.SundayDate).
			Build()
		assert.ErrorIs(t, req.Validate(), errs.ErrMenuSelectionsRequired)
	})

	t.Run("menu selection field checks", func(t *testing.T) {
		zero := 0.0
		mutations := []struct {
			name   string
			mutate func(*booking.MenuSelection)
			valid  bool
		}{
			{name: "valid selection", mutate: func(*booking.MenuSelection) {}, valid: true},
			{name: "zero price is still a price", mutate: func(m *booking.MenuSelection) { m.PriceAtBooking = &zero }, valid: true},
			{name: "no guest name", mutate: func(m *booking.MenuSelection) { m.GuestName = "" }},
			{name: "no menu item", mutate: func(m *booking.MenuSelection) { m.MenuItemID = "" }},
			{name: "no item type", mutate: func(m *booking.MenuSelection) { m.ItemType = "" }},
			{name: "zero quantity", mutate: func(m *booking.MenuSelection) { m.Quantity = 0 }},
			{name: "absent price", mutate: func(m *booking.MenuSelection) { m.PriceAtBooking = nil }},
		}
		for _, tc := range mutations {
			t.Run(tc.name, func(t *testing.T) {
				sel := builder.MenuSelection()
				tc.mutate(&sel)
				req := builder.NewBookingBuilder().
					WithType(booking.TypeSundayLunch).
					WithDate(builder.SundayDate).
					WithMenuSelections(sel).
					Build()
				err := req.Validate()
				if tc.valid {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, errs.ErrInvalidMenuSelection)
				}
			})
		}
	})

	t.Run("regular bookings ignore menu selections entirely", func(t *testing.T) {
		req := builder.NewBookingBuilder().
			WithMenuSelections(booking.MenuSelection{}).
			Build()
		assert.NoError(t, req.Validate())
	})
}

//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"anchor-gateway/internal/infra/anchor"
	"anchor-gateway/internal/pkg/config"
	"anchor-gateway/internal/usecase"
	"anchor-gateway/tests/common/builder"
	usecasemock "anchor-gateway/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGate(t *testing.T) (*usecase.KitchenGate, *usecasemock.MockAnchorClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := usecasemock.NewMockAnchorClient(ctrl)
	gate := usecase.NewKitchenGate(client, config.NewTestConfig().Contact, testLogger())
	return gate, client
}

func openWeek() *anchor.BusinessHours {
	kitchen := &anchor.KitchenHours{Opens: "12:00", Closes: "21:00"}
	return &anchor.BusinessHours{
		RegularHours: map[string]anchor.DayHours{
			"tuesday":  {Opens: "12:00", Closes: "23:00", Kitchen: kitchen},
			"friday":   {Opens: "12:00", Closes: "23:00", Kitchen: kitchen},
			"saturday": {Opens: "12:00", Closes: "23:00", Kitchen: kitchen},
			"sunday":   {Opens: "12:00", Closes: "22:00", Kitchen: kitchen},
			"monday":   {Opens: "16:00", Closes: "23:00", Kitchen: nil},
		},
	}
}

func TestKitchenGateCheck(t *testing.T) {
	t.Run("open day", func(t *testing.T) {
		gate, client := newGate(t)
		client.EXPECT().GetBusinessHours(gomock.Any()).Return(openWeek(), nil)

		status := gate.Check(context.Background(), builder.FridayDate)
		assert.True(t, status.Open)
		assert.Empty(t, status.Message)
	})

	t.Run("monday gets the bar-service message", func(t *testing.T) {
		gate, client := newGate(t)
		client.EXPECT().GetBusinessHours(gomock.Any()).Return(openWeek(), nil)

		status := gate.Check(context.Background(), builder.MondayDate)
		assert.False(t, status.Open)
		assert.Equal(t,
			"Kitchen is closed on Mondays. Bar service only - please call 01753 682707 for drinks-only reservations.",
			status.Message)
	})

	t.Run("weekday absent from schedule counts as closed", func(t *testing.T) {
		gate, client := newGate(t)
		hours := openWeek()
		delete(hours.RegularHours, "friday")
		client.EXPECT().GetBusinessHours(gomock.Any()).Return(hours, nil)

		status := gate.Check(context.Background(), builder.FridayDate)
		assert.False(t, status.Open)
		assert.Equal(t, "Kitchen is closed on Fridays. No food service available.", status.Message)
	})

	t.Run("special hours override wins over open weekly schedule", func(t *testing.T) {
		gate, client := newGate(t)
		hours := openWeek()
		hours.SpecialHours = []anchor.SpecialHours{
			{Date: builder.FridayDate, IsClosed: true, Note: "Closed for a private event"},
		}
		client.EXPECT().GetBusinessHours(gomock.Any()).Return(hours, nil)

		status := gate.Check(context.Background(), builder.FridayDate)
		assert.False(t, status.Open)
		assert.Equal(t, "Closed for a private event", status.Message)
	})

	t.Run("special hours without a note get the generic message", func(t *testing.T) {
		gate, client := newGate(t)
		hours := openWeek()
		hours.SpecialHours = []anchor.SpecialHours{{Date: builder.FridayDate, IsClosed: true}}
		client.EXPECT().GetBusinessHours(gomock.Any()).Return(hours, nil)

		status := gate.Check(context.Background(), builder.FridayDate)
		assert.False(t, status.Open)
		assert.Equal(t, "Kitchen is closed on this date due to special circumstances.", status.Message)
	})

	t.Run("special hours for a different date are ignored", func(t *testing.T) {
		gate, client := newGate(t)
		hours := openWeek()
		hours.SpecialHours = []anchor.SpecialHours{{Date: "2026-12-25", IsClosed: true}}
		client.EXPECT().GetBusinessHours(gomock.Any()).Return(hours, nil)

		status := gate.Check(context.Background(), builder.FridayDate)
		assert.True(t, status.Open)
	})

	t.Run("hours fetch failure fails open", func(t *testing.T) {
		gate, client := newGate(t)
		client.EXPECT().GetBusinessHours(gomock.Any()).Return(nil, errors.New("upstream down"))

		status := gate.Check(context.Background(), builder.FridayDate)
		assert.True(t, status.Open, "bookings must not be blocked by an hours outage")
	})

	t.Run("unparseable date fails open without a fetch", func(t *testing.T) {
		gate, _ := newGate(t)
		status := gate.Check(context.Background(), "not-a-date")
		assert.True(t, status.Open)
	})
}

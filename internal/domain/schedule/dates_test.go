//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"anchor-gateway/internal/domain/schedule"
	"anchor-gateway/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// anchor instant for relative dates: Wednesday 16 September 2026, mid-afternoon
var wednesdayAfternoon = time.Date(2026, 9, 16, 15, 30, 0, 0, schedule.London)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ISO passthrough", input: "2026-12-25", want: "2026-12-25"},
		{name: "UK slash format", input: "25/12/2026", want: "2026-12-25"},
		{name: "long form", input: "25 December 2026", want: "2026-12-25"},
		{name: "today", input: "today", want: "2026-09-16"},
		{name: "today mixed case with spaces", input: "  Today ", want: "2026-09-16"},
		{name: "tomorrow", input: "tomorrow", want: "2026-09-17"},
		{name: "next weekday later this week", input: "next friday", want: "2026-09-18"},
		{name: "next same weekday advances a week", input: "next wednesday", want: "2026-09-23"},
		{name: "next sunday", input: "Next Sunday", want: "2026-09-20"},
		{name: "this same weekday is today", input: "this wednesday", want: "2026-09-16"},
		{name: "this sunday", input: "this sunday", want: "2026-09-20"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := schedule.NormalizeDate(wednesdayAfternoon, tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("unparseable input", func(t *testing.T) {
		for _, input := range []string{"", "someday", "next weekend", "the 5th"} {
			_, err := schedule.NormalizeDate(wednesdayAfternoon, input)
			assert.ErrorIs(t, err, errs.ErrDateParse, "input %q", input)
		}
	})
}

func TestWeekdayName(t *testing.T) {
	name, err := schedule.WeekdayName("2026-09-20")
	require.NoError(t, err)
	assert.Equal(t, "sunday", name)

	name, err = schedule.WeekdayName("2026-09-21")
	require.NoError(t, err)
	assert.Equal(t, "monday", name)

	_, err = schedule.WeekdayName("not-a-date")
	assert.ErrorIs(t, err, errs.ErrDateParse)
}

func TestIsSunday(t *testing.T) {
	assert.True(t, schedule.IsSunday("2026-09-20"))
	assert.False(t, schedule.IsSunday("2026-09-18"))
	assert.False(t, schedule.IsSunday("garbage"))
}

func TestFormatForDisplay(t *testing.T) {
	assert.Equal(t, "Sunday, 20 September", schedule.FormatDateForDisplay("2026-09-20"))
	assert.Equal(t, "7:30 PM", schedule.FormatTimeForDisplay("19:30"))
	assert.Equal(t, "12:00 PM", schedule.FormatTimeForDisplay("12:00"))
	assert.Equal(t, "12:15 AM", schedule.FormatTimeForDisplay("00:15"))

	// unparseable values pass through untouched
	assert.Equal(t, "late", schedule.FormatTimeForDisplay("late"))
}

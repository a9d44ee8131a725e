// Package schedule resolves the calendar side of a booking: turning what a
// customer typed ("tomorrow", "next sunday", "2024-01-15") into a concrete
// Europe/London calendar date, and answering day-of-week questions about it.
package schedule

import (
	"fmt"
	"strings"
	"time"

	"anchor-gateway/internal/pkg/errs"
)

// DateLayout is the canonical wire format for booking dates.
const DateLayout = "2006-01-02"

// London is the venue's calendar. Day-of-week decisions (Sunday roast,
// Monday kitchen closure) follow the pub's wall clock, not UTC.
var London = mustLoadLondon()

func mustLoadLondon() *time.Location {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		panic("schedule: cannot load Europe/London: " + err.Error())
	}
	return loc
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// layouts tried for free-text input that is not a relative expression.
var parseLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006/01/02",
	"02/01/2006",
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// NormalizeDate turns free-text or ISO date input into a canonical
// YYYY-MM-DD string. now anchors relative expressions and is truncated to
// the London calendar day.
func NormalizeDate(now time.Time, input string) (string, error) {
	if d, ok := tryParseDate(input); ok {
		return d, nil
	}

	today := Today(now)
	lower := strings.ToLower(strings.TrimSpace(input))

	switch lower {
	case "today":
		return today.Format(DateLayout), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1).Format(DateLayout), nil
	}

	if day, ok := strings.CutPrefix(lower, "next "); ok {
		if wd, known := weekdayNames[day]; known {
			return nextWeekday(today, wd).Format(DateLayout), nil
		}
	}

	if day, ok := strings.CutPrefix(lower, "this "); ok {
		if wd, known := weekdayNames[day]; known {
			return thisWeekday(today, wd).Format(DateLayout), nil
		}
	}

	if d, ok := tryParseDate(lower); ok {
		return d, nil
	}

	return "", errs.Wrap(errs.ErrDateParse, fmt.Sprintf("unrecognized date %q", input))
}

func tryParseDate(input string) (string, bool) {
	s := strings.TrimSpace(input)
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), true
		}
	}
	return "", false
}

// Today truncates an instant to the London calendar day.
func Today(now time.Time) time.Time {
	y, m, d := now.In(London).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, London)
}

// nextWeekday is strictly after from: landing on the same weekday advances
// a full week.
func nextWeekday(from time.Time, wd time.Weekday) time.Time {
	days := (int(wd) - int(from.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return from.AddDate(0, 0, days)
}

// thisWeekday is on or after from: the same weekday resolves to today.
func thisWeekday(from time.Time, wd time.Weekday) time.Time {
	days := (int(wd) - int(from.Weekday()) + 7) % 7
	return from.AddDate(0, 0, days)
}

// Weekday reports a canonical date's London day of week.
func Weekday(date string) (time.Weekday, error) {
	t, err := time.ParseInLocation(DateLayout, date, London)
	if err != nil {
		return 0, errs.Wrap(errs.ErrDateParse, fmt.Sprintf("invalid date %q", date))
	}
	return t.Weekday(), nil
}

// WeekdayName returns the lower-case English day name used as the key into
// the external API's weekly hours map.
func WeekdayName(date string) (string, error) {
	wd, err := Weekday(date)
	if err != nil {
		return "", err
	}
	return strings.ToLower(wd.String()), nil
}

// IsSunday reports whether the canonical date falls on a Sunday. Unparseable
// dates count as non-Sundays; validation catches them separately.
func IsSunday(date string) bool {
	wd, err := Weekday(date)
	return err == nil && wd == time.Sunday
}

// FormatDateForDisplay renders a canonical date for confirmation messages,
// e.g. "Sunday, 14 January".
func FormatDateForDisplay(date string) string {
	t, err := time.ParseInLocation(DateLayout, date, London)
	if err != nil {
		return date
	}
	return t.Format("Monday, 2 January")
}

// FormatTimeForDisplay renders an HH:MM time on a 12-hour clock,
// e.g. "1:00 PM".
func FormatTimeForDisplay(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}

// Package shift splits a daily work schedule into day and night hours under
// the CLT night window (22:00 to 05:00).
package shift

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rgehrsitz/folha/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrUnparsableTime is returned when a clock string is not HH:MM
var ErrUnparsableTime = errors.New("unparsable time")

const (
	minutesPerDay = 24 * 60
	nightStart    = 22 * 60
	nightEnd      = 5 * 60
)

// Hours is the classification of one day's schedule.
// Values are unrounded minute counts divided by sixty.
type Hours struct {
	DayHours   decimal.Decimal `yaml:"day_hours" json:"day_hours"`
	NightHours decimal.Decimal `yaml:"night_hours" json:"night_hours"`
	TotalHours decimal.Decimal `yaml:"total_hours" json:"total_hours"`
}

// Schedule is a daily start/end with an optional unpaid break
type Schedule struct {
	Start       string
	End         string
	BreakStart  string
	BreakEnd    string
	ExtendNight bool // night continues past 05:00 for shifts starting in the night window
}

// ParseClock converts HH:MM into minutes since midnight
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrUnparsableTime, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrUnparsableTime, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrUnparsableTime, s)
	}
	return h*60 + m, nil
}

func isNightMinute(tod int) bool {
	return tod >= nightStart || tod < nightEnd
}

// Analyze classifies every worked minute of the schedule as day or night.
// An end before the start crosses midnight. A break that parses and lies inside
// the shift is excluded entirely. Start or end failing to parse is an error.
func Analyze(s Schedule) (Hours, error) {
	start, err := ParseClock(s.Start)
	if err != nil {
		return Hours{}, fmt.Errorf("shift start: %w", err)
	}
	end, err := ParseClock(s.End)
	if err != nil {
		return Hours{}, fmt.Errorf("shift end: %w", err)
	}
	if end < start {
		end += minutesPerDay
	}

	breakFrom, breakTo, hasBreak := resolveBreak(s, start, end)

	// first 05:00 boundary at or after the start
	fiveAM := start - start%minutesPerDay + nightEnd
	if start%minutesPerDay >= nightEnd {
		fiveAM += minutesPerDay
	}
	extended := s.ExtendNight && isNightMinute(start%minutesPerDay)

	var dayMinutes, nightMinutes int64
	for m := start; m < end; m++ {
		if hasBreak && m >= breakFrom && m < breakTo {
			continue
		}
		if isNightMinute(m%minutesPerDay) || (extended && m >= fiveAM) {
			nightMinutes++
		} else {
			dayMinutes++
		}
	}

	sixty := decimal.NewFromInt(60)
	return Hours{
		DayHours:   decimal.NewFromInt(dayMinutes).Div(sixty),
		NightHours: decimal.NewFromInt(nightMinutes).Div(sixty),
		TotalHours: decimal.NewFromInt(dayMinutes + nightMinutes).Div(sixty),
	}, nil
}

// resolveBreak places the break on the shift's timeline, shifting it past
// midnight for overnight shifts. It reports false when the break is absent,
// unparsable or outside [start, end].
func resolveBreak(s Schedule, start, end int) (int, int, bool) {
	if s.BreakStart == "" || s.BreakEnd == "" {
		return 0, 0, false
	}
	from, err := ParseClock(s.BreakStart)
	if err != nil {
		return 0, 0, false
	}
	to, err := ParseClock(s.BreakEnd)
	if err != nil {
		return 0, 0, false
	}
	if end > minutesPerDay && from < start {
		from += minutesPerDay
	}
	if to < from {
		to += minutesPerDay
	}
	if from < start || to > end {
		return 0, 0, false
	}
	return from, to, true
}

// MonthlyTotals scales a daily classification to the month. Derived overtime
// is the daily excess over eight hours and only applies to the standard scale.
// The result is advisory; callers skip it when explicit totals exist.
func MonthlyTotals(h Hours, daysWorked int, scale domain.WorkScale) (nightHours, overtimeHours decimal.Decimal) {
	days := decimal.NewFromInt(int64(daysWorked))
	nightHours = h.NightHours.Mul(days)
	overtimeHours = decimal.Zero
	if scale != domain.ScaleTwelveByThirtySix {
		excess := h.TotalHours.Sub(decimal.NewFromInt(8))
		if excess.IsPositive() {
			overtimeHours = excess.Mul(days)
		}
	}
	return nightHours, overtimeHours
}

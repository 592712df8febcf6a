package calendar

import (
	"time"

	"github.com/rgehrsitz/folha/internal/domain"
)

// CountSundays counts the Sundays in [startDate, endDate] that the schedule
// actually works. Unparsable dates or an inverted range yield zero.
func CountSundays(startDate, endDate string, scale domain.WorkScale, schedule domain.ShiftScheduleType) int {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0
	}
	return CountSundaysBetween(start, end, scale, schedule)
}

// CountSundaysBetween is CountSundays over parsed dates
func CountSundaysBetween(start, end time.Time, scale domain.WorkScale, schedule domain.ShiftScheduleType) int {
	start = truncateDay(start)
	end = truncateDay(end)

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Sunday {
			continue
		}
		if worksOn(d, scale, schedule) {
			count++
		}
	}
	return count
}

// worksOn applies the 12x36 day-of-month parity; other scales work every Sunday
func worksOn(d time.Time, scale domain.WorkScale, schedule domain.ShiftScheduleType) bool {
	if scale != domain.ScaleTwelveByThirtySix {
		return true
	}
	odd := d.Day()%2 == 1
	switch schedule {
	case domain.ScheduleOdd:
		return odd
	case domain.ScheduleEven:
		return !odd
	default:
		return false
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

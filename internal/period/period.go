package period

import (
	"github.com/paycycle/backend/internal/types"
)

// Period is the pay period enclosing a reference date.
//
// Start and End are 1-based days of month. When EndNextMonth is set,
// End is a day in the month after the reference date. It is signaled
// explicitly instead of being expressed as a numeric overflow.
type Period struct {
	Start        int
	End          int
	EndNextMonth bool

	// Length is the total number of days in the period.
	Length int

	// RemainingDays is End - referenceDay + 1. When End is a day in
	// the next month this goes to zero or below; consumers treat that
	// as "no days left to spread over".
	RemainingDays int
}

// Resolve computes the pay period that encloses the reference date
// under the given payday schedule.
func Resolve(date types.Date, p Policy) Period {
	year, month, day := date.Year(), date.Month(), date.Day()
	daysInMonth := DaysInMonth(year, month)

	var start, end int
	var endNextMonth bool

	switch p.Type {
	case TypeTwiceMonthly:
		if day < 15 {
			start, end = 1, 14
		} else {
			start, end = 15, daysInMonth
		}

	case TypeSpecificDay:
		effective := ClampDay(p.Day, daysInMonth)
		if day < effective {
			// Last month's payday up to the day before this month's.
			start = ClampDay(p.Day, DaysInMonth(year, month-1))
			end = effective - 1
		} else {
			// This month's payday up to the day before next month's.
			start = effective
			end = ClampDay(p.Day, DaysInMonth(year, month+1)) - 1
			endNextMonth = true
		}

	case TypeWeekly:
		// Fixed calendar buckets, not a rolling window from the last
		// payday. The last bucket absorbs day 29 and up.
		switch {
		case day <= 7:
			start, end = 1, 7
		case day <= 14:
			start, end = 8, 14
		case day <= 21:
			start, end = 15, 21
		case day <= 28:
			start, end = 22, 28
		default:
			start, end = 29, daysInMonth
		}

	case TypeDaily:
		start, end = day, day

	default:
		// TypeMonthly, and the fallback when no payday is configured.
		start, end = 1, daysInMonth
	}

	var length int
	switch {
	case endNextMonth:
		// The period runs from this month's payday into the next month.
		length = daysInMonth - start + 1 + end
	case start > end:
		// The period started on the previous month's payday.
		length = DaysInMonth(year, month-1) - start + 1 + end
	default:
		length = end - start + 1
	}

	remaining := end - day + 1

	return Period{
		Start:         start,
		End:           end,
		EndNextMonth:  endNextMonth,
		Length:        length,
		RemainingDays: remaining,
	}
}

// Package period implements pay-period resolution for the pay-cycle
// backend.
//
// Everything in this package is pure computation over its arguments.
// Nothing reads ambient state, so concurrent calculations over
// different snapshots cannot interfere.
package period

import "time"

// DaysInMonth returns the number of days in the given calendar month.
// Out-of-range months are normalized, so month 0 is December of the
// previous year and month 13 is January of the next one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay clamps a day of month to the last valid day of the month.
// A bill due on day 31 is due on day 30 in a 30-day month.
func ClampDay(day, daysInMonth int) int {
	if day > daysInMonth {
		return daysInMonth
	}

	return day
}

// DayInRange reports whether day falls into [start, end]. When the
// range wraps past the end of the month (start > end), it covers
// [start, daysInMonth] and [1, end] instead.
func DayInRange(day, start, end, daysInMonth int) bool {
	if start <= end {
		return day >= start && day <= end
	}

	return (day >= start && day <= daysInMonth) || (day >= 1 && day <= end)
}

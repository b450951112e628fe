package utils

import "time"

// DayStart truncate time to its day zero clock
func DayStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// MonthStart truncate time to the first day of its month
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// MonthsBetween return the month starts that fall inside [start, end], ascending.
// A start that is not itself a month start rounds up to the next month, so a
// partial leading month contributes nothing.
func MonthsBetween(start, end time.Time) []time.Time {
	first := MonthStart(start)
	if first.Before(start) {
		first = first.AddDate(0, 1, 0)
	}

	var months []time.Time
	for current := first; !current.After(end); current = current.AddDate(0, 1, 0) {
		months = append(months, current)
	}

	return months
}

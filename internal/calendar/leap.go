// ABOUTME: Leap-year helpers and leap-day counting between two dates
// ABOUTME: Month lengths via a day-count bitmask, Feb 29 aware

package calendar

import (
	"fmt"
	"time"
)

// IsLeapYear reports whether year is a leap year in the proleptic
// Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of year.
func DaysInMonth(year int, m time.Month) int {
	if m == time.February {
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	// One bit per month, set for 31-day months.
	const bits = 0b1010110101010
	return 30 + (bits>>m)&1
}

// LeapDaysBetween returns the number of leap days (Feb 29 occurrences)
// between from and to. Endpoints falling after February 28 of a leap year
// shift the count: a leap day already passed at from is excluded, one
// already passed at to is included.
func LeapDaysBetween(from, to time.Time) (int, error) {
	if from.After(to) {
		return 0, fmt.Errorf("from %s is after to %s",
			from.Format("2006-01-02"), to.Format("2006-01-02"))
	}

	count := leapsThrough(to.Year()-1) - leapsThrough(from.Year()-1)

	if IsLeapYear(from.Year()) && pastFeb28(from) {
		count--
	}
	if IsLeapYear(to.Year()) && pastFeb28(to) {
		count++
	}
	return count, nil
}

// leapsThrough counts leap years in [1, year].
func leapsThrough(year int) int {
	return year/4 - year/100 + year/400
}

func pastFeb28(t time.Time) bool {
	return t.Month() > time.February ||
		(t.Month() == time.February && t.Day() > 28)
}

// ABOUTME: Calendar shifter with carry-forward month overflow
// ABOUTME: Moves an instant by a signed offset without ever clamping to month end

package calendar

import "time"

// Shift moves base by the given offset in the given direction.
//
// Year and month components are applied first. When the base day-of-month
// does not exist in the target month, the excess days carry forward into the
// next month (Feb 29 + 1 year lands on Mar 1, not Feb 28). Week and day
// components are then added as calendar days, and the time-of-day components
// as a plain duration with natural carry across midnight.
//
// Shift is pure and total: any finite offset yields a valid instant. The
// location and sub-second fields of base are preserved.
func Shift(base time.Time, o Offset, d Direction) time.Time {
	if d == Past {
		o = o.Negated()
	}

	t := base
	if o.Years != 0 || o.Months != 0 {
		t = addMonths(t, o.Years*12+o.Months)
	}
	if o.Weeks != 0 || o.Days != 0 {
		t = t.AddDate(0, 0, o.Weeks*7+o.Days)
	}

	delta := time.Duration(o.Hours)*time.Hour +
		time.Duration(o.Minutes)*time.Minute +
		time.Duration(o.Seconds)*time.Second
	if delta != 0 {
		t = t.Add(delta)
	}
	return t
}

// addMonths moves t by a signed number of months, carrying day overflow
// forward into the following month instead of clamping.
func addMonths(t time.Time, months int) time.Time {
	// Work on a zero-based month index so floor division handles
	// negative totals.
	total := t.Year()*12 + int(t.Month()) - 1 + months
	year := total / 12
	month := total % 12
	if month < 0 {
		month += 12
		year--
	}

	day := t.Day()
	if dim := DaysInMonth(year, time.Month(month+1)); day > dim {
		// Carry the excess into the next month. The excess is at most
		// three days (31 vs 28), so a single cascade is enough.
		day -= dim
		month++
		if month == 12 {
			month = 0
			year++
		}
	}

	return time.Date(year, time.Month(month+1), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

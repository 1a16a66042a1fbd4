// ABOUTME: Public facade for friendly date and time helpers
// ABOUTME: Thin delegation to the internal calendar shifter, clock, and timezone database

// Package when provides friendly wrappers around common date and time
// operations: the current instant, day anchors like today and tomorrow,
// calendar-safe relative shifts into the future or past, and timezone
// lookup and conversion.
//
// Relative shifts never clamp: adding a year to Feb 29 lands on Mar 1, and
// subtracting a month from Mar 31 carries the excess days past February.
package when

import (
	"time"

	"github.com/harper/when/internal/calendar"
	"github.com/harper/when/internal/clock"
	"github.com/harper/when/internal/tzdb"
)

// Offset is a signed calendar-unit delta applied to an instant.
type Offset = calendar.Offset

// Direction selects whether an offset moves an instant forward or back.
type Direction = calendar.Direction

// Direction values accepted by ShiftTime.
const (
	DirectionFuture = calendar.Future
	DirectionPast   = calendar.Past
)

// Sentinel errors surfaced to callers.
var (
	ErrInvalidOffset   = calendar.ErrInvalidOffset
	ErrUnknownTimezone = tzdb.ErrUnknownTimezone
)

var defaultClock = clock.New()

// Now returns the current instant, in local time or UTC per SetUTC.
func Now() time.Time {
	return defaultClock.Now()
}

// Today returns midnight of the current day.
func Today() time.Time {
	return defaultClock.Today()
}

// Tomorrow returns midnight of the next day.
func Tomorrow() time.Time {
	return defaultClock.Tomorrow()
}

// Yesterday returns midnight of the previous day.
func Yesterday() time.Time {
	return defaultClock.Yesterday()
}

// SetUTC makes every instant produced by this package UTC-based until
// UnsetUTC is called.
func SetUTC() {
	defaultClock.SetUTC()
}

// UnsetUTC restores local-time behavior.
func UnsetUTC() {
	defaultClock.UnsetUTC()
}

// Future returns the current instant shifted forward by o.
func Future(o Offset) time.Time {
	return calendar.Shift(defaultClock.Now(), o, calendar.Future)
}

// Past returns the current instant shifted back by o.
func Past(o Offset) time.Time {
	return calendar.Shift(defaultClock.Now(), o, calendar.Past)
}

// ShiftTime moves an arbitrary instant by o in the given direction using
// the carry-forward calendar rules.
func ShiftTime(t time.Time, o Offset, d Direction) time.Time {
	return calendar.Shift(t, o, d)
}

// Shift re-expresses value in another timezone. A non-empty fromTZ
// reinterprets value's wall-clock fields in that zone first; otherwise the
// value's own zone is kept. An empty toTZ targets the system zone, or UTC
// when SetUTC is in effect. Unknown zone names return ErrUnknownTimezone.
func Shift(value time.Time, fromTZ, toTZ string) (time.Time, error) {
	if fromTZ != "" {
		from, err := tzdb.Lookup(fromTZ)
		if err != nil {
			return time.Time{}, err
		}
		value = time.Date(value.Year(), value.Month(), value.Day(),
			value.Hour(), value.Minute(), value.Second(), value.Nanosecond(), from)
	}

	var to *time.Location
	if toTZ == "" {
		if defaultClock.UTC() {
			to = time.UTC
		} else {
			loc, err := tzdb.SystemLocation()
			if err != nil {
				return time.Time{}, err
			}
			to = loc
		}
	} else {
		loc, err := tzdb.Lookup(toTZ)
		if err != nil {
			return time.Time{}, err
		}
		to = loc
	}

	return value.In(to), nil
}

// Timezone returns the name of the system timezone.
func Timezone() string {
	return tzdb.SystemTimezone()
}

// TimezoneObject resolves a zone name to a *time.Location. An empty name
// resolves the system timezone.
func TimezoneObject(name string) (*time.Location, error) {
	if name == "" {
		return tzdb.SystemLocation()
	}
	return tzdb.Lookup(name)
}

// AllTimezones returns every zone name available on the host, sorted.
func AllTimezones() []string {
	return tzdb.ZoneNames()
}

// CommonTimezones returns a curated list of widely used zone names.
func CommonTimezones() []string {
	return tzdb.CommonZoneNames()
}

// HowManyLeapDays returns the number of leap days between two instants.
// Errors when from is after to.
func HowManyLeapDays(from, to time.Time) (int, error) {
	return calendar.LeapDaysBetween(from, to)
}

// Format renders t with the given layout. See the Format* constants for
// predefined layouts.
func Format(t time.Time, layout string) string {
	return t.Format(layout)
}

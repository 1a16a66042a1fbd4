// ABOUTME: Offset and Direction value types for calendar arithmetic
// ABOUTME: Defines signed calendar-unit deltas and the future/past sign convention

package calendar

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOffset is returned when an offset magnitude arriving from an
// untyped boundary (JSON, flags) is not a finite integer.
var ErrInvalidOffset = errors.New("invalid offset")

// Direction selects which way an Offset moves an instant in time.
type Direction int

const (
	// Future applies the offset as given.
	Future Direction = iota
	// Past negates every component of the offset.
	Past
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Future:
		return "future"
	case Past:
		return "past"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "future":
		return Future, nil
	case "past":
		return Past, nil
	default:
		return Future, fmt.Errorf("unknown direction %q: use future or past", s)
	}
}

// Offset is a signed calendar-unit delta. Fields may be negative; a Past
// direction negates all of them again.
type Offset struct {
	Years   int
	Months  int
	Weeks   int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// IsZero reports whether every component is zero.
func (o Offset) IsZero() bool {
	return o == Offset{}
}

// Negated returns the offset with every component sign-flipped.
func (o Offset) Negated() Offset {
	return Offset{
		Years:   -o.Years,
		Months:  -o.Months,
		Weeks:   -o.Weeks,
		Days:    -o.Days,
		Hours:   -o.Hours,
		Minutes: -o.Minutes,
		Seconds: -o.Seconds,
	}
}

// String renders the non-zero components, e.g. "1y 2mo 3d".
func (o Offset) String() string {
	if o.IsZero() {
		return "0"
	}
	parts := make([]string, 0, 7)
	add := func(n int, unit string) {
		if n != 0 {
			parts = append(parts, fmt.Sprintf("%d%s", n, unit))
		}
	}
	add(o.Years, "y")
	add(o.Months, "mo")
	add(o.Weeks, "w")
	add(o.Days, "d")
	add(o.Hours, "h")
	add(o.Minutes, "m")
	add(o.Seconds, "s")
	return strings.Join(parts, " ")
}

// ABOUTME: Random instants and the five o'clock easter egg
// ABOUTME: Ever picks a datetime within a hundred years of today

package when

import (
	"math/rand/v2"
	"time"

	"github.com/harper/when/internal/calendar"
)

// Ever returns a random instant within one hundred years of today, either
// direction. Extreme years are rarely useful, so the range stays close to
// the present.
func Ever() time.Time {
	now := defaultClock.Now()

	year := now.Year() - 100 + rand.IntN(201)
	month := time.Month(1 + rand.IntN(12))
	day := 1 + rand.IntN(calendar.DaysInMonth(year, month))

	return time.Date(year, month, day,
		rand.IntN(24), rand.IntN(60), rand.IntN(60), rand.IntN(1e9),
		now.Location())
}

// UntilFiveOClock reports how long until 5pm local time. Negative after
// five. Congratulations, you've found an easter egg.
func UntilFiveOClock() time.Duration {
	t := time.Now()
	five := time.Date(t.Year(), t.Month(), t.Day(), 17, 0, 0, 0, t.Location())
	return five.Sub(t)
}

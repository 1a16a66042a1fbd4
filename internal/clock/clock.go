// ABOUTME: Clock collaborator producing current instants and day boundaries
// ABOUTME: Supports a force-UTC mode and a swappable now-func for deterministic tests

package clock

import (
	"sync"
	"time"

	"github.com/jinzhu/now"
)

// Clock produces the current instant and day-anchored values. The zero
// Clock is not usable; construct with New.
type Clock struct {
	mu       sync.RWMutex
	nowFunc  func() time.Time
	forceUTC bool
}

// New returns a Clock backed by the system time in local mode.
func New() *Clock {
	return &Clock{nowFunc: time.Now}
}

// NewFixed returns a Clock frozen at t, for tests.
func NewFixed(t time.Time) *Clock {
	return &Clock{nowFunc: func() time.Time { return t }}
}

// SetNowFunc replaces the time source.
func (c *Clock) SetNowFunc(f func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nowFunc = f
}

// SetUTC switches the clock to UTC mode; every instant it produces is
// expressed in UTC until UnsetUTC is called.
func (c *Clock) SetUTC() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.forceUTC = true
}

// UnsetUTC switches the clock back to local time.
func (c *Clock) UnsetUTC() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.forceUTC = false
}

// UTC reports whether the clock is in UTC mode.
func (c *Clock) UTC() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.forceUTC
}

// Now returns the current instant, in UTC when the clock is in UTC mode.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	f, utc := c.nowFunc, c.forceUTC
	c.mu.RUnlock()

	t := f()
	if utc {
		t = t.UTC()
	}
	return t
}

// Today returns midnight of the current day.
func (c *Clock) Today() time.Time {
	return now.With(c.Now()).BeginningOfDay()
}

// Tomorrow returns midnight of the next day.
func (c *Clock) Tomorrow() time.Time {
	return c.Today().AddDate(0, 0, 1)
}

// Yesterday returns midnight of the previous day.
func (c *Clock) Yesterday() time.Time {
	return c.Today().AddDate(0, 0, -1)
}

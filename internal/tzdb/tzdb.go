// ABOUTME: Timezone name resolution over the IANA database
// ABOUTME: Wraps time.LoadLocation with a typed unknown-zone error and preloaded common zones

package tzdb

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownTimezone is returned when a zone name is not present in the
// timezone database.
var ErrUnknownTimezone = errors.New("unknown timezone")

// Lookup resolves an IANA timezone identifier (e.g. "Asia/Shanghai").
// An empty name or "UTC" resolves to UTC.
func Lookup(name string) (*time.Location, error) {
	if name == "" || name == "UTC" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, name)
	}
	return loc, nil
}

// MustLookup resolves a zone name or panics. Use for names known to be
// valid at compile time.
func MustLookup(name string) *time.Location {
	loc, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Common timezone identifiers.
const (
	ZoneUTC          = "UTC"
	ZoneNewYork      = "America/New_York"
	ZoneLosAngeles   = "America/Los_Angeles"
	ZoneChicago      = "America/Chicago"
	ZoneLondon       = "Europe/London"
	ZoneParis        = "Europe/Paris"
	ZoneBerlin       = "Europe/Berlin"
	ZoneMoscow       = "Europe/Moscow"
	ZoneShanghai     = "Asia/Shanghai"
	ZoneTokyo        = "Asia/Tokyo"
	ZoneKolkata      = "Asia/Kolkata"
	ZoneDubai        = "Asia/Dubai"
	ZoneSydney       = "Australia/Sydney"
	ZoneAuckland     = "Pacific/Auckland"
	ZoneSaoPaulo     = "America/Sao_Paulo"
	ZoneJohannesburg = "Africa/Johannesburg"
)

// Preloaded locations for the common zones.
var (
	NewYork    = MustLookup(ZoneNewYork)
	LosAngeles = MustLookup(ZoneLosAngeles)
	London     = MustLookup(ZoneLondon)
	Paris      = MustLookup(ZoneParis)
	Shanghai   = MustLookup(ZoneShanghai)
	Tokyo      = MustLookup(ZoneTokyo)
	Sydney     = MustLookup(ZoneSydney)
)

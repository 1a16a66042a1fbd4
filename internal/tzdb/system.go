// ABOUTME: System timezone detection for Linux and macOS hosts
// ABOUTME: Checks the TZ environment variable, /etc/timezone, and the /etc/localtime symlink

package tzdb

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const localtimePath = "/etc/localtime"

// SystemTimezone returns the name of the host's timezone. Sources are
// checked in order: the TZ environment variable, /etc/timezone, and the
// /etc/localtime symlink target. Falls back to "UTC" when nothing matches.
func SystemTimezone() string {
	if name, ok := zoneFromEnv(); ok {
		return name
	}
	if name, ok := zoneFromEtcTimezone(); ok {
		return name
	}
	if name, ok := zoneFromLocaltime(); ok {
		return name
	}
	return ZoneUTC
}

// SystemLocation resolves the host's timezone to a *time.Location.
func SystemLocation() (*time.Location, error) {
	return Lookup(SystemTimezone())
}

func zoneFromEnv() (string, bool) {
	tz, found := os.LookupEnv("TZ")
	if !found {
		return "", false
	}
	// TZ set but empty means UTC.
	if tz == "" {
		return ZoneUTC, true
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return "", false
	}
	return tz, true
}

func zoneFromEtcTimezone() (string, bool) {
	data, err := os.ReadFile("/etc/timezone")
	if err != nil {
		return "", false
	}
	tz := strings.TrimSpace(string(data))
	if tz == "" {
		return "", false
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return "", false
	}
	return tz, true
}

// zoneFromLocaltime reads the /etc/localtime symlink, which points into a
// zoneinfo directory on most systems (e.g. /usr/share/zoneinfo/Europe/Paris).
func zoneFromLocaltime() (string, bool) {
	target, err := os.Readlink(localtimePath)
	if err != nil {
		return "", false
	}
	target = filepath.ToSlash(target)

	idx := strings.Index(target, "zoneinfo/")
	if idx < 0 {
		return "", false
	}
	tz := target[idx+len("zoneinfo/"):]

	// macOS points into zoneinfo.default; strip any leading tzdata
	// version directories until a loadable name remains.
	for tz != "" {
		if _, err := time.LoadLocation(tz); err == nil {
			return tz, true
		}
		slash := strings.IndexByte(tz, '/')
		if slash < 0 {
			return "", false
		}
		tz = tz[slash+1:]
	}
	return "", false
}

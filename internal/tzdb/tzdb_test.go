// ABOUTME: Tests for timezone lookup and zone name enumeration
// ABOUTME: Verifies known zones resolve, unknown zones fail typed, and listings stay sorted

package tzdb

import (
	"errors"
	"sort"
	"testing"
	"time"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		tz      string
		wantErr bool
	}{
		{"UTC", "UTC", false},
		{"empty string defaults to UTC", "", false},
		{"America/New_York", "America/New_York", false},
		{"Asia/Tokyo", "Asia/Tokyo", false},
		{"Europe/Paris", "Europe/Paris", false},
		{"invalid zone", "Invalid/Timezone", true},
		{"not a zone at all", "five oclock somewhere", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := Lookup(tt.tz)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Lookup(%q) error = %v, wantErr %v", tt.tz, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrUnknownTimezone) {
					t.Errorf("Lookup(%q) error %v is not ErrUnknownTimezone", tt.tz, err)
				}
				return
			}
			if loc == nil {
				t.Errorf("Lookup(%q) returned nil location", tt.tz)
			}
		})
	}
}

func TestLookupEmptyIsUTC(t *testing.T) {
	loc, err := Lookup("")
	if err != nil {
		t.Fatalf("Lookup(\"\"): %v", err)
	}
	if loc != time.UTC {
		t.Errorf("expected time.UTC, got %v", loc)
	}
}

func TestMustLookupPanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustLookup to panic on unknown zone")
		}
	}()
	MustLookup("Nowhere/Special")
}

func TestPreloadedZones(t *testing.T) {
	zones := map[string]*time.Location{
		ZoneNewYork:  NewYork,
		ZoneLondon:   London,
		ZoneTokyo:    Tokyo,
		ZoneShanghai: Shanghai,
		ZoneSydney:   Sydney,
	}
	for name, loc := range zones {
		if loc == nil {
			t.Errorf("preloaded zone %s is nil", name)
			continue
		}
		if loc.String() != name {
			t.Errorf("preloaded zone %s resolves to %s", name, loc)
		}
	}
}

func TestCommonZoneNamesResolve(t *testing.T) {
	names := CommonZoneNames()
	if len(names) == 0 {
		t.Fatal("expected common zone names")
	}
	for _, name := range names {
		if _, err := Lookup(name); err != nil {
			t.Errorf("common zone %q failed to resolve: %v", name, err)
		}
	}
}

func TestZoneNames(t *testing.T) {
	names := ZoneNames()
	if len(names) == 0 {
		t.Fatal("expected at least the common zones")
	}
	if !sort.StringsAreSorted(names) {
		t.Error("expected zone names to be sorted")
	}
	for _, name := range names {
		if name == "" {
			t.Fatal("empty zone name in listing")
		}
	}
}

func TestIsZoneName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"America/New_York", true},
		{"UTC", true},
		{"Etc/GMT+8", true},
		{"zone.tab", false},
		{"leapseconds", false},
		{"tzdata.zi", false},
		{"localtime", false},
	}
	for _, tc := range tests {
		if got := isZoneName(tc.name); got != tc.want {
			t.Errorf("isZoneName(%q) = %v, expected %v", tc.name, got, tc.want)
		}
	}
}

func TestSystemTimezoneFromEnv(t *testing.T) {
	t.Setenv("TZ", "Asia/Tokyo")
	if got := SystemTimezone(); got != "Asia/Tokyo" {
		t.Errorf("SystemTimezone() = %q, expected Asia/Tokyo", got)
	}

	t.Setenv("TZ", "")
	if got := SystemTimezone(); got != "UTC" {
		t.Errorf("SystemTimezone() with empty TZ = %q, expected UTC", got)
	}
}

func TestSystemLocation(t *testing.T) {
	t.Setenv("TZ", "Europe/Paris")
	loc, err := SystemLocation()
	if err != nil {
		t.Fatalf("SystemLocation: %v", err)
	}
	if loc.String() != "Europe/Paris" {
		t.Errorf("SystemLocation() = %v, expected Europe/Paris", loc)
	}
}

func TestSystemTimezoneIgnoresBogusEnv(t *testing.T) {
	t.Setenv("TZ", "Not/AZone")
	// Falls through to /etc/timezone or /etc/localtime; whatever it finds
	// must resolve.
	name := SystemTimezone()
	if _, err := Lookup(name); err != nil {
		t.Errorf("SystemTimezone() returned unresolvable zone %q: %v", name, err)
	}
}

// ABOUTME: Enumeration of available IANA zone names
// ABOUTME: Walks the host zoneinfo directory and exposes a curated common subset

package tzdb

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// zoneinfo directories in lookup order, mirroring where the runtime
// searches for zone data.
var zoneDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
	"/etc/zoneinfo",
}

// ZoneNames returns the sorted IANA zone names found in the first present
// zoneinfo directory. Returns the common subset when no directory exists
// (e.g. minimal containers relying on embedded tzdata).
func ZoneNames() []string {
	for _, dir := range zoneDirs {
		if names := walkZoneDir(dir); len(names) > 0 {
			return names
		}
	}
	return CommonZoneNames()
}

// CommonZoneNames returns a curated list of widely used zone names, always
// resolvable regardless of the host database.
func CommonZoneNames() []string {
	return []string{
		ZoneUTC,
		ZoneJohannesburg,
		ZoneChicago,
		ZoneLosAngeles,
		ZoneNewYork,
		ZoneSaoPaulo,
		ZoneDubai,
		ZoneKolkata,
		ZoneShanghai,
		ZoneTokyo,
		ZoneSydney,
		ZoneBerlin,
		ZoneLondon,
		ZoneMoscow,
		ZoneParis,
		ZoneAuckland,
	}
}

func walkZoneDir(root string) []string {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil
	}

	var names []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			// posix/ and right/ duplicate the tree with alternate
			// leap-second handling.
			if rel == "posix" || rel == "right" {
				return fs.SkipDir
			}
			return nil
		}
		if isZoneName(rel) {
			names = append(names, rel)
		}
		return nil
	})

	sort.Strings(names)
	return names
}

// isZoneName filters out metadata files (zone.tab, leapseconds, tzdata.zi,
// localtime). Zone names start each component with an uppercase letter.
func isZoneName(name string) bool {
	if strings.Contains(name, ".") {
		return false
	}
	first := name[0]
	return first >= 'A' && first <= 'Z'
}

// ABOUTME: Centralized configuration defaults for when
// ABOUTME: Contains the default layout and filesystem permission values

package config

// Display settings
const (
	// DefaultLayout renders instants as RFC 3339.
	DefaultLayout = "2006-01-02T15:04:05Z07:00"

	// DateLayout renders the date portion only.
	DateLayout = "2006-01-02"
)

// Storage settings
const (
	DefaultDirPerms  = 0o755
	DefaultFilePerms = 0o600
)

// ABOUTME: Predefined layout strings for formatting and parsing
// ABOUTME: Date, time, 12-hour, and combined layouts used across the CLI and MCP surfaces

package when

// Predefined layouts for Format and the CLI --format flag.
const (
	// FormatDate renders the date portion (2012-02-29).
	FormatDate = "2006-01-02"

	// FormatTime renders the 24-hour time portion (13:45:59).
	FormatTime = "15:04:05"

	// FormatTimeAMPM renders a 12-hour clock (1:45:59 PM).
	FormatTimeAMPM = "3:04:05 PM"

	// FormatDateTime renders date and time together.
	FormatDateTime = "2006-01-02 15:04:05"
)

// ParseLayouts are tried in order when reading datetimes from user input.
var ParseLayouts = []string{
	"2006-01-02T15:04:05Z07:00", // RFC 3339
	FormatDateTime,
	FormatDate,
	FormatTime,
}

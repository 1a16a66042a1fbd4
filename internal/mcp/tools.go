// ABOUTME: MCP tool definitions and handlers for date and time operations
// ABOUTME: Provides tools for the current time, relative shifts, timezone conversion, and zone listings

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/when/internal/calendar"
	"github.com/harper/when/internal/tzdb"
)

// wireFormat is the layout used for every datetime on the tool surface.
const wireFormat = time.RFC3339

// parseLayouts accepted for datetime inputs, tried in order.
var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Type definitions for input/output structures

type CurrentTimeInput struct {
	Timezone *string `json:"timezone,omitempty"`
	UTC      *bool   `json:"utc,omitempty"`
}

type CurrentTimeOutput struct {
	Time          string `json:"time"`
	Timezone      string `json:"timezone"`
	OffsetSeconds int    `json:"offset_seconds"`
	Unix          int64  `json:"unix"`
	Weekday       string `json:"weekday"`
}

type RelativeTimeInput struct {
	Direction string   `json:"direction"`
	Years     *float64 `json:"years,omitempty"`
	Months    *float64 `json:"months,omitempty"`
	Weeks     *float64 `json:"weeks,omitempty"`
	Days      *float64 `json:"days,omitempty"`
	Hours     *float64 `json:"hours,omitempty"`
	Minutes   *float64 `json:"minutes,omitempty"`
	Seconds   *float64 `json:"seconds,omitempty"`
	Base      *string  `json:"base,omitempty"`
	Timezone  *string  `json:"timezone,omitempty"`
}

type RelativeTimeOutput struct {
	BaseTime   string `json:"base_time"`
	ResultTime string `json:"result_time"`
	Direction  string `json:"direction"`
	Offset     string `json:"offset"`
}

type ShiftTimezoneInput struct {
	Time         string  `json:"time"`
	FromTimezone *string `json:"from_timezone,omitempty"`
	ToTimezone   *string `json:"to_timezone,omitempty"`
}

type ShiftTimezoneOutput struct {
	Input        string `json:"input"`
	FromTimezone string `json:"from_timezone"`
	ToTimezone   string `json:"to_timezone"`
	Result       string `json:"result"`
}

type ListTimezonesInput struct {
	CommonOnly *bool   `json:"common_only,omitempty"`
	Filter     *string `json:"filter,omitempty"`
}

type ListTimezonesOutput struct {
	Timezones []string `json:"timezones"`
	Count     int      `json:"count"`
}

// Tool registration

func (s *Server) registerTools() {
	s.registerCurrentTimeTool()
	s.registerRelativeTimeTool()
	s.registerShiftTimezoneTool()
	s.registerListTimezonesTool()
}

func (s *Server) registerCurrentTimeTool() {
	tool := mcp.Tool{
		Name:        "current_time",
		Description: "Get the current date and time. Optionally specify an IANA timezone to express the result in, or set utc=true for UTC. Returns the RFC 3339 timestamp along with the zone name, UTC offset, Unix seconds, and weekday.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"timezone": map[string]interface{}{
					"type":        "string",
					"description": "Optional IANA timezone for the result. Example: 'America/New_York'",
				},
				"utc": map[string]interface{}{
					"type":        "boolean",
					"description": "Return the time in UTC. Overrides timezone.",
				},
			},
		},
	}
	s.mcpServer.AddTool(tool, s.handleCurrentTime)
}

func (s *Server) registerRelativeTimeTool() {
	tool := mcp.Tool{
		Name:        "relative_time",
		Description: "Compute a datetime in the future or past relative to now (or to an explicit base). Accepts integer offsets in years, months, weeks, days, hours, minutes, and seconds. Month and year arithmetic carries overflow forward: one year after Feb 29 is Mar 1, never a clamped Feb 28.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"direction": map[string]interface{}{
					"type":        "string",
					"description": "Either 'future' or 'past'.",
				},
				"years":   map[string]interface{}{"type": "number", "description": "Years to shift. Integer."},
				"months":  map[string]interface{}{"type": "number", "description": "Months to shift. Integer."},
				"weeks":   map[string]interface{}{"type": "number", "description": "Weeks to shift. Integer."},
				"days":    map[string]interface{}{"type": "number", "description": "Days to shift. Integer."},
				"hours":   map[string]interface{}{"type": "number", "description": "Hours to shift. Integer."},
				"minutes": map[string]interface{}{"type": "number", "description": "Minutes to shift. Integer."},
				"seconds": map[string]interface{}{"type": "number", "description": "Seconds to shift. Integer."},
				"base": map[string]interface{}{
					"type":        "string",
					"description": "Optional base datetime (RFC 3339 or '2006-01-02'). Defaults to now.",
				},
				"timezone": map[string]interface{}{
					"type":        "string",
					"description": "Optional IANA timezone for the result.",
				},
			},
			Required: []string{"direction"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleRelativeTime)
}

func (s *Server) registerShiftTimezoneTool() {
	tool := mcp.Tool{
		Name:        "shift_timezone",
		Description: "Re-express a datetime in a different timezone. If from_timezone is given, the input's wall-clock fields are interpreted in that zone; otherwise the zone carried by the input is used. to_timezone defaults to the system timezone.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"time": map[string]interface{}{
					"type":        "string",
					"description": "The datetime to convert (RFC 3339, '2006-01-02 15:04:05', or '2006-01-02').",
				},
				"from_timezone": map[string]interface{}{
					"type":        "string",
					"description": "Optional IANA zone the input's wall clock should be read in. Example: 'Asia/Tokyo'",
				},
				"to_timezone": map[string]interface{}{
					"type":        "string",
					"description": "Optional IANA zone to convert into. Defaults to the system timezone.",
				},
			},
			Required: []string{"time"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleShiftTimezone)
}

func (s *Server) registerListTimezonesTool() {
	tool := mcp.Tool{
		Name:        "list_timezones",
		Description: "List available IANA timezone names. Set common_only=true for a short curated list, or pass a filter substring to narrow the results (case-insensitive).",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"common_only": map[string]interface{}{
					"type":        "boolean",
					"description": "Return only the curated list of widely used zones.",
				},
				"filter": map[string]interface{}{
					"type":        "string",
					"description": "Case-insensitive substring filter. Example: 'America'",
				},
			},
		},
	}
	s.mcpServer.AddTool(tool, s.handleListTimezones)
}

// Handlers

func (s *Server) handleCurrentTime(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input CurrentTimeInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	t := s.clk.Now()
	switch {
	case input.UTC != nil && *input.UTC:
		t = t.UTC()
	case input.Timezone != nil:
		loc, err := tzdb.Lookup(*input.Timezone)
		if err != nil {
			return nil, err
		}
		t = t.In(loc)
	}

	zone, offset := t.Zone()
	output := CurrentTimeOutput{
		Time:          t.Format(wireFormat),
		Timezone:      zone,
		OffsetSeconds: offset,
		Unix:          t.Unix(),
		Weekday:       t.Weekday().String(),
	}

	return jsonResult(output)
}

func (s *Server) handleRelativeTime(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input RelativeTimeInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	direction, err := calendar.ParseDirection(input.Direction)
	if err != nil {
		return nil, err
	}

	offset, err := offsetFromInput(input)
	if err != nil {
		return nil, err
	}

	base := s.clk.Now()
	if input.Base != nil && *input.Base != "" {
		base, err = parseTime(*input.Base)
		if err != nil {
			return nil, err
		}
	}

	result := calendar.Shift(base, offset, direction)
	if input.Timezone != nil {
		loc, err := tzdb.Lookup(*input.Timezone)
		if err != nil {
			return nil, err
		}
		result = result.In(loc)
	}

	output := RelativeTimeOutput{
		BaseTime:   base.Format(wireFormat),
		ResultTime: result.Format(wireFormat),
		Direction:  direction.String(),
		Offset:     offset.String(),
	}

	return jsonResult(output)
}

func (s *Server) handleShiftTimezone(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input ShiftTimezoneInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	value, err := parseTime(input.Time)
	if err != nil {
		return nil, err
	}

	from := value.Location()
	if input.FromTimezone != nil && *input.FromTimezone != "" {
		loc, err := tzdb.Lookup(*input.FromTimezone)
		if err != nil {
			return nil, err
		}
		from = loc
		value = time.Date(value.Year(), value.Month(), value.Day(),
			value.Hour(), value.Minute(), value.Second(), value.Nanosecond(), loc)
	}

	toName := tzdb.SystemTimezone()
	if input.ToTimezone != nil && *input.ToTimezone != "" {
		toName = *input.ToTimezone
	}
	to, err := tzdb.Lookup(toName)
	if err != nil {
		return nil, err
	}

	output := ShiftTimezoneOutput{
		Input:        input.Time,
		FromTimezone: from.String(),
		ToTimezone:   to.String(),
		Result:       value.In(to).Format(wireFormat),
	}

	return jsonResult(output)
}

func (s *Server) handleListTimezones(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input ListTimezonesInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	var names []string
	if input.CommonOnly != nil && *input.CommonOnly {
		names = tzdb.CommonZoneNames()
	} else {
		names = tzdb.ZoneNames()
	}

	if input.Filter != nil && *input.Filter != "" {
		needle := strings.ToLower(*input.Filter)
		filtered := names[:0:0]
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), needle) {
				filtered = append(filtered, name)
			}
		}
		names = filtered
	}

	output := ListTimezonesOutput{
		Timezones: names,
		Count:     len(names),
	}

	return jsonResult(output)
}

// Helpers

// offsetFromInput validates the JSON number components and assembles an
// Offset. Fractional or non-finite magnitudes are rejected.
func offsetFromInput(input RelativeTimeInput) (calendar.Offset, error) {
	var o calendar.Offset
	fields := []struct {
		name  string
		value *float64
		dst   *int
	}{
		{"years", input.Years, &o.Years},
		{"months", input.Months, &o.Months},
		{"weeks", input.Weeks, &o.Weeks},
		{"days", input.Days, &o.Days},
		{"hours", input.Hours, &o.Hours},
		{"minutes", input.Minutes, &o.Minutes},
		{"seconds", input.Seconds, &o.Seconds},
	}

	for _, f := range fields {
		if f.value == nil {
			continue
		}
		v := *f.value
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
			return calendar.Offset{}, fmt.Errorf("%w: %s must be a finite integer, got %v",
				calendar.ErrInvalidOffset, f.name, v)
		}
		*f.dst = int(v)
	}
	return o, nil
}

func parseTime(value string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable time %q: use RFC 3339, '2006-01-02 15:04:05', or '2006-01-02'", value)
}

func jsonResult(output any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

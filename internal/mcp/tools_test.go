// ABOUTME: Tests for MCP tool handlers
// ABOUTME: Verifies current time, relative shifts, timezone conversion, and offset validation

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/when/internal/calendar"
	"github.com/harper/when/internal/clock"
	"github.com/harper/when/internal/tzdb"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()
	fixed := time.Date(2012, time.February, 29, 12, 0, 0, 0, time.UTC)
	return NewServer(clock.NewFixed(fixed))
}

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), input any) (*mcp.CallToolResult, error) {
	t.Helper()

	data, err := json.Marshal(input)
	if err != nil {
		t.Fatalf("failed to marshal input: %v", err)
	}
	var inputMap map[string]any
	if err := json.Unmarshal(data, &inputMap); err != nil {
		t.Fatalf("failed to build input map: %v", err)
	}

	req := mcp.CallToolRequest{}
	req.Params.Arguments = inputMap

	return handler(context.Background(), req)
}

func decodeResult(t *testing.T, result *mcp.CallToolResult, output any) {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("expected content in result")
	}
	textContent, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	if err := json.Unmarshal([]byte(textContent.Text), output); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }

func TestHandleCurrentTime_Default(t *testing.T) {
	server := setupTestServer(t)

	result, err := callTool(t, server.handleCurrentTime, CurrentTimeInput{})
	if err != nil {
		t.Fatalf("handleCurrentTime failed: %v", err)
	}

	var output CurrentTimeOutput
	decodeResult(t, result, &output)

	if output.Time != "2012-02-29T12:00:00Z" {
		t.Errorf("unexpected time %q", output.Time)
	}
	if output.Weekday != "Wednesday" {
		t.Errorf("expected Wednesday, got %q", output.Weekday)
	}
}

func TestHandleCurrentTime_WithTimezone(t *testing.T) {
	server := setupTestServer(t)

	input := CurrentTimeInput{Timezone: strPtr("Asia/Tokyo")}
	result, err := callTool(t, server.handleCurrentTime, input)
	if err != nil {
		t.Fatalf("handleCurrentTime failed: %v", err)
	}

	var output CurrentTimeOutput
	decodeResult(t, result, &output)

	// Noon UTC is 9pm in Tokyo (UTC+9).
	if output.Time != "2012-02-29T21:00:00+09:00" {
		t.Errorf("unexpected time %q", output.Time)
	}
	if output.OffsetSeconds != 9*3600 {
		t.Errorf("expected offset 32400, got %d", output.OffsetSeconds)
	}
}

func TestHandleCurrentTime_UnknownZone(t *testing.T) {
	server := setupTestServer(t)

	input := CurrentTimeInput{Timezone: strPtr("Nope/Nowhere")}
	_, err := callTool(t, server.handleCurrentTime, input)
	if !errors.Is(err, tzdb.ErrUnknownTimezone) {
		t.Errorf("expected ErrUnknownTimezone, got %v", err)
	}
}

func TestHandleRelativeTime_FutureYear(t *testing.T) {
	server := setupTestServer(t)

	input := RelativeTimeInput{
		Direction: "future",
		Years:     floatPtr(1),
	}
	result, err := callTool(t, server.handleRelativeTime, input)
	if err != nil {
		t.Fatalf("handleRelativeTime failed: %v", err)
	}

	var output RelativeTimeOutput
	decodeResult(t, result, &output)

	// One year after leap day carries into March.
	if output.ResultTime != "2013-03-01T12:00:00Z" {
		t.Errorf("unexpected result %q", output.ResultTime)
	}
	if output.Direction != "future" {
		t.Errorf("unexpected direction %q", output.Direction)
	}
}

func TestHandleRelativeTime_PastFromBase(t *testing.T) {
	server := setupTestServer(t)

	input := RelativeTimeInput{
		Direction: "past",
		Months:    floatPtr(1),
		Base:      strPtr("2012-03-31"),
	}
	result, err := callTool(t, server.handleRelativeTime, input)
	if err != nil {
		t.Fatalf("handleRelativeTime failed: %v", err)
	}

	var output RelativeTimeOutput
	decodeResult(t, result, &output)

	if output.ResultTime != "2012-03-02T00:00:00Z" {
		t.Errorf("unexpected result %q", output.ResultTime)
	}
}

func TestHandleRelativeTime_FractionalOffset(t *testing.T) {
	server := setupTestServer(t)

	input := RelativeTimeInput{
		Direction: "future",
		Days:      floatPtr(1.5),
	}
	_, err := callTool(t, server.handleRelativeTime, input)
	if !errors.Is(err, calendar.ErrInvalidOffset) {
		t.Errorf("expected ErrInvalidOffset for fractional days, got %v", err)
	}
}

func TestHandleRelativeTime_BadDirection(t *testing.T) {
	server := setupTestServer(t)

	input := RelativeTimeInput{Direction: "sideways"}
	if _, err := callTool(t, server.handleRelativeTime, input); err == nil {
		t.Error("expected error for bad direction, got nil")
	}
}

func TestHandleShiftTimezone(t *testing.T) {
	server := setupTestServer(t)

	input := ShiftTimezoneInput{
		Time:         "2012-01-15 12:00:00",
		FromTimezone: strPtr("Asia/Tokyo"),
		ToTimezone:   strPtr("UTC"),
	}
	result, err := callTool(t, server.handleShiftTimezone, input)
	if err != nil {
		t.Fatalf("handleShiftTimezone failed: %v", err)
	}

	var output ShiftTimezoneOutput
	decodeResult(t, result, &output)

	// Noon in Tokyo is 3am UTC.
	if output.Result != "2012-01-15T03:00:00Z" {
		t.Errorf("unexpected result %q", output.Result)
	}
	if output.FromTimezone != "Asia/Tokyo" {
		t.Errorf("unexpected from zone %q", output.FromTimezone)
	}
}

func TestHandleShiftTimezone_UnparseableTime(t *testing.T) {
	server := setupTestServer(t)

	input := ShiftTimezoneInput{Time: "half past never"}
	if _, err := callTool(t, server.handleShiftTimezone, input); err == nil {
		t.Error("expected error for unparseable time, got nil")
	}
}

func TestHandleListTimezones_Common(t *testing.T) {
	server := setupTestServer(t)

	input := ListTimezonesInput{CommonOnly: boolPtr(true)}
	result, err := callTool(t, server.handleListTimezones, input)
	if err != nil {
		t.Fatalf("handleListTimezones failed: %v", err)
	}

	var output ListTimezonesOutput
	decodeResult(t, result, &output)

	if output.Count == 0 || output.Count != len(output.Timezones) {
		t.Errorf("inconsistent count %d for %d zones", output.Count, len(output.Timezones))
	}
}

func TestHandleListTimezones_Filter(t *testing.T) {
	server := setupTestServer(t)

	input := ListTimezonesInput{
		CommonOnly: boolPtr(true),
		Filter:     strPtr("america"),
	}
	result, err := callTool(t, server.handleListTimezones, input)
	if err != nil {
		t.Fatalf("handleListTimezones failed: %v", err)
	}

	var output ListTimezonesOutput
	decodeResult(t, result, &output)

	if output.Count == 0 {
		t.Fatal("expected American zones in the curated list")
	}
	for _, name := range output.Timezones {
		if !strings.HasPrefix(name, "America/") {
			t.Errorf("unexpected zone %q for filter 'america'", name)
		}
	}
}

package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatLogLines(t *testing.T) {
	lines := []string{
		"[2025-06-01T12:00:00Z] INFO: application created.",
		"[2025-06-01T12:05:00Z] INFO: application started by user.",
	}

	withTimestamps := formatLogLines(lines, true)
	assert.Contains(t, withTimestamps, "   1  [2025-06-01T12:00:00Z] INFO: application created.")
	assert.Contains(t, withTimestamps, "   2  [2025-06-01T12:05:00Z] INFO: application started by user.")

	withoutTimestamps := formatLogLines(lines, false)
	assert.Contains(t, withoutTimestamps, "   1  INFO: application created.")
	assert.NotContains(t, withoutTimestamps, "2025-06-01")
}

func TestFormatLogLines_Empty(t *testing.T) {
	assert.Contains(t, formatLogLines(nil, true), "No log entries yet")
}

func TestStripLogTimestamp(t *testing.T) {
	assert.Equal(t, "INFO: x", stripLogTimestamp("[2025-06-01T12:00:00Z] INFO: x"))
	assert.Equal(t, "no timestamp", stripLogTimestamp("no timestamp"))
	assert.Equal(t, "[unterminated", stripLogTimestamp("[unterminated"))
}

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 10 * time.Second, want: "just now"},
		{d: 5 * time.Minute, want: "5m ago"},
		{d: 3 * time.Hour, want: "3h ago"},
		{d: 50 * time.Hour, want: "2d ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, relativeTime(tt.d))
	}
}

package ui

import (
	"fmt"
	"time"
)

// now is replaced in tests
var now = time.Now

// timeLabel renders t as an absolute time when timestamps are shown and
// as a relative age otherwise
func (m *Model) timeLabel(t *time.Time) string {
	if t == nil {
		return ""
	}
	if m.showTimestamps {
		return t.Local().Format("2006-01-02 15:04")
	}
	return relativeTime(now().Sub(*t))
}

// relativeTime renders an age such as "5m ago"
func relativeTime(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

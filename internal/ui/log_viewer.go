package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/theme"
)

// LogViewer is a read-only, scrollable view of an app log
type LogViewer struct {
	Completed      bool
	initialized    bool
	keys           *KeyMap
	lines          []string
	showTimestamps bool
	viewport       viewport.Model
}

// NewLogViewer creates a log viewer over a copy of the app log
func NewLogViewer(app domain.App, keys *KeyMap, showTimestamps bool) *LogViewer {
	return &LogViewer{
		keys:           keys,
		lines:          append([]string(nil), app.Logs...),
		showTimestamps: showTimestamps,
		viewport:       viewport.New(0, 0),
	}
}

// formatLogLines numbers the log from 1 in chronological order
func formatLogLines(lines []string, showTimestamps bool) string {
	if len(lines) == 0 {
		return theme.MutedStyle.Render("No log entries yet")
	}

	var b strings.Builder
	for i, line := range lines {
		if !showTimestamps {
			line = stripLogTimestamp(line)
		}
		fmt.Fprintf(&b, "%s  %s\n", theme.MutedStyle.Render(fmt.Sprintf("%4d", i+1)), line)
	}
	return b.String()
}

// stripLogTimestamp drops the leading "[timestamp] " of a log line
func stripLogTimestamp(line string) string {
	if !strings.HasPrefix(line, "[") {
		return line
	}
	if end := strings.Index(line, "] "); end > 0 {
		return line[end+2:]
	}
	return line
}

// Init implements tea.Model
func (l *LogViewer) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (l *LogViewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.viewport.Width = msg.Width
		l.viewport.Height = max(msg.Height-6, 5)
		l.refresh()
		l.viewport.GotoBottom()
		l.initialized = true
		return l, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, l.keys.Navigation.Back.Binding, l.keys.Application.Quit.Binding, l.keys.Apps.Logs.Binding):
			l.Completed = true
			return l, nil
		case key.Matches(msg, l.keys.Application.Timestamps.Binding):
			l.showTimestamps = !l.showTimestamps
			l.refresh()
			return l, nil
		}
	}

	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return l, cmd
}

func (l *LogViewer) refresh() {
	l.viewport.SetContent(formatLogLines(l.lines, l.showTimestamps))
}

// View implements tea.Model
func (l *LogViewer) View() string {
	if !l.initialized {
		return "Loading logs..."
	}
	footer := theme.HelpStyle.Render("Press esc, q or l to close • t timestamps • ↑↓/PgUp/PgDn to scroll")
	return l.viewport.View() + "\n\n" + footer
}

// IsCompleted implements completable
func (l *LogViewer) IsCompleted() bool { return l.Completed }

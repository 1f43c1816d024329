package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/theme"
)

// trackingRow is one line of the todo, blocker or bug list in the details view
type trackingRow struct {
	done     bool
	id       string
	priority domain.BugPriority
	text     string
}

func (m *Model) detailsApp() (domain.App, bool) {
	app, err := m.dashboard.Apps.Get(m.detailsAppID)
	if err != nil {
		return domain.App{}, false
	}
	return *app, true
}

// trackingRows returns the rows of the tracking list shown in the details view
func (m *Model) trackingRows() []trackingRow {
	app, ok := m.detailsApp()
	if !ok {
		return nil
	}

	var rows []trackingRow
	switch m.tracking {
	case domain.TrackBlockers:
		for _, b := range app.Blockers {
			rows = append(rows, trackingRow{done: b.Resolved, id: b.ID, text: b.Text})
		}
	case domain.TrackBugs:
		for _, b := range app.Bugs {
			rows = append(rows, trackingRow{done: b.Resolved, id: b.ID, priority: b.Priority, text: b.Text})
		}
	default:
		for _, t := range app.Todos {
			rows = append(rows, trackingRow{done: t.Completed, id: t.ID, text: t.Text})
		}
	}
	return rows
}

func (m *Model) updateDetails(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.notice = ""

	app, ok := m.detailsApp()
	if !ok || key.Matches(keyMsg, m.keys.Navigation.Back.Binding) {
		m.state = stateList
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.Quit.Binding):
		m.state = stateList
		return m, nil
	case key.Matches(keyMsg, m.keys.Application.Help.Binding):
		return m, m.openDialog("Help", NewHelpScreen(&m.keys))
	case key.Matches(keyMsg, m.keys.Application.Timestamps.Binding):
		m.showTimestamps = !m.showTimestamps
		return m, nil
	}

	tracking := domain.HasSection(app.DevStage, domain.SectionTracking)
	if tracking {
		if cmd, handled := m.handleTrackingKey(app, keyMsg); handled {
			return m, cmd
		}
	}

	cmd, _ := m.handleAppAction(app, keyMsg)
	return m, cmd
}

// handleTrackingKey handles the todo, blocker and bug keys of the details view
func (m *Model) handleTrackingKey(app domain.App, msg tea.KeyMsg) (tea.Cmd, bool) {
	ctx := context.Background()
	svc := m.dashboard.Apps
	rows := m.trackingRows()

	switch {
	case key.Matches(msg, m.keys.Apps.CycleTracking.Binding):
		m.tracking = m.tracking.Next()
		m.itemCursor = 0
		return nil, true

	case key.Matches(msg, m.keys.Navigation.Up.Binding):
		if len(rows) > 0 {
			m.itemCursor = (m.itemCursor - 1 + len(rows)) % len(rows)
		}
		return nil, true

	case key.Matches(msg, m.keys.Navigation.Down.Binding):
		if len(rows) > 0 {
			m.itemCursor = (m.itemCursor + 1) % len(rows)
		}
		return nil, true

	case key.Matches(msg, m.keys.Items.New.Binding):
		switch m.tracking {
		case domain.TrackBugs:
			return m.openDialog(fmt.Sprintf("New Bug: %s", app.Name), NewBugForm(m.dashboard, app.ID)), true
		case domain.TrackBlockers:
			return m.openDialog(fmt.Sprintf("New Blocker: %s", app.Name), NewInputForm("Blocker", "", func(text string) error {
				_, err := svc.AddBlocker(ctx, app.ID, text)
				return err
			})), true
		}
		return m.openDialog(fmt.Sprintf("New Todo: %s", app.Name), NewInputForm("Todo", "", func(text string) error {
			_, err := svc.AddTodo(ctx, app.ID, text)
			return err
		})), true
	}

	if len(rows) == 0 {
		return nil, false
	}
	row := rows[min(m.itemCursor, len(rows)-1)]

	var err error
	switch {
	case key.Matches(msg, m.keys.Items.Toggle.Binding):
		switch m.tracking {
		case domain.TrackBlockers:
			_, err = svc.ToggleBlocker(ctx, app.ID, row.id)
		case domain.TrackBugs:
			_, err = svc.ToggleBug(ctx, app.ID, row.id)
		default:
			_, err = svc.ToggleTodo(ctx, app.ID, row.id)
		}
	case key.Matches(msg, m.keys.Items.Delete.Binding):
		switch m.tracking {
		case domain.TrackBlockers:
			_, err = svc.DeleteBlocker(ctx, app.ID, row.id)
		case domain.TrackBugs:
			_, err = svc.DeleteBug(ctx, app.ID, row.id)
		default:
			_, err = svc.DeleteTodo(ctx, app.ID, row.id)
		}
		m.clampCursors()
	default:
		return nil, false
	}

	if err != nil {
		return m.showError(err), true
	}
	return nil, true
}

func (m *Model) renderDetails() string {
	app, ok := m.detailsApp()
	if !ok {
		return theme.MutedStyle.Render("App not found") + "\n"
	}

	var b strings.Builder
	b.WriteString(theme.SubtitleStyle.Render(app.Name))
	b.WriteString("  " + theme.StageStyle(string(app.DevStage)).Render(string(app.DevStage)))
	b.WriteString("  " + theme.MutedStyle.Render(fmt.Sprintf("%s %s", app.Status.Symbol(), app.Status)) + "\n")
	if app.Description != "" {
		b.WriteString(theme.NormalStyle.Render(app.Description) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(field("Path", app.Path))
	b.WriteString(field("Command", app.Command))
	b.WriteString(field("Tech stack", strings.Join(app.TechStack, ", ")))

	if len(app.Links) > 0 {
		b.WriteString(theme.SectionStyle.Render("Links") + "\n")
		for _, l := range app.Links {
			label := l.Label
			if l.Icon != "" {
				label = l.Icon + " " + label
			}
			fmt.Fprintf(&b, "  %s %s\n", label, theme.MutedStyle.Render(l.URL))
		}
	}

	for _, section := range domain.SectionsFor(app.DevStage) {
		b.WriteString(m.renderSection(app, section))
	}
	return b.String()
}

func field(label, value string) string {
	if value == "" {
		value = theme.MutedStyle.Render("-")
	}
	return theme.LabelStyle.Render(label) + value + "\n"
}

func (m *Model) renderSection(app domain.App, section domain.Section) string {
	var b strings.Builder
	switch section {
	case domain.SectionIdeas:
		b.WriteString(theme.SectionStyle.Render("Ideas") + "\n")
		if strings.TrimSpace(app.Ideas) == "" {
			b.WriteString(theme.MutedStyle.Render("  Nothing yet. Press w to write your ideas.") + "\n")
		} else {
			b.WriteString(app.Ideas + "\n")
		}

	case domain.SectionTracking:
		b.WriteString(theme.SectionStyle.Render(m.renderTrackingTabs(app)) + "\n")
		rows := m.trackingRows()
		if len(rows) == 0 {
			b.WriteString(theme.MutedStyle.Render(fmt.Sprintf("  No %s", m.tracking)) + "\n")
		}
		for i, row := range rows {
			text := row.text
			if row.priority != "" {
				text = theme.PriorityStyle(string(row.priority)).Render("["+string(row.priority)+"]") + " " + text
			}
			if row.done {
				text = theme.DoneStyle.Render(row.text)
			}
			line := fmt.Sprintf("[%s] %s", box(row.done), text)
			if i == m.itemCursor {
				line = theme.SelectedStyle.Render("> ") + line
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}

	case domain.SectionDocumentation:
		b.WriteString(theme.SectionStyle.Render("Documentation") + "\n")
		b.WriteString(m.markdown.Render(app.Documentation, m.width))

	case domain.SectionTesting:
		info := app.TestInfo
		b.WriteString(theme.SectionStyle.Render("Testing") + "\n")
		b.WriteString(field("Test command", info.TestCommand))
		b.WriteString(field("Last run", outcomeLabel(info.LastTestSuccess, m.timeLabel(info.LastTestTime))))
		if info.Coverage != nil {
			b.WriteString(field("Coverage", fmt.Sprintf("%d%%", *info.Coverage)))
		}

	case domain.SectionBuild:
		info := app.DeploymentInfo
		b.WriteString(theme.SectionStyle.Render("Build") + "\n")
		b.WriteString(field("Build command", info.BuildCommand))
		b.WriteString(field("Output path", info.BuildOutputPath))
		b.WriteString(field("Last build", outcomeLabel(info.LastBuildSuccess, m.timeLabel(info.LastBuildTime))))

	case domain.SectionDeploy:
		info := app.DeploymentInfo
		b.WriteString(theme.SectionStyle.Render("Deploy") + "\n")
		b.WriteString(field("Version", info.Version))
		b.WriteString(field("Target", info.DeploymentTarget))
		b.WriteString(field("Commit", info.GitCommitHash))
		b.WriteString(field("Last deploy", m.timeLabel(info.LastDeploymentTime)))
		b.WriteString(field("Release notes", firstLine(info.ReleaseNotes)))
		readiness := domain.CheckDeployReadiness(app)
		fmt.Fprintf(&b, "  [%s] all todos completed\n", box(readiness.AllTodosCompleted))
		fmt.Fprintf(&b, "  [%s] release notes written\n", box(readiness.ReleaseNotesPresent))
		fmt.Fprintf(&b, "  [%s] last build succeeded\n", box(readiness.LastBuildSucceeded))

	case domain.SectionMetrics:
		b.WriteString(theme.SectionStyle.Render("Metrics") + "\n")
		b.WriteString(field("DB calls", fmt.Sprintf("%d", app.Metrics.DBCalls)))
		b.WriteString(field("API usage", fmt.Sprintf("%d", app.Metrics.APIUsage)))
	}
	return b.String()
}

func (m *Model) renderTrackingTabs(app domain.App) string {
	counts := map[domain.TrackingList]int{
		domain.TrackTodos:    domain.OpenCount(app.Todos),
		domain.TrackBlockers: openBlockers(app.Blockers),
		domain.TrackBugs:     openBugs(app.Bugs),
	}
	parts := make([]string, 0, len(domain.TrackingLists))
	for _, l := range domain.TrackingLists {
		label := fmt.Sprintf("%s (%d)", l, counts[l])
		if l == m.tracking {
			label = theme.TabActiveStyle.Render(label)
		} else {
			label = theme.TabStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "")
}

func openBlockers(items []domain.BlockerItem) int {
	n := 0
	for _, b := range items {
		if !b.Resolved {
			n++
		}
	}
	return n
}

func openBugs(items []domain.BugItem) int {
	n := 0
	for _, b := range items {
		if !b.Resolved {
			n++
		}
	}
	return n
}

func box(done bool) string {
	if done {
		return "x"
	}
	return " "
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}

func outcomeLabel(success *bool, when string) string {
	switch {
	case success == nil:
		return "never"
	case *success:
		return theme.SuccessStyle.Render("success") + " " + when
	default:
		return theme.ErrorStyle.Render("failed") + " " + when
	}
}

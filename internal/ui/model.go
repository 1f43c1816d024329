package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/logging"
	"github.com/renato0307/appdeck/internal/services"
	"github.com/renato0307/appdeck/internal/theme"
)

type uiState int

const (
	stateList uiState = iota
	stateDetails
	stateDialog
)

type tab int

const (
	tabApps tab = iota
	tabTodos
	tabShorts
)

var tabTitles = []string{"Apps", "Todos", "Shorts"}

// Options configures the TUI
type Options struct {
	ErrorClearDelay  time.Duration
	ShowTimestamps   bool
	TechStackPresets []string
}

// Model is the root bubbletea model. All state lives in the dashboard;
// the model only keeps selection and view state.
type Model struct {
	cursors        [3]int
	dashboard      *services.Dashboard
	detailsAppID   string
	dialog         *Dialog
	dialogReturn   uiState // state restored when the dialog closes
	errorManager   *ErrorManager
	height         int
	help           help.Model
	itemCursor     int
	keys           KeyMap
	markdown       *markdownCache
	notice         string
	opts           Options
	paletteAppID   string
	showTimestamps bool
	state          uiState
	tab            tab
	tipIndex       int
	tracking       domain.TrackingList
	width          int
}

// NewModel creates the root model over a loaded dashboard
func NewModel(dashboard *services.Dashboard, opts Options) *Model {
	return &Model{
		dashboard:      dashboard,
		errorManager:   NewErrorManager(opts.ErrorClearDelay),
		help:           help.New(),
		keys:           NewKeyMap(),
		markdown:       newMarkdownCache(),
		opts:           opts,
		showTimestamps: opts.ShowTimestamps,
		state:          stateList,
		tab:            tabApps,
		tracking:       domain.TrackTodos,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.dialog != nil {
			_, cmd := m.dialog.Update(msg)
			return m, cmd
		}
		return m, nil

	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Application.ForceQuit.Binding) && m.state != stateDialog {
			return m, tea.Quit
		}
	}

	switch m.state {
	case stateDialog:
		return m.updateDialog(msg)
	case stateDetails:
		return m.updateDetails(msg)
	default:
		return m.updateList(msg)
	}
}

// openDialog shows content inside a dialog until it completes
func (m *Model) openDialog(title string, content tea.Model) tea.Cmd {
	m.dialog = NewDialog(title, content)
	if m.state != stateDialog {
		m.dialogReturn = m.state
	}
	m.state = stateDialog

	initCmd := m.dialog.Init()
	_, sizeCmd := m.dialog.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return tea.Batch(initCmd, sizeCmd)
}

func (m *Model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.dialog.Update(msg)
	if !m.dialog.completed() {
		return m, cmd
	}

	dialog := m.dialog
	m.dialog = nil
	m.state = m.dialogReturn
	m.clampCursors()

	if palette, ok := dialog.Content().(*ActionPalette); ok {
		return m, m.runPaletteAction(palette)
	}

	form, ok := dialog.Content().(*ActionForm)
	if !ok || form.Cancelled {
		return m, nil
	}
	if form.Err != nil {
		return m, m.showError(form.Err)
	}
	if form.Followup != nil {
		if title, content := form.Followup(); content != nil {
			return m, m.openDialog(title, content)
		}
	}
	return m, nil
}

// runPaletteAction triggers the action picked in the palette on the app it was opened for
func (m *Model) runPaletteAction(palette *ActionPalette) tea.Cmd {
	if palette.Result == nil {
		return nil
	}
	app, err := m.dashboard.Apps.Get(m.paletteAppID)
	if err != nil {
		return m.showError(err)
	}
	cmd, _ := m.handleAppAction(*app, keyMsgFor(*palette.Result))
	return cmd
}

// showError displays err in the footer and schedules its removal
func (m *Model) showError(err error) tea.Cmd {
	logging.Logger.Warn("Action failed", "error", err)
	m.notice = ""
	m.errorManager.SetError(err)
	return m.errorManager.ClearAfterDelay()
}

func (m *Model) showNotice(format string, args ...any) {
	m.errorManager.ClearError()
	m.notice = fmt.Sprintf(format, args...)
}

// handleApplicationKey handles keys shared by the list views.
// It returns false when the key is not an application key.
func (m *Model) handleApplicationKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Application.Quit.Binding):
		return tea.Quit, true
	case key.Matches(msg, m.keys.Application.Help.Binding):
		return m.openDialog("Help", NewHelpScreen(&m.keys)), true
	case key.Matches(msg, m.keys.Application.NextTab.Binding):
		m.tab = (m.tab + 1) % tab(len(tabTitles))
		m.tipIndex++
		return nil, true
	case key.Matches(msg, m.keys.Application.PrevTab.Binding):
		m.tab = (m.tab + tab(len(tabTitles)) - 1) % tab(len(tabTitles))
		m.tipIndex++
		return nil, true
	case key.Matches(msg, m.keys.Application.Timestamps.Binding):
		m.showTimestamps = !m.showTimestamps
		return nil, true
	}
	return nil, false
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.notice = ""

	if cmd, handled := m.handleApplicationKey(keyMsg); handled {
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Navigation.Up.Binding):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(keyMsg, m.keys.Navigation.Down.Binding):
		m.moveCursor(1)
		return m, nil
	}

	switch m.tab {
	case tabApps:
		return m, m.handleAppsKey(keyMsg)
	case tabTodos:
		return m, m.handleTodosKey(keyMsg)
	case tabShorts:
		return m, m.handleShortsKey(keyMsg)
	}
	return m, nil
}

func (m *Model) rowCount() int {
	switch m.tab {
	case tabApps:
		return len(m.dashboard.Apps.List())
	case tabTodos:
		return len(m.dashboard.Todos.List())
	case tabShorts:
		return len(m.dashboard.Ideas.List())
	}
	return 0
}

func (m *Model) moveCursor(delta int) {
	n := m.rowCount()
	if n == 0 {
		m.cursors[m.tab] = 0
		return
	}
	m.cursors[m.tab] = (m.cursors[m.tab] + delta + n) % n
}

// clampCursors keeps every selection inside its list after deletions
func (m *Model) clampCursors() {
	counts := [3]int{
		len(m.dashboard.Apps.List()),
		len(m.dashboard.Todos.List()),
		len(m.dashboard.Ideas.List()),
	}
	for i, n := range counts {
		m.cursors[i] = max(min(m.cursors[i], n-1), 0)
	}
	if n := len(m.trackingRows()); m.itemCursor >= n {
		m.itemCursor = max(n-1, 0)
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.state == stateDialog && m.dialog != nil {
		return m.dialog.View()
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n")

	if m.state == stateDetails {
		b.WriteString(m.renderDetails())
		b.WriteString(m.renderFooter(m.keys.DetailsHelp()))
		return b.String()
	}

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	switch m.tab {
	case tabApps:
		b.WriteString(m.renderApps())
	case tabTodos:
		b.WriteString(m.renderTodos())
	case tabShorts:
		b.WriteString(m.renderShorts())
	}
	b.WriteString(m.renderFooter(m.keys.ShortHelp(m.tab)))
	return b.String()
}

func (m *Model) renderTitle() string {
	sum := m.dashboard.Summary()
	stats := fmt.Sprintf("  %d apps • %d running • %d ready to deploy • %d open todos",
		sum.Apps, sum.Running, sum.Deployable, sum.OpenTodos)
	return theme.AppNameStyle.Render("appdeck") + theme.MutedStyle.Render(stats) + "\n"
}

func (m *Model) renderTabs() string {
	tabs := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if tab(i) == m.tab {
			tabs[i] = theme.TabActiveStyle.Render(title)
		} else {
			tabs[i] = theme.TabStyle.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderFooter(bindings []key.Binding) string {
	var b strings.Builder
	b.WriteString("\n")

	switch {
	case m.errorManager.HasError():
		b.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width)))
	case m.notice != "":
		b.WriteString(theme.SuccessStyle.Render(m.notice))
	default:
		if all := GetTips(); len(all) > 0 {
			b.WriteString(RenderTip(all[m.tipIndex%len(all)]))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(bindings))
	return b.String()
}

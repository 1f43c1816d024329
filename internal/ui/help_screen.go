package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

func renderGroup(title string, bindings ...KeyWithTip) string {
	var b strings.Builder
	b.WriteString(theme.HelpGroupStyle.Render(title) + "\n")
	for _, k := range bindings {
		b.WriteString(renderBinding(k.Binding))
	}
	return b.String()
}

// buildHelpContent builds the complete help text from the key bindings
func buildHelpContent(keys *KeyMap) string {
	var content string

	content += renderGroup("Navigation",
		keys.Navigation.Up, keys.Navigation.Down, keys.Navigation.Open, keys.Navigation.Back,
		keys.Application.NextTab, keys.Application.PrevTab)

	content += "\n" + renderGroup("Lists",
		keys.Items.New, keys.Items.Edit, keys.Items.Toggle, keys.Items.Delete)

	content += "\n" + renderGroup("Apps",
		keys.Apps.ActionPalette, keys.Apps.SuggestNames, keys.Apps.StartStop, keys.Apps.Logs, keys.Apps.NextStage,
		keys.Apps.Write, keys.Apps.AddLink, keys.Apps.CycleTracking, keys.Apps.Metrics)

	content += "\n" + renderGroup("Test, Build and Deploy",
		keys.Apps.RunTests, keys.Apps.Build, keys.Apps.Release, keys.Apps.Deploy)

	content += "\n" + renderGroup("Shorts",
		keys.Shorts.SetStatus, keys.Shorts.AdvanceStatus)

	content += "\n" + renderGroup("Application",
		keys.Application.Timestamps, keys.Application.Help, keys.Application.Quit, keys.Application.ForceQuit)

	content += "\n" + theme.HelpGroupStyle.Render("Indicators (read-only)") + "\n"
	content += renderShortcut(domain.SymbolRunning, "app is running")
	content += renderShortcut(domain.SymbolStopped, "app is stopped")
	content += renderShortcut("✓", "app is ready to deploy")

	return content
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, Footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if key.Matches(msg, h.keys.Navigation.Back.Binding, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, q or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}

// IsCompleted implements completable
func (h *HelpScreen) IsCompleted() bool { return h.Completed }

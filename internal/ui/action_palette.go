package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/theme"
)

// actionKeys maps app actions to the key that triggers them.
// Tracking actions have no single key and are left out of the palette.
var actionKeys = map[string]string{
	domain.ActionBuild:       "build",
	domain.ActionDelete:      "delete",
	domain.ActionDeploy:      "deploy",
	domain.ActionEdit:        "edit",
	domain.ActionEditDocs:    "write",
	domain.ActionEditIdeas:   "write",
	domain.ActionEditMetrics: "metrics",
	domain.ActionEditRelease: "release",
	domain.ActionLogs:        "logs",
	domain.ActionRunTests:    "run_tests",
	domain.ActionSetStage:    "next_stage",
	domain.ActionStartStop:   "start_stop",
}

// paletteEntry is an app action offered by the palette
type paletteEntry struct {
	action domain.Action
	keyDef KeyDefinition
}

// ActionPalette is a filterable list of the actions available for an app in its dev stage
type ActionPalette struct {
	Completed     bool
	Result        *KeyDefinition
	all           []paletteEntry
	appName       string
	entries       []paletteEntry
	filterInput   textinput.Model
	keys          *KeyMap
	lastQuery     string
	selectedIndex int
}

// NewActionPalette creates a palette for app
func NewActionPalette(app domain.App, keys *KeyMap) *ActionPalette {
	var entries []paletteEntry
	for _, a := range domain.ActionsForStage(app.DevStage) {
		name, ok := actionKeys[a.Name]
		if !ok {
			continue
		}
		if def := GetKeyDefinition(name); def != nil {
			entries = append(entries, paletteEntry{action: a, keyDef: *def})
		}
	}

	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.PromptStyle = theme.FilterPromptStyle
	ti.Placeholder = "type to filter"
	ti.PlaceholderStyle = theme.MutedStyle
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40

	return &ActionPalette{
		all:         entries,
		appName:     app.Name,
		entries:     entries,
		filterInput: ti,
		keys:        keys,
	}
}

// Init implements tea.Model
func (p *ActionPalette) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (p *ActionPalette) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, p.keys.Navigation.Back.Binding, p.keys.Application.ForceQuit.Binding):
			p.Completed = true
			return p, nil

		case key.Matches(msg, p.keys.Navigation.Open.Binding):
			if p.selectedIndex < len(p.entries) {
				p.Completed = true
				p.Result = &p.entries[p.selectedIndex].keyDef
			}
			return p, nil

		case msg.Type == tea.KeyUp:
			if p.selectedIndex > 0 {
				p.selectedIndex--
			}
			return p, nil

		case msg.Type == tea.KeyDown:
			if p.selectedIndex < len(p.entries)-1 {
				p.selectedIndex++
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.filterInput, cmd = p.filterInput.Update(msg)
	p.filter()
	return p, cmd
}

// filter keeps the entries whose description fuzzy-matches the input
func (p *ActionPalette) filter() {
	query := strings.TrimSpace(p.filterInput.Value())
	if query == p.lastQuery {
		return
	}
	p.lastQuery = query

	if query == "" {
		p.entries = p.all
	} else {
		descriptions := make([]string, len(p.all))
		for i, e := range p.all {
			descriptions[i] = e.action.Description
		}
		// Matches come back best score first
		p.entries = p.all[:0:0]
		for _, m := range fuzzy.Find(query, descriptions) {
			p.entries = append(p.entries, p.all[m.Index])
		}
	}
	if p.selectedIndex >= len(p.entries) {
		p.selectedIndex = 0
	}
}

// View implements tea.Model
func (p *ActionPalette) View() string {
	width := 0
	for _, e := range p.all {
		width = max(width, len(e.action.Description))
	}

	var items []string
	for i, e := range p.entries {
		desc := fmt.Sprintf("%-*s", width, e.action.Description)
		shortcut := e.keyDef.Defaults[0]
		if i == p.selectedIndex {
			items = append(items, "> "+theme.PaletteItemSelectedStyle.Render(desc)+theme.PaletteShortcutStyle.Render("  "+shortcut))
			continue
		}
		items = append(items, "  "+theme.PaletteItemStyle.Render(desc)+theme.PaletteShortcutStyle.Render("  "+shortcut))
	}
	if len(items) == 0 {
		items = append(items, theme.MutedStyle.Render("  No matching actions"))
	}

	header := theme.PaletteTitleStyle.Render("Actions") + " " + theme.MutedStyle.Render("for "+p.appName)
	return theme.PaletteBorderStyle.Render(header + "\n\n" + p.filterInput.View() + "\n\n" + strings.Join(items, "\n"))
}

// IsCompleted implements completable
func (p *ActionPalette) IsCompleted() bool { return p.Completed }

// keyMsgFor builds the key press that triggers def
func keyMsgFor(def KeyDefinition) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(def.Defaults[0])}
}

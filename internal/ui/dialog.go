package ui

import tea "github.com/charmbracelet/bubbletea"

// Dialog wraps any tea.Model content and prepends the application header
// with the dialog title to its view.
type Dialog struct {
	content tea.Model
	title   string
}

// NewDialog creates a new dialog around content
func NewDialog(title string, content tea.Model) *Dialog {
	return &Dialog{
		content: content,
		title:   title,
	}
}

// Init delegates to the wrapped content
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to the wrapped content and keeps the dialog as the model
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedContent, cmd := d.content.Update(msg)
	d.content = updatedContent
	return d, cmd
}

// View renders the header followed by the content
func (d *Dialog) View() string {
	return renderDialogHeader(d.title) + d.content.View()
}

// Content returns the wrapped content for type assertion
func (d *Dialog) Content() tea.Model {
	return d.content
}

// completable is implemented by every dialog content that can finish
type completable interface {
	IsCompleted() bool
}

// completed reports whether the dialog content finished
func (d *Dialog) completed() bool {
	if c, ok := d.content.(completable); ok {
		return c.IsCompleted()
	}
	return false
}

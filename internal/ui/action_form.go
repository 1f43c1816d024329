package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/appdeck/internal/logging"
)

// ActionForm runs a huh form and calls submit once the user completes it.
// Esc or ctrl+c cancel without calling submit.
type ActionForm struct {
	Cancelled bool
	Completed bool
	Err       error
	// Followup, when set, names the dialog opened after a successful submit
	Followup func() (title string, content tea.Model)
	form     *huh.Form
	submit   func() error
}

// NewActionForm creates a form that applies its values through submit
func NewActionForm(submit func() error, groups ...*huh.Group) *ActionForm {
	return &ActionForm{
		form:   huh.NewForm(groups...),
		submit: submit,
	}
}

// Init implements tea.Model
func (f *ActionForm) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *ActionForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			f.Cancelled = true
			f.Completed = true
			return f, nil
		}
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	switch f.form.State {
	case huh.StateCompleted:
		f.Completed = true
		if f.submit != nil {
			if err := f.submit(); err != nil {
				logging.Logger.Error("Form action failed", "error", err)
				f.Err = err
			}
		}
		return f, nil
	case huh.StateAborted:
		f.Cancelled = true
		f.Completed = true
		return f, nil
	}

	return f, cmd
}

// View implements tea.Model
func (f *ActionForm) View() string {
	if f.form != nil {
		return f.form.View()
	}
	return ""
}

// IsCompleted implements completable
func (f *ActionForm) IsCompleted() bool { return f.Completed }

package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearErrorMsg is sent when the error display timer fires
type clearErrorMsg struct{}

// ErrorManager holds the error shown in the footer and clears it after a delay
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
}

// NewErrorManager creates a new error manager
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{errorClearDelay: errorClearDelay}
}

// SetError sets the current error
func (em *ErrorManager) SetError(err error) {
	em.currentError = err
}

// ClearError clears the current error
func (em *ErrorManager) ClearError() {
	em.currentError = nil
}

// GetError returns the current error
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError reports whether an error is displayed
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// ClearAfterDelay returns a command that clears the error after the configured delay.
// A zero delay keeps the error until the next one replaces it.
func (em *ErrorManager) ClearAfterDelay() tea.Cmd {
	if em.errorClearDelay <= 0 {
		return nil
	}
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

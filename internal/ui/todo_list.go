package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/appdeck/internal/theme"
)

func (m *Model) renderTodos() string {
	todos := m.dashboard.Todos.List()
	if len(todos) == 0 {
		return theme.MutedStyle.Render("No todos. Press n to add one.") + "\n"
	}

	var b strings.Builder
	for i, todo := range todos {
		text := theme.NormalStyle.Render(todo.Text)
		if todo.Completed {
			text = theme.DoneStyle.Render(todo.Text)
		}
		cursor := "  "
		if i == m.cursors[tabTodos] {
			cursor = theme.SelectedStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s[%s] %s\n", cursor, box(todo.Completed), text)
	}
	fmt.Fprintf(&b, "\n%s\n", theme.MutedStyle.Render(fmt.Sprintf("Open: %d", m.dashboard.Todos.OpenCount())))
	return b.String()
}

func (m *Model) handleTodosKey(msg tea.KeyMsg) tea.Cmd {
	ctx := context.Background()
	svc := m.dashboard.Todos

	if key.Matches(msg, m.keys.Items.New.Binding) {
		return m.openDialog("New Todo", NewInputForm("Todo", "", func(text string) error {
			_, err := svc.Add(ctx, text)
			return err
		}))
	}

	todos := svc.List()
	if len(todos) == 0 {
		return nil
	}
	todo := todos[min(m.cursors[tabTodos], len(todos)-1)]

	switch {
	case key.Matches(msg, m.keys.Items.Toggle.Binding):
		if _, err := svc.Toggle(ctx, todo.ID); err != nil {
			return m.showError(err)
		}
	case key.Matches(msg, m.keys.Items.Edit.Binding):
		return m.openDialog("Rename Todo", NewInputForm("Todo", todo.Text, func(text string) error {
			_, err := svc.Rename(ctx, todo.ID, text)
			return err
		}))
	case key.Matches(msg, m.keys.Items.Delete.Binding):
		if _, err := svc.Delete(ctx, todo.ID); err != nil {
			return m.showError(err)
		}
		m.clampCursors()
	}
	return nil
}

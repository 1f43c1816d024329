package ui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/ports"
	"github.com/renato0307/appdeck/internal/theme"
)

func statusStyleFor(status domain.IdeaStatus) string {
	return theme.IdeaStatusStyle(slices.Index(domain.IdeaPipeline, status)).Render(fmt.Sprintf("%-10s", status))
}

func (m *Model) renderShorts() string {
	var b strings.Builder

	counts := m.dashboard.Ideas.CountByStatus()
	pipeline := make([]string, 0, len(domain.IdeaPipeline))
	for _, s := range domain.IdeaPipeline {
		pipeline = append(pipeline, fmt.Sprintf("%s %d", s, counts[s]))
	}
	b.WriteString(theme.MutedStyle.Render(strings.Join(pipeline, " → ")) + "\n\n")

	ideas := m.dashboard.Ideas.List()
	if len(ideas) == 0 {
		b.WriteString(theme.MutedStyle.Render("No ideas yet. Press n to add one.") + "\n")
		return b.String()
	}

	for i, idea := range ideas {
		title := theme.NormalStyle.Render(idea.Title)
		cursor := "  "
		if i == m.cursors[tabShorts] {
			cursor = theme.SelectedStyle.Render("> ")
			title = theme.SelectedStyle.Render(idea.Title)
		}
		created := ""
		if m.showTimestamps {
			created = theme.MutedStyle.Render("  " + m.timeLabel(&idea.CreatedAt))
		}
		fmt.Fprintf(&b, "%s%s %s%s\n", cursor, statusStyleFor(idea.Status), title, created)
	}

	idea := ideas[min(m.cursors[tabShorts], len(ideas)-1)]
	if idea.Description != "" {
		b.WriteString("\n" + theme.HelpLabelStyle.Render(idea.Description) + "\n")
	}
	if note := idea.Note(idea.Status); note != "" {
		b.WriteString(theme.LabelStyle.Render(string(idea.Status)+" note") + note + "\n")
	}
	return b.String()
}

func (m *Model) handleShortsKey(msg tea.KeyMsg) tea.Cmd {
	ctx := context.Background()
	svc := m.dashboard.Ideas

	if key.Matches(msg, m.keys.Items.New.Binding) {
		return m.openDialog("New Short Idea", NewIdeaForm(m.dashboard, nil))
	}

	ideas := svc.List()
	if len(ideas) == 0 {
		return nil
	}
	idea := ideas[min(m.cursors[tabShorts], len(ideas)-1)]

	switch {
	case key.Matches(msg, m.keys.Items.Edit.Binding):
		return m.openDialog("Edit Short Idea", NewIdeaForm(m.dashboard, &idea))

	case key.Matches(msg, m.keys.Shorts.SetStatus.Binding):
		return m.openDialog("Set Status", NewIdeaStatusForm(m.dashboard, idea))

	case key.Matches(msg, m.keys.Shorts.AdvanceStatus.Binding):
		updated, err := svc.Advance(ctx, idea.ID)
		if err != nil {
			return m.showError(err)
		}
		m.showNotice("'%s' is now %s", updated.Title, updated.Status)

	case key.Matches(msg, m.keys.Apps.Write.Binding):
		title := fmt.Sprintf("%s Note", idea.Status)
		return m.openDialog(title, NewTextAreaForm(title, idea.Title, idea.Note(idea.Status), func(text string) error {
			_, err := svc.SetStatusNote(ctx, idea.ID, idea.Status, text)
			return err
		}))

	case key.Matches(msg, m.keys.Items.Delete.Binding):
		return m.openDialog("Delete Short Idea", NewConfirmForm(
			fmt.Sprintf("Delete '%s'?", idea.Title), "",
			func(c ports.Confirmer) error {
				deleted, err := svc.DeleteIdea(ctx, idea.ID, c)
				if deleted {
					m.showNotice("Idea '%s' deleted", idea.Title)
				}
				return err
			}))
	}
	return nil
}

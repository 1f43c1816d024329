package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/logging"
)

// Id prefixes for per-app items
const (
	blockerIDPrefix = "b-"
	bugIDPrefix     = "bug-"
	todoIDPrefix    = "t-"
)

// AddTodo appends a todo to the app. Blank text yields a nil item without error.
func (s *AppService) AddTodo(ctx context.Context, appID, text string) (*domain.TodoItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	item := domain.TodoItem{ID: s.opts.newID(todoIDPrefix), Text: text}
	if _, err := s.mutate(ctx, appID, func(app *domain.App) error {
		app.Todos = domain.Add(app.Todos, item)
		return nil
	}); err != nil {
		return nil, err
	}

	logging.Logger.Debug("Todo added", "app_id", appID, "todo_id", item.ID)
	return &item, nil
}

// ToggleTodo flips the completed flag; an unknown todo id changes nothing
func (s *AppService) ToggleTodo(ctx context.Context, appID, todoID string) (*domain.App, error) {
	return s.mutate(ctx, appID, func(app *domain.App) error {
		app.Todos = domain.ToggleTodo(app.Todos, todoID)
		return nil
	})
}

// DeleteTodo removes a todo; an unknown todo id changes nothing
func (s *AppService) DeleteTodo(ctx context.Context, appID, todoID string) (*domain.App, error) {
	return s.mutate(ctx, appID, func(app *domain.App) error {
		app.Todos = domain.Remove(app.Todos, todoID)
		return nil
	})
}

// AddBlocker appends a blocker. Blank text yields a nil item without error.
func (s *AppService) AddBlocker(ctx context.Context, appID, text string) (*domain.BlockerItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	item := domain.BlockerItem{ID: s.opts.newID(blockerIDPrefix), Text: text}
	if _, err := s.mutate(ctx, appID, func(app *domain.App) error {
		app.Blockers = domain.Add(app.Blockers, item)
		return nil
	}); err != nil {
		return nil, err
	}

	logging.Logger.Debug("Blocker added", "app_id", appID, "blocker_id", item.ID)
	return &item, nil
}

// ToggleBlocker flips the resolved flag
func (s *AppService) ToggleBlocker(ctx context.Context, appID, blockerID string) (*domain.App, error) {
	return s.mutate(ctx, appID, func(app *domain.App) error {
		app.Blockers = domain.ToggleBlocker(app.Blockers, blockerID)
		return nil
	})
}

// DeleteBlocker removes a blocker
func (s *AppService) DeleteBlocker(ctx context.Context, appID, blockerID string) (*domain.App, error) {
	return s.mutate(ctx, appID, func(app *domain.App) error {
		app.Blockers = domain.Remove(app.Blockers, blockerID)
		return nil
	})
}

// AddBug appends a bug with the given priority (Medium when empty).
// Blank text yields a nil item without error.
func (s *AppService) AddBug(ctx context.Context, appID, text string, priority domain.BugPriority) (*domain.BugItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, priority)
	}

	item := domain.BugItem{ID: s.opts.newID(bugIDPrefix), Priority: priority, Text: text}
	if _, err := s.mutate(ctx, appID, func(app *domain.App) error {
		app.Bugs = domain.Add(app.Bugs, item)
		return nil
	}); err != nil {
		return nil, err
	}

	logging.Logger.Debug("Bug added", "app_id", appID, "bug_id", item.ID, "priority", priority)
	return &item, nil
}

// ToggleBug flips the resolved flag
func (s *AppService) ToggleBug(ctx context.Context, appID, bugID string) (*domain.App, error) {
	return s.mutate(ctx, appID, func(app *domain.App) error {
		app.Bugs = domain.ToggleBug(app.Bugs, bugID)
		return nil
	})
}

// DeleteBug removes a bug
func (s *AppService) DeleteBug(ctx context.Context, appID, bugID string) (*domain.App, error) {
	return s.mutate(ctx, appID, func(app *domain.App) error {
		app.Bugs = domain.Remove(app.Bugs, bugID)
		return nil
	})
}

// AddLink appends a link, rejecting a URL already on the app.
// A blank URL yields a nil app without error.
func (s *AppService) AddLink(ctx context.Context, appID string, link domain.LinkItem) (*domain.App, error) {
	link, ok := cleanLink(link)
	if !ok {
		return nil, nil
	}

	return s.mutate(ctx, appID, func(app *domain.App) error {
		links, err := domain.AddLink(app.Links, link)
		if err != nil {
			return fmt.Errorf("%w: %s", err, link.URL)
		}
		app.Links = links
		return nil
	})
}

// UpdateLink replaces the label and icon of the link with the same URL
func (s *AppService) UpdateLink(ctx context.Context, appID string, link domain.LinkItem) (*domain.App, error) {
	link, ok := cleanLink(link)
	if !ok {
		return nil, nil
	}

	return s.mutate(ctx, appID, func(app *domain.App) error {
		app.Links = domain.UpdateLink(app.Links, link)
		return nil
	})
}

// DeleteLink removes the link with the given URL
func (s *AppService) DeleteLink(ctx context.Context, appID, url string) (*domain.App, error) {
	url = strings.TrimSpace(url)
	return s.mutate(ctx, appID, func(app *domain.App) error {
		app.Links = domain.RemoveLink(app.Links, url)
		return nil
	})
}

// cleanLink trims a link; the label falls back to the URL
func cleanLink(l domain.LinkItem) (domain.LinkItem, bool) {
	l.URL = strings.TrimSpace(l.URL)
	l.Label = strings.TrimSpace(l.Label)
	l.Icon = strings.TrimSpace(l.Icon)
	if l.URL == "" {
		return l, false
	}
	if l.Label == "" {
		l.Label = l.URL
	}
	return l, true
}

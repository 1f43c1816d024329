package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/logging"
	"github.com/renato0307/appdeck/internal/ports"
)

const mainTodoIDPrefix = "m-"

// TodoService manages the dashboard-wide todo list
type TodoService struct {
	todos *collection[domain.TodoItem]
	opts  options
}

// NewTodoService creates a new TodoService; call Load before use
func NewTodoService(store ports.CollectionStore, opts ...Option) *TodoService {
	return &TodoService{
		todos: newCollection[domain.TodoItem](store, domain.CollectionMainTodos),
		opts:  buildOptions(opts),
	}
}

// Load reads the main todos, falling back to the seed todos
func (s *TodoService) Load(ctx context.Context) []domain.TodoItem {
	todos := s.todos.load(ctx, func() []domain.TodoItem {
		if !s.opts.seed {
			return nil
		}
		return domain.SeedMainTodos()
	}, validateTodo)

	logging.Logger.Info("Main todos loaded", "count", len(todos))
	return todos
}

// List returns the todos, newest first
func (s *TodoService) List() []domain.TodoItem {
	return s.todos.list()
}

// Add puts a new todo at the top. Blank text yields a nil item without error.
func (s *TodoService) Add(ctx context.Context, text string) (*domain.TodoItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	item := domain.TodoItem{ID: s.opts.newID(mainTodoIDPrefix), Text: text}
	if err := s.todos.update(ctx, func(items []domain.TodoItem) ([]domain.TodoItem, error) {
		return domain.Prepend(items, item), nil
	}); err != nil {
		return nil, err
	}

	logging.Logger.Info("Main todo added", "todo_id", item.ID)
	return &item, nil
}

// Toggle flips the completed flag
func (s *TodoService) Toggle(ctx context.Context, id string) (*domain.TodoItem, error) {
	if _, ok := s.todos.find(id); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTodoNotFound, id)
	}

	if err := s.todos.update(ctx, func(items []domain.TodoItem) ([]domain.TodoItem, error) {
		return domain.ToggleTodo(items, id), nil
	}); err != nil {
		return nil, err
	}

	item, _ := s.todos.find(id)
	return &item, nil
}

// Rename replaces the text of a todo. Blank text changes nothing.
func (s *TodoService) Rename(ctx context.Context, id, text string) (*domain.TodoItem, error) {
	text = strings.TrimSpace(text)
	item, ok := s.todos.find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTodoNotFound, id)
	}
	if text == "" {
		return nil, nil
	}

	item.Text = text
	if err := s.todos.update(ctx, func(items []domain.TodoItem) ([]domain.TodoItem, error) {
		return domain.Update(items, item), nil
	}); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a todo
func (s *TodoService) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := s.todos.find(id); !ok {
		return false, fmt.Errorf("%w: %s", domain.ErrTodoNotFound, id)
	}

	if err := s.todos.update(ctx, func(items []domain.TodoItem) ([]domain.TodoItem, error) {
		return domain.Remove(items, id), nil
	}); err != nil {
		return false, err
	}

	logging.Logger.Info("Main todo deleted", "todo_id", id)
	return true, nil
}

// OpenCount returns how many todos are still open
func (s *TodoService) OpenCount() int {
	return domain.OpenCount(s.todos.list())
}

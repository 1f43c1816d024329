package services

import (
	"context"
	"strings"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/logging"
	"github.com/renato0307/appdeck/internal/ports"
)

// Dashboard is the application state shared by the CLI commands and the TUI.
// It owns one service per persisted collection.
type Dashboard struct {
	Apps      *AppService
	Ideas     *IdeaService
	Todos     *TodoService
	suggester ports.NameSuggester
}

// NewDashboard wires the three services over one store
func NewDashboard(store ports.CollectionStore, suggester ports.NameSuggester, opts ...Option) *Dashboard {
	return &Dashboard{
		Apps:      NewAppService(store, opts...),
		Ideas:     NewIdeaService(store, opts...),
		Todos:     NewTodoService(store, opts...),
		suggester: suggester,
	}
}

// Load reads every collection from the store
func (d *Dashboard) Load(ctx context.Context) {
	d.Apps.Load(ctx)
	d.Todos.Load(ctx)
	d.Ideas.Load(ctx)
}

// Snapshot returns a copy of the whole dashboard state
func (d *Dashboard) Snapshot() Snapshot {
	return Snapshot{
		Apps:        d.Apps.List(),
		MainTodos:   d.Todos.List(),
		ShortsIdeas: d.Ideas.List(),
	}
}

// Summary holds the counters shown in the TUI header and `apps list`
type Summary struct {
	Apps        int
	Deployable  int
	IdeasByStep map[domain.IdeaStatus]int
	OpenTodos   int
	Running     int
}

// Summary computes the dashboard counters
func (d *Dashboard) Summary() Summary {
	apps := d.Apps.List()
	sum := Summary{
		Apps:        len(apps),
		IdeasByStep: d.Ideas.CountByStatus(),
		OpenTodos:   d.Todos.OpenCount(),
	}
	for _, a := range apps {
		if a.Status == domain.StatusRunning {
			sum.Running++
		}
		if a.DevStage == domain.StageDeployed && domain.CanDeploy(a) {
			sum.Deployable++
		}
	}
	return sum
}

// SuggestNames asks the name suggester for app names matching description
func (d *Dashboard) SuggestNames(ctx context.Context, description string) ([]string, error) {
	if d.suggester == nil {
		return nil, nil
	}

	names, err := d.suggester.Suggest(ctx, strings.TrimSpace(description))
	if err != nil {
		logging.Logger.Warn("Name suggestion failed", "error", err)
		return nil, err
	}
	return names, nil
}

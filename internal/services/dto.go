package services

import "github.com/renato0307/appdeck/internal/domain"

// CreateAppParams contains parameters for creating a new app
type CreateAppParams struct {
	Command     string
	Description string
	DevStage    domain.DevStage // defaults to Planning
	Links       []domain.LinkItem
	Name        string
	Path        string
	TechStack   []string // comma separated entries are split
}

// SimulationResult is the outcome of a simulated test or build run
type SimulationResult struct {
	App     *domain.App
	Success bool
}

// Snapshot is the whole dashboard state, used by export
type Snapshot struct {
	Apps        []domain.App       `json:"apps" yaml:"apps"`
	MainTodos   []domain.TodoItem  `json:"mainTodos" yaml:"mainTodos"`
	ShortsIdeas []domain.ShortIdea `json:"shortsIdeas" yaml:"shortsIdeas"`
}

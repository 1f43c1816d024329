package domain

import (
	"fmt"
	"strings"
	"time"
)

// AppStatus is the simulated operational flag of an app
type AppStatus string

const (
	StatusRunning AppStatus = "Running"
	StatusStopped AppStatus = "Stopped"
)

// Status symbols (Unicode)
const (
	SymbolRunning = "●" // Green - running
	SymbolStopped = "■" // Gray - stopped
)

// IsValid reports whether s is a known status
func (s AppStatus) IsValid() bool {
	switch s {
	case StatusRunning, StatusStopped:
		return true
	}
	return false
}

// Symbol returns the list icon for the status
func (s AppStatus) Symbol() string {
	if s == StatusRunning {
		return SymbolRunning
	}
	return SymbolStopped
}

// ParseAppStatus converts user input (case-insensitive) to an AppStatus
func ParseAppStatus(s string) (AppStatus, error) {
	for _, st := range []AppStatus{StatusRunning, StatusStopped} {
		if equalFold(string(st), s) {
			return st, nil
		}
	}
	return "", invalidValue(ErrInvalidStatus, s)
}

// DevStage classifies where an app is in its lifecycle
type DevStage string

const (
	StagePlanning    DevStage = "Planning"
	StageDevelopment DevStage = "Development"
	StageDeployed    DevStage = "Deployed"
)

// DevStages is the ordered progression of stages
var DevStages = []DevStage{StagePlanning, StageDevelopment, StageDeployed}

// IsValid reports whether s is a known stage
func (s DevStage) IsValid() bool {
	switch s {
	case StagePlanning, StageDevelopment, StageDeployed:
		return true
	}
	return false
}

// Next returns the following stage, wrapping back to Planning after Deployed
func (s DevStage) Next() DevStage {
	for i, st := range DevStages {
		if st == s {
			return DevStages[(i+1)%len(DevStages)]
		}
	}
	return StagePlanning
}

// ParseDevStage converts user input (case-insensitive) to a DevStage
func ParseDevStage(s string) (DevStage, error) {
	for _, st := range DevStages {
		if equalFold(string(st), s) {
			return st, nil
		}
	}
	return "", invalidValue(ErrInvalidStage, s)
}

// LinkItem is an external reference attached to an app, unique by URL
type LinkItem struct {
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Metrics are hand-maintained usage counters of a deployed app
type Metrics struct {
	APIUsage int `json:"apiUsage" yaml:"apiUsage"`
	DBCalls  int `json:"dbCalls" yaml:"dbCalls"`
}

// DeploymentInfo holds build and release data of an app
type DeploymentInfo struct {
	BuildCommand       string     `json:"buildCommand" yaml:"buildCommand"`
	BuildOutputPath    string     `json:"buildOutputPath" yaml:"buildOutputPath"`
	DeploymentCommand  string     `json:"deploymentCommand,omitempty" yaml:"deploymentCommand,omitempty"`
	DeploymentTarget   string     `json:"deploymentTarget" yaml:"deploymentTarget"`
	GitCommitHash      string     `json:"gitCommitHash,omitempty" yaml:"gitCommitHash,omitempty"`
	LastBuildSuccess   *bool      `json:"lastBuildSuccess,omitempty" yaml:"lastBuildSuccess,omitempty"`
	LastBuildTime      *time.Time `json:"lastBuildTime,omitempty" yaml:"lastBuildTime,omitempty"`
	LastDeploymentTime *time.Time `json:"lastDeploymentTime,omitempty" yaml:"lastDeploymentTime,omitempty"`
	ReleaseNotes       string     `json:"releaseNotes,omitempty" yaml:"releaseNotes,omitempty"`
	Version            string     `json:"version" yaml:"version"`
}

// TestInfo holds the test command and the outcome of the last run
type TestInfo struct {
	Coverage        *int       `json:"coverage,omitempty" yaml:"coverage,omitempty"`
	LastTestSuccess *bool      `json:"lastTestSuccess,omitempty" yaml:"lastTestSuccess,omitempty"`
	LastTestTime    *time.Time `json:"lastTestTime,omitempty" yaml:"lastTestTime,omitempty"`
	TestCommand     string     `json:"testCommand" yaml:"testCommand"`
}

// App is a tracked software project (domain entity)
type App struct {
	Blockers       []BlockerItem  `json:"blockers" yaml:"blockers"`
	Bugs           []BugItem      `json:"bugs" yaml:"bugs"`
	Command        string         `json:"command" yaml:"command"`
	DeploymentInfo DeploymentInfo `json:"deploymentInfo" yaml:"deploymentInfo"`
	Description    string         `json:"description" yaml:"description"`
	DevStage       DevStage       `json:"devStage" yaml:"devStage"`
	Documentation  string         `json:"documentation" yaml:"documentation"`
	ID             string         `json:"id" yaml:"id"`
	Ideas          string         `json:"ideas" yaml:"ideas"`
	Links          []LinkItem     `json:"links" yaml:"links"`
	Logs           []string       `json:"logs" yaml:"logs"`
	Metrics        Metrics        `json:"metrics" yaml:"metrics"`
	Name           string         `json:"name" yaml:"name"`
	Path           string         `json:"path" yaml:"path"`
	Status         AppStatus      `json:"status" yaml:"status"`
	TechStack      []string       `json:"techStack" yaml:"techStack"`
	TestInfo       TestInfo       `json:"testInfo" yaml:"testInfo"`
	Todos          []TodoItem     `json:"todos" yaml:"todos"`
}

// GetID implements Identifiable
func (a App) GetID() string { return a.ID }

// Default values applied to new apps
const (
	DefaultTestCommand = "npm test"
	DefaultVersion     = "v0.1.0"
)

// DefaultDocumentation returns the placeholder documentation for a new app
func DefaultDocumentation(name string) string {
	if strings.TrimSpace(name) == "" {
		name = "New app"
	}
	return fmt.Sprintf("# %s\n\nWrite the documentation for this app here.", name)
}

// NormalizeTechStack splits comma-separated entries, trims them and drops empties.
// Entries may already be split; each one is split again on commas.
func NormalizeTechStack(entries ...string) []string {
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		for _, part := range strings.Split(entry, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
	}
	return result
}

// FormatLogLine prefixes message with an RFC3339 UTC timestamp
func FormatLogLine(now time.Time, message string) string {
	return fmt.Sprintf("[%s] %s", now.UTC().Format(time.RFC3339), message)
}

// Normalize replaces nil slices with empty ones so stored JSON always has arrays
func (a *App) Normalize() {
	if a.Blockers == nil {
		a.Blockers = []BlockerItem{}
	}
	if a.Bugs == nil {
		a.Bugs = []BugItem{}
	}
	if a.Links == nil {
		a.Links = []LinkItem{}
	}
	if a.Logs == nil {
		a.Logs = []string{}
	}
	if a.TechStack == nil {
		a.TechStack = []string{}
	}
	if a.Todos == nil {
		a.Todos = []TodoItem{}
	}
}

// Validate checks the invariants a persisted app must satisfy
func (a App) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("app %q has no id", a.Name)
	}
	if !a.Status.IsValid() {
		return invalidValue(ErrInvalidStatus, string(a.Status))
	}
	if !a.DevStage.IsValid() {
		return invalidValue(ErrInvalidStage, string(a.DevStage))
	}
	for _, b := range a.Bugs {
		if !b.Priority.IsValid() {
			return invalidValue(ErrInvalidPriority, string(b.Priority))
		}
	}
	if a.Metrics.DBCalls < 0 || a.Metrics.APIUsage < 0 {
		return fmt.Errorf("app %s has negative metrics", a.ID)
	}
	if c := a.TestInfo.Coverage; c != nil && (*c < 0 || *c > 100) {
		return fmt.Errorf("app %s has coverage %d outside [0,100]", a.ID, *c)
	}
	return nil
}

package domain

// Action represents a user-invocable action on an app.
// This is the domain-level definition of what actions exist and in which
// dev stages they are offered.
type Action struct {
	Description string
	Name        string
	Stages      []DevStage // empty means every stage
}

// Action names
const (
	ActionBuild         = "build"
	ActionDelete        = "delete"
	ActionDeploy        = "deploy"
	ActionEdit          = "edit"
	ActionEditDocs      = "edit_docs"
	ActionEditIdeas     = "edit_ideas"
	ActionEditMetrics   = "edit_metrics"
	ActionEditRelease   = "edit_release"
	ActionLogs          = "logs"
	ActionRunTests      = "run_tests"
	ActionSetStage      = "set_stage"
	ActionStartStop     = "start_stop"
	ActionTrackBlockers = "track_blockers"
	ActionTrackBugs     = "track_bugs"
	ActionTrackTodos    = "track_todos"
)

// Actions is the canonical registry of all available app actions.
// Sorted alphabetically by Name.
var Actions = []Action{
	{Name: ActionBuild, Description: "Simulate a build", Stages: []DevStage{StageDeployed}},
	{Name: ActionDelete, Description: "Delete the app and all its data"},
	{Name: ActionDeploy, Description: "Simulate a production deploy", Stages: []DevStage{StageDeployed}},
	{Name: ActionEdit, Description: "Edit name, description, path, command and tech stack"},
	{Name: ActionEditDocs, Description: "Edit markdown documentation", Stages: []DevStage{StageDevelopment}},
	{Name: ActionEditIdeas, Description: "Edit planning ideas", Stages: []DevStage{StagePlanning}},
	{Name: ActionEditMetrics, Description: "Edit DB call and API usage counters", Stages: []DevStage{StageDeployed}},
	{Name: ActionEditRelease, Description: "Edit version, release notes and build settings", Stages: []DevStage{StageDeployed}},
	{Name: ActionLogs, Description: "Show the app log"},
	{Name: ActionRunTests, Description: "Simulate a test run", Stages: []DevStage{StageDevelopment}},
	{Name: ActionSetStage, Description: "Change the dev stage"},
	{Name: ActionStartStop, Description: "Start or stop the app (simulated)"},
	{Name: ActionTrackBlockers, Description: "Track blockers", Stages: []DevStage{StageDevelopment}},
	{Name: ActionTrackBugs, Description: "Track bugs", Stages: []DevStage{StageDevelopment}},
	{Name: ActionTrackTodos, Description: "Track todos", Stages: []DevStage{StageDevelopment}},
}

// GetActionByName returns an action by its name, or nil if not found.
func GetActionByName(name string) *Action {
	for i := range Actions {
		if Actions[i].Name == name {
			return &Actions[i]
		}
	}
	return nil
}

// AvailableIn reports whether the action is offered for stage
func (a Action) AvailableIn(stage DevStage) bool {
	if len(a.Stages) == 0 {
		return true
	}
	for _, s := range a.Stages {
		if s == stage {
			return true
		}
	}
	return false
}

// ActionsForStage returns actions filtered by dev stage.
func ActionsForStage(stage DevStage) []Action {
	var filtered []Action
	for _, a := range Actions {
		if a.AvailableIn(stage) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// IsActionAllowed reports whether the named action is offered for stage.
// Unknown actions are never allowed.
func IsActionAllowed(stage DevStage, name string) bool {
	a := GetActionByName(name)
	return a != nil && a.AvailableIn(stage)
}

package domain

import "strings"

// Section is a block of app details shown for a dev stage
type Section string

const (
	SectionIdeas         Section = "ideas"
	SectionTracking      Section = "tracking"
	SectionDocumentation Section = "documentation"
	SectionTesting       Section = "testing"
	SectionBuild         Section = "build"
	SectionDeploy        Section = "deploy"
	SectionMetrics       Section = "metrics"
)

// SectionsFor returns the sections surfaced for a stage, in display order.
// Data of other stages is kept on the app, just not shown.
func SectionsFor(stage DevStage) []Section {
	switch stage {
	case StagePlanning:
		return []Section{SectionIdeas}
	case StageDevelopment:
		return []Section{SectionTracking, SectionDocumentation, SectionTesting}
	case StageDeployed:
		return []Section{SectionBuild, SectionDeploy, SectionMetrics}
	}
	return nil
}

// HasSection reports whether section is shown for stage
func HasSection(stage DevStage, section Section) bool {
	for _, s := range SectionsFor(stage) {
		if s == section {
			return true
		}
	}
	return false
}

// TrackingList selects one of the three development sub-lists
type TrackingList string

const (
	TrackTodos    TrackingList = "todos"
	TrackBlockers TrackingList = "blockers"
	TrackBugs     TrackingList = "bugs"
)

// TrackingLists is the order the development sub-lists are cycled through
var TrackingLists = []TrackingList{TrackTodos, TrackBlockers, TrackBugs}

// Next returns the following tracking list, wrapping around
func (t TrackingList) Next() TrackingList {
	for i, l := range TrackingLists {
		if l == t {
			return TrackingLists[(i+1)%len(TrackingLists)]
		}
	}
	return TrackTodos
}

// DeployReadiness is the checklist gating the deploy action
type DeployReadiness struct {
	AllTodosCompleted   bool
	LastBuildSucceeded  bool
	ReleaseNotesPresent bool
}

// CanDeploy is true only when every checklist item is met
func (r DeployReadiness) CanDeploy() bool {
	return r.AllTodosCompleted && r.ReleaseNotesPresent && r.LastBuildSucceeded
}

// Missing lists the unmet checklist items in display order
func (r DeployReadiness) Missing() []string {
	var missing []string
	if !r.AllTodosCompleted {
		missing = append(missing, "all todos completed")
	}
	if !r.ReleaseNotesPresent {
		missing = append(missing, "release notes written")
	}
	if !r.LastBuildSucceeded {
		missing = append(missing, "last build succeeded")
	}
	return missing
}

// CheckDeployReadiness evaluates the deploy checklist for app. It is recomputed
// from the current fields every time.
func CheckDeployReadiness(app App) DeployReadiness {
	return DeployReadiness{
		AllTodosCompleted:   AllTodosCompleted(app.Todos),
		LastBuildSucceeded:  app.DeploymentInfo.LastBuildSuccess != nil && *app.DeploymentInfo.LastBuildSuccess,
		ReleaseNotesPresent: strings.TrimSpace(app.DeploymentInfo.ReleaseNotes) != "",
	}
}

// CanDeploy is shorthand for CheckDeployReadiness(app).CanDeploy()
func CanDeploy(app App) bool {
	return CheckDeployReadiness(app).CanDeploy()
}

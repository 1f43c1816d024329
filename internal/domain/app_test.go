package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTechStack(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"comma separated", []string{"Go, SQLite ,  Bubble Tea"}, []string{"Go", "SQLite", "Bubble Tea"}},
		{"drops empties", []string{"Go,, ,", " "}, []string{"Go"}},
		{"already split", []string{"Go", " React "}, []string{"Go", "React"}},
		{"nothing", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTechStack(tt.input...))
		})
	}
}

func TestParseDevStage(t *testing.T) {
	stage, err := ParseDevStage("development")
	require.NoError(t, err)
	assert.Equal(t, StageDevelopment, stage)

	_, err = ParseDevStage("retired")
	assert.ErrorIs(t, err, ErrInvalidStage)
}

func TestDevStageNext_WrapsAround(t *testing.T) {
	assert.Equal(t, StageDevelopment, StagePlanning.Next())
	assert.Equal(t, StageDeployed, StageDevelopment.Next())
	assert.Equal(t, StagePlanning, StageDeployed.Next())
}

func TestParseAppStatus(t *testing.T) {
	status, err := ParseAppStatus("RUNNING")
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, status)
	assert.Equal(t, SymbolRunning, status.Symbol())

	_, err = ParseAppStatus("paused")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestFormatLogLine(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

	assert.Equal(t, "[2025-03-04T05:06:07Z] INFO: app started", FormatLogLine(now, "INFO: app started"))
}

func TestDefaultDocumentation_ContainsName(t *testing.T) {
	assert.Contains(t, DefaultDocumentation("Rocket"), "# Rocket")
	assert.Contains(t, DefaultDocumentation("  "), "# New app")
}

func TestApp_Validate(t *testing.T) {
	valid := App{ID: "1", Status: StatusStopped, DevStage: StagePlanning}
	coverage := 120

	tests := []struct {
		name    string
		app     App
		wantErr bool
	}{
		{"valid", valid, false},
		{"missing id", App{Status: StatusStopped, DevStage: StagePlanning}, true},
		{"bad status", App{ID: "1", Status: "Paused", DevStage: StagePlanning}, true},
		{"bad stage", App{ID: "1", Status: StatusStopped, DevStage: "Beta"}, true},
		{"bad bug priority", App{ID: "1", Status: StatusStopped, DevStage: StagePlanning, Bugs: []BugItem{{ID: "b", Priority: "P0"}}}, true},
		{"coverage out of range", App{ID: "1", Status: StatusStopped, DevStage: StagePlanning, TestInfo: TestInfo{Coverage: &coverage}}, true},
		{"negative metrics", App{ID: "1", Status: StatusStopped, DevStage: StagePlanning, Metrics: Metrics{DBCalls: -1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.app.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSeedApps_AreValid(t *testing.T) {
	apps := SeedApps()

	require.Len(t, apps, 3)
	for _, app := range apps {
		assert.NoError(t, app.Validate(), app.ID)
	}
}

func TestApplyAppPatch_ShallowMerge(t *testing.T) {
	app := SeedApps()[0]
	name := "Renamed"
	stack := []string{"Go, Templ"}

	patched := ApplyAppPatch(app, AppPatch{Name: &name, TechStack: &stack})

	assert.Equal(t, "Renamed", patched.Name)
	assert.Equal(t, []string{"Go", "Templ"}, patched.TechStack)
	assert.Equal(t, app.Description, patched.Description, "sibling fields must survive")
	assert.Equal(t, app.Todos, patched.Todos)
	assert.Equal(t, app.ID, patched.ID)
	assert.Equal(t, app.Logs, patched.Logs)
}

func TestApplyAppPatch_NestedStructReplacedWhole(t *testing.T) {
	app := SeedApps()[1]

	patched := ApplyAppPatch(app, AppPatch{DeploymentInfo: &DeploymentInfo{Version: "v2.0.0"}})

	assert.Equal(t, "v2.0.0", patched.DeploymentInfo.Version)
	assert.Empty(t, patched.DeploymentInfo.BuildCommand, "top-level patch replaces the nested value")
}

func TestAppPatchIsEmpty(t *testing.T) {
	assert.True(t, AppPatch{}.IsEmpty())
	ideas := ""
	assert.False(t, AppPatch{Ideas: &ideas}.IsEmpty())
}

func TestDeploymentInfoPatch_KeepsSiblings(t *testing.T) {
	info := SeedApps()[1].DeploymentInfo
	notes := "hotfix"

	merged := DeploymentInfoPatch{ReleaseNotes: &notes}.Apply(info)

	assert.Equal(t, "hotfix", merged.ReleaseNotes)
	assert.Equal(t, info.BuildCommand, merged.BuildCommand)
	assert.Equal(t, info.Version, merged.Version)
	assert.Equal(t, info.LastBuildSuccess, merged.LastBuildSuccess)
}

func TestMetricsPatch_ClampsNegative(t *testing.T) {
	neg := -5
	calls := 12

	m := MetricsPatch{APIUsage: &neg, DBCalls: &calls}.Apply(Metrics{APIUsage: 7, DBCalls: 3})

	assert.Equal(t, Metrics{APIUsage: 0, DBCalls: 12}, m)
}

func TestParseMetricValue(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"42", 42},
		{" 17 ", 17},
		{"3.9", 3},
		{"", 0},
		{"abc", 0},
		{"NaN", 0},
		{"-4", 0},
		{"Inf", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseMetricValue(tt.input))
		})
	}
}

func TestLinks_UniqueByURL(t *testing.T) {
	links := []LinkItem{{Label: "repo", URL: "https://example.com/repo"}}

	_, err := AddLink(links, LinkItem{Label: "dup", URL: "https://example.com/repo"})
	assert.ErrorIs(t, err, ErrDuplicateLink)

	added, err := AddLink(links, LinkItem{Label: "docs", URL: "https://example.com/docs"})
	require.NoError(t, err)
	assert.Len(t, added, 2)
	assert.Len(t, links, 1)

	updated := UpdateLink(added, LinkItem{Label: "Docs site", URL: "https://example.com/docs", Icon: "book"})
	assert.Equal(t, "Docs site", updated[1].Label)

	removed := RemoveLink(updated, "https://example.com/repo")
	require.Len(t, removed, 1)
	assert.Equal(t, "https://example.com/docs", removed[0].URL)
}

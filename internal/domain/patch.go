package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// AppPatch is a partial update of an app. Nil fields are left untouched.
// Nested structs (DeploymentInfo, TestInfo, Metrics) replace the whole previous
// value when set; use the nested patch types to merge individual fields.
type AppPatch struct {
	Blockers       *[]BlockerItem
	Bugs           *[]BugItem
	Command        *string
	DeploymentInfo *DeploymentInfo
	Description    *string
	DevStage       *DevStage
	Documentation  *string
	Ideas          *string
	Links          *[]LinkItem
	Metrics        *Metrics
	Name           *string
	Path           *string
	Status         *AppStatus
	TechStack      *[]string
	TestInfo       *TestInfo
	Todos          *[]TodoItem
}

// IsEmpty reports whether the patch changes nothing
func (p AppPatch) IsEmpty() bool {
	return p == AppPatch{}
}

// ApplyAppPatch returns a copy of app with the patch shallow-merged in.
// ID and Logs are never touched by a patch.
func ApplyAppPatch(app App, p AppPatch) App {
	if p.Blockers != nil {
		app.Blockers = *p.Blockers
	}
	if p.Bugs != nil {
		app.Bugs = *p.Bugs
	}
	if p.Command != nil {
		app.Command = *p.Command
	}
	if p.DeploymentInfo != nil {
		app.DeploymentInfo = *p.DeploymentInfo
	}
	if p.Description != nil {
		app.Description = *p.Description
	}
	if p.DevStage != nil {
		app.DevStage = *p.DevStage
	}
	if p.Documentation != nil {
		app.Documentation = *p.Documentation
	}
	if p.Ideas != nil {
		app.Ideas = *p.Ideas
	}
	if p.Links != nil {
		app.Links = *p.Links
	}
	if p.Metrics != nil {
		app.Metrics = *p.Metrics
	}
	if p.Name != nil {
		app.Name = *p.Name
	}
	if p.Path != nil {
		app.Path = *p.Path
	}
	if p.Status != nil {
		app.Status = *p.Status
	}
	if p.TechStack != nil {
		app.TechStack = NormalizeTechStack(*p.TechStack...)
	}
	if p.TestInfo != nil {
		app.TestInfo = *p.TestInfo
	}
	if p.Todos != nil {
		app.Todos = *p.Todos
	}
	return app
}

// DeploymentInfoPatch merges individual deployment fields
type DeploymentInfoPatch struct {
	BuildCommand       *string
	BuildOutputPath    *string
	DeploymentCommand  *string
	DeploymentTarget   *string
	GitCommitHash      *string
	LastBuildSuccess   *bool
	LastBuildTime      *time.Time
	LastDeploymentTime *time.Time
	ReleaseNotes       *string
	Version            *string
}

// Apply returns info with the set fields of the patch merged in
func (p DeploymentInfoPatch) Apply(info DeploymentInfo) DeploymentInfo {
	if p.BuildCommand != nil {
		info.BuildCommand = *p.BuildCommand
	}
	if p.BuildOutputPath != nil {
		info.BuildOutputPath = *p.BuildOutputPath
	}
	if p.DeploymentCommand != nil {
		info.DeploymentCommand = *p.DeploymentCommand
	}
	if p.DeploymentTarget != nil {
		info.DeploymentTarget = *p.DeploymentTarget
	}
	if p.GitCommitHash != nil {
		info.GitCommitHash = *p.GitCommitHash
	}
	if p.LastBuildSuccess != nil {
		info.LastBuildSuccess = p.LastBuildSuccess
	}
	if p.LastBuildTime != nil {
		info.LastBuildTime = p.LastBuildTime
	}
	if p.LastDeploymentTime != nil {
		info.LastDeploymentTime = p.LastDeploymentTime
	}
	if p.ReleaseNotes != nil {
		info.ReleaseNotes = *p.ReleaseNotes
	}
	if p.Version != nil {
		info.Version = *p.Version
	}
	return info
}

// TestInfoPatch merges individual test fields
type TestInfoPatch struct {
	Coverage        *int
	LastTestSuccess *bool
	LastTestTime    *time.Time
	TestCommand     *string
}

// Apply returns info with the set fields of the patch merged in
func (p TestInfoPatch) Apply(info TestInfo) TestInfo {
	if p.Coverage != nil {
		info.Coverage = p.Coverage
	}
	if p.LastTestSuccess != nil {
		info.LastTestSuccess = p.LastTestSuccess
	}
	if p.LastTestTime != nil {
		info.LastTestTime = p.LastTestTime
	}
	if p.TestCommand != nil {
		info.TestCommand = *p.TestCommand
	}
	return info
}

// MetricsPatch merges individual metric counters
type MetricsPatch struct {
	APIUsage *int
	DBCalls  *int
}

// Apply returns m with the set counters merged in, clamped to zero
func (p MetricsPatch) Apply(m Metrics) Metrics {
	if p.APIUsage != nil {
		m.APIUsage = max(*p.APIUsage, 0)
	}
	if p.DBCalls != nil {
		m.DBCalls = max(*p.DBCalls, 0)
	}
	return m
}

// ParseMetricValue converts raw input into a metric counter.
// Empty, non-numeric, NaN and negative input all become 0; fractions are truncated.
func ParseMetricValue(raw string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

// AddLink appends a link unless one with the same URL exists
func AddLink(links []LinkItem, link LinkItem) ([]LinkItem, error) {
	for _, l := range links {
		if l.URL == link.URL {
			return links, ErrDuplicateLink
		}
	}
	out := make([]LinkItem, 0, len(links)+1)
	out = append(out, links...)
	return append(out, link), nil
}

// UpdateLink replaces the link whose URL matches link.URL
func UpdateLink(links []LinkItem, link LinkItem) []LinkItem {
	out := make([]LinkItem, len(links))
	for i, l := range links {
		if l.URL == link.URL {
			out[i] = link
			continue
		}
		out[i] = l
	}
	return out
}

// RemoveLink drops the link with the given URL
func RemoveLink(links []LinkItem, url string) []LinkItem {
	out := make([]LinkItem, 0, len(links))
	for _, l := range links {
		if l.URL != url {
			out = append(out, l)
		}
	}
	return out
}

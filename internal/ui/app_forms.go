package ui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/appdeck/internal/config"
	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/services"
)

// appFormValues holds the fields shared by the create and edit app forms
type appFormValues struct {
	command     string
	description string
	extraStack  string
	name        string
	path        string
	stack       []string
	stage       domain.DevStage
	testCommand string
}

func requireText(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s required", field)
		}
		return nil
	}
}

// techStackOptions offers the configured presets plus the app's own entries
func techStackOptions(presets, current []string) []huh.Option[string] {
	names := slices.Clone(presets)
	for _, t := range current {
		if !slices.Contains(names, t) {
			names = append(names, t)
		}
	}
	options := make([]huh.Option[string], 0, len(names))
	for _, n := range names {
		options = append(options, huh.NewOption(n, n).Selected(slices.Contains(current, n)))
	}
	return options
}

func (v *appFormValues) techStack() []string {
	return domain.NormalizeTechStack(append(slices.Clone(v.stack), v.extraStack)...)
}

func (v *appFormValues) fields(presets []string) []huh.Field {
	fields := []huh.Field{
		huh.NewInput().Title("Name").Value(&v.name).Validate(requireText("app name")),
		huh.NewText().Title("Description").Value(&v.description).Lines(3),
		huh.NewInput().Title("Path").Description("Folder of the project").Value(&v.path),
		huh.NewInput().Title("Start command").Value(&v.command),
	}
	if len(presets) > 0 || len(v.stack) > 0 {
		fields = append(fields, huh.NewMultiSelect[string]().
			Title("Tech stack").
			Options(techStackOptions(presets, v.stack)...).
			Value(&v.stack))
	}
	return append(fields, huh.NewInput().
		Title("Other technologies").
		Description("Comma separated").
		Value(&v.extraStack))
}

// NewCreateAppForm builds the dialog content for creating an app
func NewCreateAppForm(dashboard *services.Dashboard, presets []string, name string, onCreated func(*domain.App)) *ActionForm {
	v := &appFormValues{name: name, stage: domain.StagePlanning}

	stageOptions := make([]huh.Option[domain.DevStage], 0, len(domain.DevStages))
	for _, s := range domain.DevStages {
		stageOptions = append(stageOptions, huh.NewOption(string(s), s))
	}

	fields := append(v.fields(presets), huh.NewSelect[domain.DevStage]().
		Title("Dev stage").
		Options(stageOptions...).
		Value(&v.stage))

	return NewActionForm(func() error {
		app, err := dashboard.Apps.CreateApp(context.Background(), services.CreateAppParams{
			Command:     v.command,
			Description: v.description,
			DevStage:    v.stage,
			Name:        v.name,
			Path:        config.ExpandPath(strings.TrimSpace(v.path)),
			TechStack:   v.techStack(),
		})
		if err == nil && app != nil && onCreated != nil {
			onCreated(app)
		}
		return err
	}, huh.NewGroup(fields...))
}

// NewEditAppForm builds the dialog content for editing an app
func NewEditAppForm(dashboard *services.Dashboard, presets []string, app domain.App) *ActionForm {
	v := &appFormValues{
		command:     app.Command,
		description: app.Description,
		name:        app.Name,
		path:        app.Path,
		stack:       slices.Clone(app.TechStack),
		testCommand: app.TestInfo.TestCommand,
	}

	fields := append(v.fields(presets), huh.NewInput().Title("Test command").Value(&v.testCommand))

	return NewActionForm(func() error {
		stack := v.techStack()
		path := config.ExpandPath(strings.TrimSpace(v.path))
		ctx := context.Background()
		if _, err := dashboard.Apps.UpdateApp(ctx, app.ID, domain.AppPatch{
			Command:     &v.command,
			Description: &v.description,
			Name:        &v.name,
			Path:        &path,
			TechStack:   &stack,
		}); err != nil {
			return err
		}
		if v.testCommand == app.TestInfo.TestCommand {
			return nil
		}
		_, err := dashboard.Apps.UpdateTestInfo(ctx, app.ID, domain.TestInfoPatch{TestCommand: &v.testCommand})
		return err
	}, huh.NewGroup(fields...))
}

// NewSuggestNamesForm asks for a description and lets the user pick a suggested name.
// The dialog built by next from the chosen name opens afterwards.
func NewSuggestNamesForm(dashboard *services.Dashboard, next func(name string) (string, tea.Model)) *ActionForm {
	var description, picked string

	var form *ActionForm
	form = NewActionForm(func() error {
		if picked == "" {
			return errors.New("no name suggestion picked")
		}
		form.Followup = func() (string, tea.Model) { return next(picked) }
		return nil
	},
		huh.NewGroup(
			huh.NewInput().
				Title("What does the app do?").
				Description("Names are suggested from this description").
				Value(&description),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick a name").
				OptionsFunc(func() []huh.Option[string] {
					names, err := dashboard.SuggestNames(context.Background(), description)
					if err != nil || len(names) == 0 {
						return []huh.Option[string]{}
					}
					return huh.NewOptions(names...)
				}, &description).
				Value(&picked),
		),
	)
	return form
}

// NewReleaseForm edits version, release notes and build settings of a deployed app
func NewReleaseForm(dashboard *services.Dashboard, app domain.App) *ActionForm {
	info := app.DeploymentInfo
	version, notes := info.Version, info.ReleaseNotes
	buildCommand, outputPath := info.BuildCommand, info.BuildOutputPath
	target, deployCommand, commit := info.DeploymentTarget, info.DeploymentCommand, info.GitCommitHash

	return NewActionForm(func() error {
		_, err := dashboard.Apps.UpdateDeploymentInfo(context.Background(), app.ID, domain.DeploymentInfoPatch{
			BuildCommand:      &buildCommand,
			BuildOutputPath:   &outputPath,
			DeploymentCommand: &deployCommand,
			DeploymentTarget:  &target,
			GitCommitHash:     &commit,
			ReleaseNotes:      &notes,
			Version:           &version,
		})
		return err
	},
		huh.NewGroup(
			huh.NewInput().Title("Version").Value(&version),
			huh.NewText().Title("Release notes").Description("Required before deploying").Value(&notes).Lines(5),
			huh.NewInput().Title("Git commit").Value(&commit),
		),
		huh.NewGroup(
			huh.NewInput().Title("Build command").Value(&buildCommand),
			huh.NewInput().Title("Build output path").Value(&outputPath),
			huh.NewInput().Title("Deployment target").Value(&target),
			huh.NewInput().Title("Deployment command").Value(&deployCommand),
		),
	)
}

// NewMetricsForm edits the usage counters; invalid input is stored as 0
func NewMetricsForm(dashboard *services.Dashboard, app domain.App) *ActionForm {
	dbCalls := strconv.Itoa(app.Metrics.DBCalls)
	apiUsage := strconv.Itoa(app.Metrics.APIUsage)

	return NewActionForm(func() error {
		db := domain.ParseMetricValue(dbCalls)
		api := domain.ParseMetricValue(apiUsage)
		_, err := dashboard.Apps.UpdateMetrics(context.Background(), app.ID, domain.MetricsPatch{APIUsage: &api, DBCalls: &db})
		return err
	},
		huh.NewGroup(
			huh.NewInput().Title("DB calls").Value(&dbCalls),
			huh.NewInput().Title("API usage").Value(&apiUsage),
		),
	)
}

// NewBugForm adds a bug with a priority
func NewBugForm(dashboard *services.Dashboard, appID string) *ActionForm {
	var text string
	priority := domain.PriorityMedium

	options := make([]huh.Option[domain.BugPriority], 0, len(domain.BugPriorities))
	for _, p := range domain.BugPriorities {
		options = append(options, huh.NewOption(string(p), p))
	}

	return NewActionForm(func() error {
		_, err := dashboard.Apps.AddBug(context.Background(), appID, text, priority)
		return err
	},
		huh.NewGroup(
			huh.NewInput().Title("Bug").Value(&text).Validate(requireText("bug description")),
			huh.NewSelect[domain.BugPriority]().Title("Priority").Options(options...).Value(&priority),
		),
	)
}

// NewLinkForm adds a link to an app
func NewLinkForm(dashboard *services.Dashboard, appID string) *ActionForm {
	var link domain.LinkItem

	return NewActionForm(func() error {
		_, err := dashboard.Apps.AddLink(context.Background(), appID, link)
		return err
	},
		huh.NewGroup(
			huh.NewInput().Title("URL").Value(&link.URL).Validate(requireText("url")),
			huh.NewInput().Title("Label").Description("Defaults to the url").Value(&link.Label),
			huh.NewInput().Title("Icon").Value(&link.Icon),
		),
	)
}

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"

	"github.com/renato0307/appdeck/internal/domain"
)

// AppsIdeasCmd shows or replaces the planning ideas
type AppsIdeasCmd struct {
	App string  `arg:"" help:"App id or name"`
	Set *string `help:"Replace the ideas text"`
}

// Run executes the ideas command
func (a *AppsIdeasCmd) Run(cli *CLI) error {
	app, err := resolveApp(cli.Container.Dashboard, a.App)
	if err != nil {
		return err
	}
	if a.Set == nil {
		fmt.Fprintln(cli.out(), app.Ideas)
		return nil
	}

	if _, err := cli.Container.Dashboard.Apps.SetIdeas(context.Background(), app.ID, *a.Set); err != nil {
		return fmt.Errorf("failed to save ideas: %w", err)
	}
	fmt.Fprintf(cli.out(), "Ideas of '%s' saved\n", app.Name)
	return nil
}

// AppsDocsCmd shows or replaces the markdown documentation
type AppsDocsCmd struct {
	App  string  `arg:"" help:"App id or name"`
	File string  `help:"Read the new documentation from a markdown file" type:"existingfile"`
	Raw  bool    `help:"Print the markdown source instead of rendering it"`
	Set  *string `help:"Replace the documentation text"`
}

// Run executes the docs command
func (a *AppsDocsCmd) Run(cli *CLI) error {
	app, err := resolveApp(cli.Container.Dashboard, a.App)
	if err != nil {
		return err
	}

	doc := a.Set
	if a.File != "" {
		data, err := os.ReadFile(a.File)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", a.File, err)
		}
		text := string(data)
		doc = &text
	}

	if doc == nil {
		return printMarkdown(cli, app.Documentation, a.Raw)
	}

	if _, err := cli.Container.Dashboard.Apps.SetDocumentation(context.Background(), app.ID, *doc); err != nil {
		return fmt.Errorf("failed to save documentation: %w", err)
	}
	fmt.Fprintf(cli.out(), "Documentation of '%s' saved\n", app.Name)
	return nil
}

func printMarkdown(cli *CLI, markdown string, raw bool) error {
	if raw {
		fmt.Fprintln(cli.out(), markdown)
		return nil
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	rendered, err := r.Render(markdown)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	fmt.Fprint(cli.out(), rendered)
	return nil
}

// AppsReleaseCmd edits release and build settings
type AppsReleaseCmd struct {
	App               string  `arg:"" help:"App id or name"`
	BuildCommand      *string `help:"Build command"`
	BuildOutputPath   *string `help:"Build output path"`
	Commit            *string `help:"Git commit hash of the release"`
	DeploymentCommand *string `help:"Deployment command"`
	Notes             *string `help:"Release notes" short:"n"`
	Tag               *string `help:"Release version, e.g. v1.2.0" short:"v"`
	Target            *string `help:"Deployment target"`
}

// Run executes the release command
func (a *AppsReleaseCmd) Run(cli *CLI) error {
	app, err := resolveApp(cli.Container.Dashboard, a.App)
	if err != nil {
		return err
	}

	patch := domain.DeploymentInfoPatch{
		BuildCommand:      a.BuildCommand,
		BuildOutputPath:   a.BuildOutputPath,
		DeploymentCommand: a.DeploymentCommand,
		DeploymentTarget:  a.Target,
		GitCommitHash:     a.Commit,
		ReleaseNotes:      a.Notes,
		Version:           a.Tag,
	}
	if patch == (domain.DeploymentInfoPatch{}) {
		return printStructured(cli.out(), "yaml", app.DeploymentInfo)
	}

	if app, err = cli.Container.Dashboard.Apps.UpdateDeploymentInfo(context.Background(), app.ID, patch); err != nil {
		return fmt.Errorf("failed to update release: %w", err)
	}
	fmt.Fprintf(cli.out(), "Release info of '%s' updated\n", app.Name)
	printReadiness(cli, domain.CheckDeployReadiness(*app))
	return nil
}

// AppsMetricsCmd sets the usage counters
type AppsMetricsCmd struct {
	APIUsage *string `help:"API usage counter" name:"api-usage"`
	App      string  `arg:"" help:"App id or name"`
	DBCalls  *string `help:"DB call counter" name:"db-calls"`
}

// Run executes the metrics command
func (a *AppsMetricsCmd) Run(cli *CLI) error {
	app, err := resolveApp(cli.Container.Dashboard, a.App)
	if err != nil {
		return err
	}

	var patch domain.MetricsPatch
	if a.APIUsage != nil {
		v := domain.ParseMetricValue(*a.APIUsage)
		patch.APIUsage = &v
	}
	if a.DBCalls != nil {
		v := domain.ParseMetricValue(*a.DBCalls)
		patch.DBCalls = &v
	}

	if patch.APIUsage != nil || patch.DBCalls != nil {
		if app, err = cli.Container.Dashboard.Apps.UpdateMetrics(context.Background(), app.ID, patch); err != nil {
			return fmt.Errorf("failed to update metrics: %w", err)
		}
	}
	fmt.Fprintf(cli.out(), "DB calls: %d\nAPI usage: %d\n", app.Metrics.DBCalls, app.Metrics.APIUsage)
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/appdeck/internal/config"
	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/logging"
	"github.com/renato0307/appdeck/internal/services"
)

// AppsCmd manages apps
type AppsCmd struct {
	Add          AppsAddCmd          `cmd:"add" help:"Add a new app"`
	Blocker      AppsBlockerCmd      `cmd:"blocker" help:"Track blockers of an app"`
	Bug          AppsBugCmd          `cmd:"bug" help:"Track bugs of an app"`
	Build        AppsBuildCmd        `cmd:"build" help:"Simulate a build (Deployed stage)"`
	Del          AppsDelCmd          `cmd:"del" help:"Delete an app"`
	Deploy       AppsDeployCmd       `cmd:"deploy" help:"Simulate a production deploy (Deployed stage)"`
	Docs         AppsDocsCmd         `cmd:"docs" help:"Show or set the markdown documentation"`
	Edit         AppsEditCmd         `cmd:"edit" help:"Edit app fields"`
	Ideas        AppsIdeasCmd        `cmd:"ideas" help:"Show or set planning ideas"`
	Link         AppsLinkCmd         `cmd:"link" help:"Manage app links"`
	List         AppsListCmd         `cmd:"list" help:"List all apps" default:"1"`
	Logs         AppsLogsCmd         `cmd:"logs" help:"Show the app log"`
	Metrics      AppsMetricsCmd      `cmd:"metrics" help:"Set DB call and API usage counters"`
	Readiness    AppsReadinessCmd    `cmd:"readiness" help:"Show the deploy checklist"`
	Release      AppsReleaseCmd      `cmd:"release" help:"Edit version, release notes and build settings"`
	Stage        AppsStageCmd        `cmd:"stage" help:"Change the dev stage"`
	Start        AppsStartCmd        `cmd:"start" help:"Mark an app as running"`
	Stop         AppsStopCmd         `cmd:"stop" help:"Mark an app as stopped"`
	SuggestNames AppsSuggestNamesCmd `cmd:"suggest-names" help:"Suggest app names for a description"`
	Test         AppsTestCmd         `cmd:"test" help:"Simulate a test run (Development stage)"`
	Todo         AppsTodoCmd         `cmd:"todo" help:"Track todos of an app"`
	View         AppsViewCmd         `cmd:"view" help:"View a specific app"`
}

// AppsListCmd lists all apps
type AppsListCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

// Run executes the list command
func (a *AppsListCmd) Run(cli *CLI) error {
	apps := cli.Container.Dashboard.Apps.List()
	if a.Format != "table" {
		return printStructured(cli.out(), a.Format, apps)
	}

	w := tabwriter.NewWriter(cli.out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tSTAGE\tTECH STACK\tOPEN TODOS\tDEPLOYABLE")
	for _, app := range apps {
		fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\t%s\t%d\t%s\n",
			app.ID,
			app.Name,
			app.Status.Symbol(),
			app.Status,
			app.DevStage,
			strings.Join(app.TechStack, ", "),
			domain.OpenCount(app.Todos),
			checkmark(app.DevStage == domain.StageDeployed && domain.CanDeploy(app)))
	}
	w.Flush()

	sum := cli.Container.Dashboard.Summary()
	fmt.Fprintf(cli.out(), "\nTotal: %d apps (%d running, %d ready to deploy)\n", sum.Apps, sum.Running, sum.Deployable)
	return nil
}

// AppsAddCmd adds a new app
type AppsAddCmd struct {
	Command     string   `help:"Command that runs the app"`
	Description string   `help:"Short description" short:"m"`
	Links       []string `help:"Links as url or label=url" name:"link"`
	Name        string   `arg:"" help:"Name of the app"`
	Path        string   `help:"Local path of the project"`
	Stage       string   `help:"Initial dev stage (Planning, Development, Deployed)" default:"Planning"`
	TechStack   string   `help:"Comma-separated tech stack" short:"t"`
}

// Run executes the add command
func (a *AppsAddCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing apps add command", "name", a.Name)

	stage, err := domain.ParseDevStage(a.Stage)
	if err != nil {
		return err
	}

	links := make([]domain.LinkItem, 0, len(a.Links))
	for _, raw := range a.Links {
		links = append(links, parseLinkFlag(raw))
	}

	app, err := cli.Container.Dashboard.Apps.CreateApp(context.Background(), services.CreateAppParams{
		Command:     a.Command,
		Description: a.Description,
		DevStage:    stage,
		Links:       links,
		Name:        a.Name,
		Path:        config.ExpandPath(a.Path),
		TechStack:   []string{a.TechStack},
	})
	if err != nil {
		return fmt.Errorf("failed to add app: %w", err)
	}
	if app == nil {
		fmt.Fprintln(cli.out(), "Nothing to add: name is empty")
		return nil
	}

	fmt.Fprintf(cli.out(), "App '%s' added (id: %s)\n", app.Name, app.ID)
	return nil
}

// parseLinkFlag splits label=url; a bare url is its own label
func parseLinkFlag(raw string) domain.LinkItem {
	label, url, found := strings.Cut(raw, "=")
	if !found {
		return domain.LinkItem{Label: raw, URL: raw}
	}
	return domain.LinkItem{Label: label, URL: url}
}

// AppsViewCmd shows one app
type AppsViewCmd struct {
	App    string `arg:"" help:"App id or name"`
	Format string `help:"Output format: text, json or yaml" enum:"text,json,yaml" default:"text"`
}

// Run executes the view command
func (a *AppsViewCmd) Run(cli *CLI) error {
	app, err := resolveApp(cli.Container.Dashboard, a.App)
	if err != nil {
		return err
	}
	if a.Format != "text" {
		return printStructured(cli.out(), a.Format, app)
	}

	out := cli.out()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%s\n", app.ID)
	fmt.Fprintf(w, "Name:\t%s\n", app.Name)
	fmt.Fprintf(w, "Description:\t%s\n", app.Description)
	fmt.Fprintf(w, "Status:\t%s %s\n", app.Status.Symbol(), app.Status)
	fmt.Fprintf(w, "Dev stage:\t%s\n", app.DevStage)
	fmt.Fprintf(w, "Path:\t%s\n", app.Path)
	fmt.Fprintf(w, "Command:\t%s\n", app.Command)
	fmt.Fprintf(w, "Tech stack:\t%s\n", strings.Join(app.TechStack, ", "))
	w.Flush()

	if len(app.Links) > 0 {
		fmt.Fprintln(out, "\nLinks:")
		for _, l := range app.Links {
			fmt.Fprintf(out, "  %s %s (%s)\n", l.Icon, l.Label, l.URL)
		}
	}

	for _, section := range domain.SectionsFor(app.DevStage) {
		printSection(cli, app, section)
	}

	fmt.Fprintf(out, "\nLog entries: %d (appdeck apps logs %s)\n", len(app.Logs), app.ID)
	return nil
}

func printSection(cli *CLI, app *domain.App, section domain.Section) {
	out := cli.out()
	switch section {
	case domain.SectionIdeas:
		fmt.Fprintln(out, "\nIdeas:")
		fmt.Fprintln(out, indent(app.Ideas))
	case domain.SectionTracking:
		fmt.Fprintf(out, "\nTodos (%d open):\n", domain.OpenCount(app.Todos))
		for _, t := range app.Todos {
			fmt.Fprintf(out, "  [%s] %s  %s\n", box(t.Completed), t.ID, t.Text)
		}
		fmt.Fprintln(out, "Blockers:")
		for _, b := range app.Blockers {
			fmt.Fprintf(out, "  [%s] %s  %s\n", box(b.Resolved), b.ID, b.Text)
		}
		fmt.Fprintln(out, "Bugs:")
		for _, b := range app.Bugs {
			fmt.Fprintf(out, "  [%s] %s  (%s) %s\n", box(b.Resolved), b.ID, b.Priority, b.Text)
		}
	case domain.SectionDocumentation:
		fmt.Fprintf(out, "\nDocumentation: %d characters (appdeck apps docs %s)\n", len(app.Documentation), app.ID)
	case domain.SectionTesting:
		coverage := "n/a"
		if app.TestInfo.Coverage != nil {
			coverage = fmt.Sprintf("%d%%", *app.TestInfo.Coverage)
		}
		fmt.Fprintln(out, "\nTesting:")
		fmt.Fprintf(out, "  Command: %s\n  Last run: %s\n  Coverage: %s\n",
			app.TestInfo.TestCommand, optionalBool(app.TestInfo.LastTestSuccess), coverage)
	case domain.SectionBuild:
		fmt.Fprintln(out, "\nBuild:")
		fmt.Fprintf(out, "  Command: %s\n  Output: %s\n  Last build: %s\n",
			app.DeploymentInfo.BuildCommand, app.DeploymentInfo.BuildOutputPath, optionalBool(app.DeploymentInfo.LastBuildSuccess))
	case domain.SectionDeploy:
		fmt.Fprintln(out, "\nDeploy:")
		fmt.Fprintf(out, "  Version: %s\n  Target: %s\n", app.DeploymentInfo.Version, app.DeploymentInfo.DeploymentTarget)
		if app.DeploymentInfo.LastDeploymentTime != nil {
			fmt.Fprintf(out, "  Last deployed: %s\n", app.DeploymentInfo.LastDeploymentTime.Format("2006-01-02 15:04:05"))
		}
		fmt.Fprintln(out, "  Release notes:")
		fmt.Fprintln(out, indent(app.DeploymentInfo.ReleaseNotes))
		printReadiness(cli, domain.CheckDeployReadiness(*app))
	case domain.SectionMetrics:
		fmt.Fprintln(out, "\nMetrics:")
		fmt.Fprintf(out, "  DB calls: %d\n  API usage: %d\n", app.Metrics.DBCalls, app.Metrics.APIUsage)
	}
}

func box(done bool) string {
	if done {
		return "x"
	}
	return " "
}

func indent(text string) string {
	if strings.TrimSpace(text) == "" {
		return "    (empty)"
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	return strings.Join(lines, "\n")
}

// AppsEditCmd edits top-level app fields
type AppsEditCmd struct {
	App         string  `arg:"" help:"App id or name"`
	Command     *string `help:"Command that runs the app"`
	Description *string `help:"Short description" short:"m"`
	Name        *string `help:"New name (blank is ignored)"`
	Path        *string `help:"Local path of the project"`
	TechStack   *string `help:"Comma-separated tech stack" short:"t"`
	TestCommand *string `help:"Command that runs the tests"`
}

// Run executes the edit command
func (a *AppsEditCmd) Run(cli *CLI) error {
	ctx := context.Background()
	app, err := resolveApp(cli.Container.Dashboard, a.App)
	if err != nil {
		return err
	}

	patch := domain.AppPatch{
		Command:     a.Command,
		Description: a.Description,
		Name:        a.Name,
	}
	if a.Path != nil {
		path := config.ExpandPath(*a.Path)
		patch.Path = &path
	}
	if a.TechStack != nil {
		stack := []string{*a.TechStack}
		patch.TechStack = &stack
	}

	if patch.IsEmpty() && a.TestCommand == nil {
		fmt.Fprintln(cli.out(), "Nothing to change")
		return nil
	}

	if !patch.IsEmpty() {
		if app, err = cli.Container.Dashboard.Apps.UpdateApp(ctx, app.ID, patch); err != nil {
			return fmt.Errorf("failed to update app: %w", err)
		}
	}
	if a.TestCommand != nil {
		cmd := strings.TrimSpace(*a.TestCommand)
		if app, err = cli.Container.Dashboard.Apps.UpdateTestInfo(ctx, app.ID, domain.TestInfoPatch{TestCommand: &cmd}); err != nil {
			return fmt.Errorf("failed to update test command: %w", err)
		}
	}

	fmt.Fprintf(cli.out(), "App '%s' updated\n", app.Name)
	return nil
}

// AppsDelCmd deletes an app
type AppsDelCmd struct {
	App   string `arg:"" help:"App id or name"`
	Force bool   `help:"Force deletion without confirmation" short:"f"`
}

// Run executes the del command
func (a *AppsDelCmd) Run(cli *CLI) error {
	app, err := resolveApp(cli.Container.Dashboard, a.App)
	if err != nil {
		return err
	}

	logging.Logger.Info("Executing apps del command", "app", app.ID, "force", a.Force)
	deleted, err := cli.Container.Dashboard.Apps.DeleteApp(context.Background(), app.ID,
		confirmer(cli, a.Force))
	if err != nil {
		return fmt.Errorf("failed to delete app: %w", err)
	}
	if deleted {
		fmt.Fprintf(cli.out(), "App '%s' deleted successfully\n", app.Name)
	}
	return nil
}

// AppsSuggestNamesCmd prints name suggestions
type AppsSuggestNamesCmd struct {
	Description string `arg:"" optional:"" help:"What the app does"`
}

// Run executes the suggest-names command
func (a *AppsSuggestNamesCmd) Run(cli *CLI) error {
	names, err := cli.Container.Dashboard.SuggestNames(context.Background(), a.Description)
	if err != nil {
		return fmt.Errorf("failed to suggest names: %w", err)
	}
	for _, n := range names {
		fmt.Fprintln(cli.out(), n)
	}
	return nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/logging"
)

// AppsStartCmd marks an app as running
type AppsStartCmd struct {
	App string `arg:"" help:"App id or name"`
}

// Run executes the start command
func (a *AppsStartCmd) Run(cli *CLI) error {
	app, err := resolveApp(cli.Container.Dashboard, a.App)
	if err != nil {
		return err
	}
	if app, err = cli.Container.Dashboard.Apps.Start(context.Background(), app.ID); err != nil {
		return fmt.Errorf("failed to start app: %w", err)
	}
	fmt.Fprintf(cli.out(), "%s %s is %s\n", app.Status.Symbol(), app.Name, app.Status)
	return nil
}

// AppsStopCmd marks an app as stopped
type AppsStopCmd struct {
	App string `arg:"" help:"App id or name"`
}

// Run executes the stop command
func (a *AppsStopCmd) Run(cli *CLI) error {
	app, err := resolveApp(cli.Container.Dashboard, a.App)
	if err != nil {
		return err
	}
	if app, err = cli.Container.Dashboard.Apps.Stop(context.Background(), app.ID); err != nil {
		return fmt.Errorf("failed to stop app: %w", err)
	}
	fmt.Fprintf(cli.out(), "%s %s is %s\n", app.Status.Symbol(), app.Name, app.Status)
	return nil
}

// AppsLogsCmd prints the app log, oldest first
type AppsLogsCmd struct {
	App  string `arg:"" help:"App id or name"`
	Tail int    `help:"Only show the last N entries (0 = all)" short:"n" default:"0"`
}

// Run executes the logs command
func (a *AppsLogsCmd) Run(cli *CLI) error {
	app, err := resolveApp(cli.Container.Dashboard, a.App)
	if err != nil {
		return err
	}
	logs, err := cli.Container.Dashboard.Apps.Logs(app.ID)
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		fmt.Fprintln(cli.out(), "No log entries yet")
		return nil
	}

	start := 0
	if a.Tail > 0 && a.Tail < len(logs) {
		start = len(logs) - a.Tail
	}
	for i := start; i < len(logs); i++ {
		fmt.Fprintf(cli.out(), "%4d  %s\n", i+1, logs[i])
	}
	return nil
}

// AppsStageCmd changes the dev stage
type AppsStageCmd struct {
	App   string `arg:"" help:"App id or name"`
	Stage string `arg:"" optional:"" help:"Planning, Development or Deployed (default: next stage)"`
}

// Run executes the stage command
func (a *AppsStageCmd) Run(cli *CLI) error {
	app, err := resolveApp(cli.Container.Dashboard, a.App)
	if err != nil {
		return err
	}

	stage := app.DevStage.Next()
	if a.Stage != "" {
		if stage, err = domain.ParseDevStage(a.Stage); err != nil {
			return err
		}
	}

	if app, err = cli.Container.Dashboard.Apps.SetDevStage(context.Background(), app.ID, stage); err != nil {
		return fmt.Errorf("failed to change dev stage: %w", err)
	}
	fmt.Fprintf(cli.out(), "App '%s' is now in %s\n", app.Name, app.DevStage)
	return nil
}

// AppsTestCmd simulates a test run
type AppsTestCmd struct {
	App string `arg:"" help:"App id or name"`
}

// Run executes the test command
func (a *AppsTestCmd) Run(cli *CLI) error {
	app, err := resolveApp(cli.Container.Dashboard, a.App)
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out(), "Running %q for %s...\n", app.TestInfo.TestCommand, app.Name)
	result, err := cli.Container.Dashboard.Apps.RunTests(context.Background(), app.ID)
	if err != nil {
		return fmt.Errorf("failed to run tests: %w", err)
	}

	if result.Success {
		fmt.Fprintf(cli.out(), "Tests passed (coverage %d%%)\n", *result.App.TestInfo.Coverage)
	} else {
		fmt.Fprintln(cli.out(), "Tests failed")
	}
	return nil
}

// AppsBuildCmd simulates a build
type AppsBuildCmd struct {
	App string `arg:"" help:"App id or name"`
}

// Run executes the build command
func (a *AppsBuildCmd) Run(cli *CLI) error {
	app, err := resolveApp(cli.Container.Dashboard, a.App)
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out(), "Building %s with %q...\n", app.Name, app.DeploymentInfo.BuildCommand)
	result, err := cli.Container.Dashboard.Apps.Build(context.Background(), app.ID)
	if err != nil {
		return fmt.Errorf("failed to build: %w", err)
	}

	if result.Success {
		fmt.Fprintf(cli.out(), "Build succeeded (output: %s)\n", result.App.DeploymentInfo.BuildOutputPath)
	} else {
		fmt.Fprintln(cli.out(), "Build failed")
	}
	return nil
}

// AppsDeployCmd simulates a production deploy
type AppsDeployCmd struct {
	App string `arg:"" help:"App id or name"`
}

// Run executes the deploy command
func (a *AppsDeployCmd) Run(cli *CLI) error {
	app, err := resolveApp(cli.Container.Dashboard, a.App)
	if err != nil {
		return err
	}

	deployed, err := cli.Container.Dashboard.Apps.Deploy(context.Background(), app.ID)
	if errors.Is(err, domain.ErrDeployNotReady) {
		logging.Logger.Info("Deploy refused", "app", app.ID, "error", err)
		printReadiness(cli, domain.CheckDeployReadiness(*app))
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to deploy: %w", err)
	}

	fmt.Fprintf(cli.out(), "Deployed %s %s to %s\n", deployed.Name,
		deployed.DeploymentInfo.Version, deployed.DeploymentInfo.DeploymentTarget)
	return nil
}

// AppsReadinessCmd prints the deploy checklist
type AppsReadinessCmd struct {
	App string `arg:"" help:"App id or name"`
}

// Run executes the readiness command
func (a *AppsReadinessCmd) Run(cli *CLI) error {
	app, err := resolveApp(cli.Container.Dashboard, a.App)
	if err != nil {
		return err
	}
	readiness, err := cli.Container.Dashboard.Apps.Readiness(app.ID)
	if err != nil {
		return err
	}
	printReadiness(cli, readiness)
	return nil
}

func printReadiness(cli *CLI, r domain.DeployReadiness) {
	out := cli.out()
	fmt.Fprintln(out, "  Deploy checklist:")
	fmt.Fprintf(out, "    [%s] all todos completed\n", box(r.AllTodosCompleted))
	fmt.Fprintf(out, "    [%s] release notes written\n", box(r.ReleaseNotesPresent))
	fmt.Fprintf(out, "    [%s] last build succeeded\n", box(r.LastBuildSucceeded))
	if r.CanDeploy() {
		fmt.Fprintln(out, "  Ready to deploy")
	} else {
		fmt.Fprintln(out, "  Not ready to deploy")
	}
}

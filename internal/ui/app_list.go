package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/ports"
	"github.com/renato0307/appdeck/internal/theme"
)

// selectedApp returns the app under the cursor of the apps tab
func (m *Model) selectedApp() (domain.App, bool) {
	apps := m.dashboard.Apps.List()
	if len(apps) == 0 {
		return domain.App{}, false
	}
	return apps[min(m.cursors[tabApps], len(apps)-1)], true
}

func (m *Model) renderApps() string {
	apps := m.dashboard.Apps.List()
	if len(apps) == 0 {
		return theme.MutedStyle.Render("No apps yet. Press n to add one.") + "\n"
	}

	var b strings.Builder
	header := fmt.Sprintf("   %-28s %-12s %-30s %s", "NAME", "STAGE", "TECH STACK", "TODOS")
	b.WriteString(theme.HelpLabelStyle.Render(header) + "\n")

	for i, app := range apps {
		icon := theme.StoppedIconStyle.Render(app.Status.Symbol())
		if app.Status == domain.StatusRunning {
			icon = theme.RunningIconStyle.Render(app.Status.Symbol())
		}

		ready := ""
		if app.DevStage == domain.StageDeployed && domain.CanDeploy(app) {
			ready = theme.SuccessStyle.Render(" ✓")
		}

		name := fmt.Sprintf("%-28s", truncate(app.Name, 28))
		stage := theme.StageStyle(string(app.DevStage)).Render(fmt.Sprintf("%-12s", app.DevStage))
		stack := fmt.Sprintf("%-30s", truncate(strings.Join(app.TechStack, ", "), 30))
		todos := fmt.Sprintf("%d", domain.OpenCount(app.Todos))

		if i == m.cursors[tabApps] {
			name = theme.SelectedStyle.Render(name)
		} else {
			name = theme.NormalStyle.Render(name)
		}
		fmt.Fprintf(&b, " %s %s %s %s %s%s\n", icon, name, stage, theme.MutedStyle.Render(stack), todos, ready)
	}
	return b.String()
}

// truncate shortens s to n runes, ending with "…"
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func (m *Model) handleAppsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Items.New.Binding):
		return m.openDialog("New App", m.createAppForm(""))
	case key.Matches(msg, m.keys.Apps.SuggestNames.Binding):
		return m.openDialog("Suggest App Names", NewSuggestNamesForm(m.dashboard, func(name string) (string, tea.Model) {
			return "New App", m.createAppForm(name)
		}))
	}

	app, ok := m.selectedApp()
	if !ok {
		return nil
	}
	if key.Matches(msg, m.keys.Navigation.Open.Binding) {
		m.detailsAppID = app.ID
		m.itemCursor = 0
		m.tracking = domain.TrackTodos
		m.state = stateDetails
		return nil
	}
	cmd, _ := m.handleAppAction(app, msg)
	return cmd
}

func (m *Model) createAppForm(name string) *ActionForm {
	return NewCreateAppForm(m.dashboard, m.opts.TechStackPresets, name, func(app *domain.App) {
		m.cursors[tabApps] = 0
		m.showNotice("App '%s' added", app.Name)
	})
}

// notAllowed builds the error shown when an action is gated by the dev stage
func notAllowed(action string, stage domain.DevStage) error {
	return fmt.Errorf("%w: %s is not available in %s", domain.ErrActionNotAllowed, action, stage)
}

// handleAppAction runs the key on app. It is shared by the list and details views.
func (m *Model) handleAppAction(app domain.App, msg tea.KeyMsg) (tea.Cmd, bool) {
	ctx := context.Background()
	svc := m.dashboard.Apps

	switch {
	case key.Matches(msg, m.keys.Apps.ActionPalette.Binding):
		m.paletteAppID = app.ID
		return m.openDialog(fmt.Sprintf("Actions: %s", app.Name), NewActionPalette(app, &m.keys)), true

	case key.Matches(msg, m.keys.Items.Edit.Binding):
		return m.openDialog("Edit App", NewEditAppForm(m.dashboard, m.opts.TechStackPresets, app)), true

	case key.Matches(msg, m.keys.Items.Delete.Binding):
		form := NewConfirmForm(
			fmt.Sprintf("Delete app '%s'?", app.Name),
			"Todos, blockers, bugs, links and logs are removed too.",
			func(c ports.Confirmer) error {
				deleted, err := svc.DeleteApp(ctx, app.ID, c)
				if deleted {
					m.dialogReturn = stateList
					m.showNotice("App '%s' deleted", app.Name)
				}
				return err
			})
		return m.openDialog("Delete App", form), true

	case key.Matches(msg, m.keys.Apps.StartStop.Binding):
		var (
			updated *domain.App
			err     error
		)
		if app.Status == domain.StatusRunning {
			updated, err = svc.Stop(ctx, app.ID)
		} else {
			updated, err = svc.Start(ctx, app.ID)
		}
		if err != nil {
			return m.showError(err), true
		}
		m.showNotice("%s %s is %s", updated.Status.Symbol(), updated.Name, updated.Status)
		return nil, true

	case key.Matches(msg, m.keys.Apps.Logs.Binding):
		return m.openDialog(fmt.Sprintf("Logs: %s", app.Name), NewLogViewer(app, &m.keys, m.showTimestamps)), true

	case key.Matches(msg, m.keys.Apps.NextStage.Binding):
		updated, err := svc.SetDevStage(ctx, app.ID, app.DevStage.Next())
		if err != nil {
			return m.showError(err), true
		}
		m.itemCursor = 0
		m.showNotice("App '%s' is now in %s", updated.Name, updated.DevStage)
		return nil, true

	case key.Matches(msg, m.keys.Apps.RunTests.Binding):
		result, err := svc.RunTests(ctx, app.ID)
		if err != nil {
			return m.showError(err), true
		}
		if !result.Success {
			return m.showError(errors.New("tests failed")), true
		}
		m.showNotice("Tests passed (coverage %d%%)", *result.App.TestInfo.Coverage)
		return nil, true

	case key.Matches(msg, m.keys.Apps.Build.Binding):
		result, err := svc.Build(ctx, app.ID)
		if err != nil {
			return m.showError(err), true
		}
		if !result.Success {
			return m.showError(errors.New("build failed")), true
		}
		m.showNotice("Build succeeded (output: %s)", result.App.DeploymentInfo.BuildOutputPath)
		return nil, true

	case key.Matches(msg, m.keys.Apps.Deploy.Binding):
		updated, err := svc.Deploy(ctx, app.ID)
		if err != nil {
			return m.showError(err), true
		}
		m.showNotice("Deployed %s %s", updated.Name, updated.DeploymentInfo.Version)
		return nil, true

	case key.Matches(msg, m.keys.Apps.Release.Binding):
		if !domain.IsActionAllowed(app.DevStage, domain.ActionEditRelease) {
			return m.showError(notAllowed("editing the release", app.DevStage)), true
		}
		return m.openDialog(fmt.Sprintf("Release: %s", app.Name), NewReleaseForm(m.dashboard, app)), true

	case key.Matches(msg, m.keys.Apps.Metrics.Binding):
		if !domain.IsActionAllowed(app.DevStage, domain.ActionEditMetrics) {
			return m.showError(notAllowed("editing metrics", app.DevStage)), true
		}
		return m.openDialog(fmt.Sprintf("Metrics: %s", app.Name), NewMetricsForm(m.dashboard, app)), true

	case key.Matches(msg, m.keys.Apps.AddLink.Binding):
		return m.openDialog(fmt.Sprintf("Add Link: %s", app.Name), NewLinkForm(m.dashboard, app.ID)), true

	case key.Matches(msg, m.keys.Apps.Write.Binding):
		return m.openWriteForm(app), true
	}
	return nil, false
}

// openWriteForm edits the free text of the stage: ideas, docs or release notes
func (m *Model) openWriteForm(app domain.App) tea.Cmd {
	ctx := context.Background()
	switch app.DevStage {
	case domain.StagePlanning:
		return m.openDialog(fmt.Sprintf("Ideas: %s", app.Name), NewTextAreaForm("Ideas", "Free-form planning notes", app.Ideas, func(text string) error {
			_, err := m.dashboard.Apps.SetIdeas(ctx, app.ID, text)
			return err
		}))
	case domain.StageDevelopment:
		return m.openDialog(fmt.Sprintf("Documentation: %s", app.Name), NewTextAreaForm("Documentation", "Markdown", app.Documentation, func(text string) error {
			_, err := m.dashboard.Apps.SetDocumentation(ctx, app.ID, text)
			return err
		}))
	}
	return m.openDialog(fmt.Sprintf("Release: %s", app.Name), NewReleaseForm(m.dashboard, app))
}

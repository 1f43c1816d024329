package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/appdeck/internal/adapters/random"
	"github.com/renato0307/appdeck/internal/domain"
	portsmocks "github.com/renato0307/appdeck/internal/ports/mocks"
)

func newAppService(t *testing.T, opts ...Option) *AppService {
	t.Helper()
	svc := NewAppService(newMemoryStore(), testOptions(append([]Option{WithSeedData(false)}, opts...)...)...)
	svc.Load(context.Background())
	return svc
}

func createApp(t *testing.T, svc *AppService, name string, stage domain.DevStage) *domain.App {
	t.Helper()
	app, err := svc.CreateApp(context.Background(), CreateAppParams{Name: name, DevStage: stage})
	require.NoError(t, err)
	require.NotNil(t, app)
	return app
}

func TestCreateApp_Defaults(t *testing.T) {
	svc := newAppService(t)

	app, err := svc.CreateApp(context.Background(), CreateAppParams{
		Name:      "  Rocket  ",
		TechStack: []string{"Go, SQLite"},
	})

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, "Rocket", app.Name)
	assert.Equal(t, domain.StatusStopped, app.Status)
	assert.Equal(t, domain.StagePlanning, app.DevStage)
	assert.Equal(t, []string{"[2025-06-01T12:00:00Z] INFO: application created."}, app.Logs)
	assert.Contains(t, app.Documentation, "# Rocket")
	assert.Equal(t, domain.Metrics{}, app.Metrics)
	assert.Equal(t, "v0.1.0", app.DeploymentInfo.Version)
	assert.Empty(t, app.DeploymentInfo.BuildCommand)
	assert.Equal(t, "npm test", app.TestInfo.TestCommand)
	assert.Equal(t, []string{"Go", "SQLite"}, app.TechStack)
	assert.Empty(t, app.Ideas)
	assert.NotNil(t, app.Todos)
	assert.NotNil(t, app.Blockers)
	assert.NotNil(t, app.Bugs)
	assert.NotNil(t, app.Links)
}

func TestCreateApp_PrependsWithUniqueIDs(t *testing.T) {
	svc := NewAppService(newMemoryStore(), WithSeedData(false))
	svc.Load(context.Background())

	seen := map[string]bool{}
	for i := range 50 {
		app, err := svc.CreateApp(context.Background(), CreateAppParams{Name: "app", Description: string(rune('a' + i%26))})
		require.NoError(t, err)
		assert.False(t, seen[app.ID], "id %s reused", app.ID)
		seen[app.ID] = true
		assert.Equal(t, domain.StatusStopped, app.Status)
		assert.NotEmpty(t, app.Logs)
		assert.Equal(t, app.ID, svc.List()[0].ID, "newest app comes first")
	}
	assert.Len(t, svc.List(), 50)
}

func TestCreateApp_DefaultTestCommandOption(t *testing.T) {
	svc := newAppService(t, WithDefaultTestCommand("go test ./..."))

	app := createApp(t, svc, "Tool", "")

	assert.Equal(t, "go test ./...", app.TestInfo.TestCommand)
}

func TestCreateApp_BlankNameIsSilentNoop(t *testing.T) {
	store := portsmocks.NewMockCollectionStore(t)
	svc := NewAppService(store, testOptions()...)

	app, err := svc.CreateApp(context.Background(), CreateAppParams{Name: "   "})

	require.NoError(t, err)
	assert.Nil(t, app)
	assert.Empty(t, svc.List())
}

func TestCreateApp_InvalidStage(t *testing.T) {
	svc := newAppService(t)

	_, err := svc.CreateApp(context.Background(), CreateAppParams{Name: "x", DevStage: "Beta"})

	assert.ErrorIs(t, err, domain.ErrInvalidStage)
	assert.Empty(t, svc.List())
}

func TestCreateApp_DropsBlankAndRejectsDuplicateLinks(t *testing.T) {
	svc := newAppService(t)

	app, err := svc.CreateApp(context.Background(), CreateAppParams{
		Name:  "Linked",
		Links: []domain.LinkItem{{URL: " https://a.dev "}, {Label: "empty"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.LinkItem{{Label: "https://a.dev", URL: "https://a.dev"}}, app.Links)

	_, err = svc.CreateApp(context.Background(), CreateAppParams{
		Name:  "Dup",
		Links: []domain.LinkItem{{URL: "https://a.dev"}, {URL: "https://a.dev"}},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateLink)
}

func TestUpdateApp_ShallowMergeKeepsSiblings(t *testing.T) {
	svc := newAppService(t)
	app := createApp(t, svc, "Before", domain.StageDevelopment)
	_, err := svc.AddTodo(context.Background(), app.ID, "keep me")
	require.NoError(t, err)

	desc := "after"
	path := "/srv/app"
	updated, err := svc.UpdateApp(context.Background(), app.ID, domain.AppPatch{Description: &desc, Path: &path})
	require.NoError(t, err)

	got, err := svc.Get(app.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Description)
	assert.Equal(t, "/srv/app", got.Path)
	assert.Equal(t, "Before", got.Name)
	assert.Len(t, got.Todos, 1)
	assert.Equal(t, app.Logs, got.Logs)
	assert.Equal(t, updated, got)
}

func TestUpdateApp_EveryScalarField(t *testing.T) {
	svc := newAppService(t)
	app := createApp(t, svc, "Fields", "")

	name, desc, cmd, path, ideas, docs := "N", "D", "C", "P", "I", "Docs"
	status := domain.StatusRunning
	stage := domain.StageDeployed

	_, err := svc.UpdateApp(context.Background(), app.ID, domain.AppPatch{
		Name: &name, Description: &desc, Command: &cmd, Path: &path,
		Ideas: &ideas, Documentation: &docs, Status: &status, DevStage: &stage,
	})
	require.NoError(t, err)

	got, _ := svc.Get(app.ID)
	assert.Equal(t, "N", got.Name)
	assert.Equal(t, "D", got.Description)
	assert.Equal(t, "C", got.Command)
	assert.Equal(t, "P", got.Path)
	assert.Equal(t, "I", got.Ideas)
	assert.Equal(t, "Docs", got.Documentation)
	assert.Equal(t, domain.StatusRunning, got.Status)
	assert.Equal(t, domain.StageDeployed, got.DevStage)
}

func TestUpdateApp_BlankNameIgnored(t *testing.T) {
	svc := newAppService(t)
	app := createApp(t, svc, "Keep", "")

	blank := "  "
	desc := "changed"
	_, err := svc.UpdateApp(context.Background(), app.ID, domain.AppPatch{Name: &blank, Description: &desc})
	require.NoError(t, err)

	got, _ := svc.Get(app.ID)
	assert.Equal(t, "Keep", got.Name)
	assert.Equal(t, "changed", got.Description)
}

func TestUpdateApp_UnknownIDLeavesStateUnchanged(t *testing.T) {
	svc := newAppService(t)
	createApp(t, svc, "Only", "")
	before := svc.List()

	name := "x"
	_, err := svc.UpdateApp(context.Background(), "missing", domain.AppPatch{Name: &name})

	assert.ErrorIs(t, err, domain.ErrAppNotFound)
	assert.Equal(t, before, svc.List())
}

func TestUpdateApp_InvalidValueRejected(t *testing.T) {
	svc := newAppService(t)
	app := createApp(t, svc, "Strict", "")

	status := domain.AppStatus("Paused")
	_, err := svc.UpdateApp(context.Background(), app.ID, domain.AppPatch{Status: &status})

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	got, _ := svc.Get(app.ID)
	assert.Equal(t, domain.StatusStopped, got.Status)
}

func TestUpdateDeploymentInfo_MergesFields(t *testing.T) {
	svc := newAppService(t)
	app := createApp(t, svc, "Merge", domain.StageDeployed)
	build := "make build"
	notes := "v1 fixes"

	_, err := svc.UpdateDeploymentInfo(context.Background(), app.ID, domain.DeploymentInfoPatch{BuildCommand: &build})
	require.NoError(t, err)
	_, err = svc.UpdateDeploymentInfo(context.Background(), app.ID, domain.DeploymentInfoPatch{ReleaseNotes: &notes})
	require.NoError(t, err)

	got, _ := svc.Get(app.ID)
	assert.Equal(t, "make build", got.DeploymentInfo.BuildCommand)
	assert.Equal(t, "v1 fixes", got.DeploymentInfo.ReleaseNotes)
	assert.Equal(t, "v0.1.0", got.DeploymentInfo.Version)
}

func TestUpdateTestInfo_CoverageRange(t *testing.T) {
	svc := newAppService(t)
	app := createApp(t, svc, "Cov", domain.StageDevelopment)
	bad := 101

	_, err := svc.UpdateTestInfo(context.Background(), app.ID, domain.TestInfoPatch{Coverage: &bad})
	assert.Error(t, err)

	cmd := "go test"
	_, err = svc.UpdateTestInfo(context.Background(), app.ID, domain.TestInfoPatch{TestCommand: &cmd})
	require.NoError(t, err)
	got, _ := svc.Get(app.ID)
	assert.Equal(t, "go test", got.TestInfo.TestCommand)
}

func TestUpdateMetrics_ClampsNegative(t *testing.T) {
	svc := newAppService(t)
	app := createApp(t, svc, "Metrics", domain.StageDeployed)
	api := -3
	db := 9

	_, err := svc.UpdateMetrics(context.Background(), app.ID, domain.MetricsPatch{APIUsage: &api, DBCalls: &db})
	require.NoError(t, err)

	got, _ := svc.Get(app.ID)
	assert.Equal(t, domain.Metrics{APIUsage: 0, DBCalls: 9}, got.Metrics)
}

func TestDeleteApp_RequiresConfirmation(t *testing.T) {
	tests := []struct {
		name      string
		confirm   bool
		wantGone  bool
		wantCount int
	}{
		{"declined", false, false, 1},
		{"accepted", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newAppService(t)
			app := createApp(t, svc, "Doomed", "")
			confirmer := portsmocks.NewMockConfirmer(t)
			confirmer.EXPECT().Confirm(mock.MatchedBy(func(p string) bool {
				return assert.Contains(t, p, "Doomed")
			})).Return(tt.confirm)

			deleted, err := svc.DeleteApp(context.Background(), app.ID, confirmer)

			require.NoError(t, err)
			assert.Equal(t, tt.wantGone, deleted)
			assert.Len(t, svc.List(), tt.wantCount)
		})
	}
}

func TestDeleteApp_NilConfirmerDeclines(t *testing.T) {
	svc := newAppService(t)
	app := createApp(t, svc, "Safe", "")

	deleted, err := svc.DeleteApp(context.Background(), app.ID, nil)

	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Len(t, svc.List(), 1)
}

func TestDeleteApp_UnknownID(t *testing.T) {
	svc := newAppService(t)
	confirmer := portsmocks.NewMockConfirmer(t)

	_, err := svc.DeleteApp(context.Background(), "nope", confirmer)

	assert.ErrorIs(t, err, domain.ErrAppNotFound)
}

func TestStartStop_AppendsLogAtomically(t *testing.T) {
	svc := newAppService(t)
	app := createApp(t, svc, "Server", "")

	started, err := svc.Start(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRunning, started.Status)
	assert.Len(t, started.Logs, 2)
	assert.Contains(t, started.Logs[1], "started by user")

	stopped, err := svc.Stop(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusStopped, stopped.Status)
	assert.Len(t, stopped.Logs, 3)
	assert.Contains(t, stopped.Logs[2], "stopped by user")

	logs, err := svc.Logs(app.ID)
	require.NoError(t, err)
	assert.Equal(t, stopped.Logs, logs)
}

func TestSetStatus_Invalid(t *testing.T) {
	svc := newAppService(t)
	app := createApp(t, svc, "S", "")

	_, err := svc.SetStatus(context.Background(), app.ID, "Crashed", "boom")

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestSetDevStage_BackwardKeepsData(t *testing.T) {
	svc := newAppService(t)
	app := createApp(t, svc, "Mover", domain.StageDevelopment)
	_, err := svc.AddTodo(context.Background(), app.ID, "todo")
	require.NoError(t, err)
	_, err = svc.SetIdeas(context.Background(), app.ID, "some ideas")
	require.NoError(t, err)

	_, err = svc.SetDevStage(context.Background(), app.ID, domain.StageDeployed)
	require.NoError(t, err)
	back, err := svc.SetDevStage(context.Background(), app.ID, domain.StagePlanning)
	require.NoError(t, err)

	assert.Equal(t, domain.StagePlanning, back.DevStage)
	assert.Len(t, back.Todos, 1)
	assert.Equal(t, "some ideas", back.Ideas)
	assert.Contains(t, back.Logs[len(back.Logs)-1], "from Deployed to Planning")
}

func TestSetDevStage_SameStageNoLog(t *testing.T) {
	svc := newAppService(t)
	app := createApp(t, svc, "Still", domain.StagePlanning)

	got, err := svc.SetDevStage(context.Background(), app.ID, domain.StagePlanning)

	require.NoError(t, err)
	assert.Len(t, got.Logs, 1)
	_, err = svc.SetDevStage(context.Background(), app.ID, "Archived")
	assert.ErrorIs(t, err, domain.ErrInvalidStage)
}

func TestScenario_TodoCompletionTracksReadiness(t *testing.T) {
	svc := newAppService(t)
	app := createApp(t, svc, "X", domain.StageDevelopment)

	todo, err := svc.AddTodo(context.Background(), app.ID, "write tests")
	require.NoError(t, err)
	require.NotNil(t, todo)
	assert.False(t, todo.Completed)

	got, _ := svc.Get(app.ID)
	assert.False(t, domain.AllTodosCompleted(got.Todos))

	_, err = svc.ToggleTodo(context.Background(), app.ID, todo.ID)
	require.NoError(t, err)

	got, _ = svc.Get(app.ID)
	assert.True(t, domain.AllTodosCompleted(got.Todos))
}

func TestToggleTodo_TwiceIsIdempotent(t *testing.T) {
	svc := newAppService(t)
	app := createApp(t, svc, "Idem", domain.StageDevelopment)
	todo, _ := svc.AddTodo(context.Background(), app.ID, "flip")

	_, err := svc.ToggleTodo(context.Background(), app.ID, todo.ID)
	require.NoError(t, err)
	got, err := svc.ToggleTodo(context.Background(), app.ID, todo.ID)
	require.NoError(t, err)

	assert.Equal(t, []domain.TodoItem{*todo}, got.Todos)
}

func TestSubItems_BlankTextIsNoop(t *testing.T) {
	svc := newAppService(t)
	app := createApp(t, svc, "Blank", domain.StageDevelopment)
	ctx := context.Background()

	todo, err := svc.AddTodo(ctx, app.ID, " ")
	assert.NoError(t, err)
	assert.Nil(t, todo)
	blocker, err := svc.AddBlocker(ctx, app.ID, "")
	assert.NoError(t, err)
	assert.Nil(t, blocker)
	bug, err := svc.AddBug(ctx, app.ID, "\t", domain.PriorityHigh)
	assert.NoError(t, err)
	assert.Nil(t, bug)

	got, _ := svc.Get(app.ID)
	assert.Empty(t, got.Todos)
	assert.Empty(t, got.Blockers)
	assert.Empty(t, got.Bugs)
}

func TestSubItems_DeleteAbsentIsNoop(t *testing.T) {
	svc := newAppService(t)
	app := createApp(t, svc, "Absent", domain.StageDevelopment)
	ctx := context.Background()
	_, _ = svc.AddTodo(ctx, app.ID, "a")
	_, _ = svc.AddBlocker(ctx, app.ID, "b")
	_, _ = svc.AddBug(ctx, app.ID, "c", domain.PriorityLow)
	before, _ := svc.Get(app.ID)

	_, err := svc.DeleteTodo(ctx, app.ID, "t-missing")
	require.NoError(t, err)
	_, err = svc.DeleteBlocker(ctx, app.ID, "b-missing")
	require.NoError(t, err)
	after, err := svc.DeleteBug(ctx, app.ID, "bug-missing")
	require.NoError(t, err)

	assert.Equal(t, before.Todos, after.Todos)
	assert.Equal(t, before.Blockers, after.Blockers)
	assert.Equal(t, before.Bugs, after.Bugs)
}

func TestBlockersAndBugs(t *testing.T) {
	svc := newAppService(t)
	app := createApp(t, svc, "Tracker", domain.StageDevelopment)
	ctx := context.Background()

	blocker, err := svc.AddBlocker(ctx, app.ID, "waiting on API key")
	require.NoError(t, err)
	assert.Contains(t, blocker.ID, "b-")

	bug, err := svc.AddBug(ctx, app.ID, "crash on save", "")
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, bug.Priority)
	assert.Contains(t, bug.ID, "bug-")

	_, err = svc.AddBug(ctx, app.ID, "bad", "Urgent")
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)

	_, err = svc.ToggleBlocker(ctx, app.ID, blocker.ID)
	require.NoError(t, err)
	got, err := svc.ToggleBug(ctx, app.ID, bug.ID)
	require.NoError(t, err)
	assert.True(t, got.Blockers[0].Resolved)
	assert.True(t, got.Bugs[0].Resolved)

	_, err = svc.DeleteBlocker(ctx, app.ID, blocker.ID)
	require.NoError(t, err)
	got, err = svc.DeleteBug(ctx, app.ID, bug.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Blockers)
	assert.Empty(t, got.Bugs)
}

func TestLinks(t *testing.T) {
	svc := newAppService(t)
	app := createApp(t, svc, "Links", "")
	ctx := context.Background()

	got, err := svc.AddLink(ctx, app.ID, domain.LinkItem{Label: "Repo", URL: "https://git.example/x"})
	require.NoError(t, err)
	assert.Len(t, got.Links, 1)

	_, err = svc.AddLink(ctx, app.ID, domain.LinkItem{Label: "Again", URL: "https://git.example/x"})
	assert.ErrorIs(t, err, domain.ErrDuplicateLink)

	none, err := svc.AddLink(ctx, app.ID, domain.LinkItem{Label: "No url"})
	assert.NoError(t, err)
	assert.Nil(t, none)

	got, err = svc.UpdateLink(ctx, app.ID, domain.LinkItem{Label: "Source", URL: "https://git.example/x", Icon: "code"})
	require.NoError(t, err)
	assert.Equal(t, "Source", got.Links[0].Label)
	assert.Equal(t, "code", got.Links[0].Icon)

	got, err = svc.DeleteLink(ctx, app.ID, "https://git.example/x")
	require.NoError(t, err)
	assert.Empty(t, got.Links)
}

func TestRunTests_ForcedSuccess(t *testing.T) {
	svc := newAppService(t, WithRandomSource(random.NewFixed(0.16, 0.99)))
	app := createApp(t, svc, "Green", domain.StageDevelopment)

	for range 1000 {
		res, err := svc.RunTests(context.Background(), app.ID)
		require.NoError(t, err)
		require.True(t, res.Success)
		require.NotNil(t, res.App.TestInfo.Coverage)
		require.Equal(t, 98, *res.App.TestInfo.Coverage)
		require.True(t, *res.App.TestInfo.LastTestSuccess)
	}

	got, _ := svc.Get(app.ID)
	assert.Equal(t, fixedNow, *got.TestInfo.LastTestTime)
	assert.Contains(t, got.Logs[len(got.Logs)-1], "result: success")
}

func TestRunTests_CoverageStaysInRange(t *testing.T) {
	for _, draw := range []float64{0.0, 0.5, 0.999999} {
		svc := newAppService(t, WithRandomSource(random.NewFixed(0.9, draw)))
		app := createApp(t, svc, "Range", domain.StageDevelopment)

		res, err := svc.RunTests(context.Background(), app.ID)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, *res.App.TestInfo.Coverage, 70)
		assert.LessOrEqual(t, *res.App.TestInfo.Coverage, 98)
	}
}

func TestRunTests_ForcedFailureKeepsCoverage(t *testing.T) {
	svc := newAppService(t, WithRandomSource(random.NewFixed(0.15, 0.0, 0.01)))
	app := createApp(t, svc, "Red", domain.StageDevelopment)
	prior := 42
	_, err := svc.UpdateTestInfo(context.Background(), app.ID, domain.TestInfoPatch{Coverage: &prior})
	require.NoError(t, err)

	for range 1000 {
		res, err := svc.RunTests(context.Background(), app.ID)
		require.NoError(t, err)
		require.False(t, res.Success)
		require.Equal(t, 42, *res.App.TestInfo.Coverage)
		require.False(t, *res.App.TestInfo.LastTestSuccess)
	}

	got, _ := svc.Get(app.ID)
	assert.NotNil(t, got.TestInfo.LastTestTime)
	assert.Contains(t, got.Logs[len(got.Logs)-1], "result: failure")
}

func TestRunTests_UsesInjectedSourceOnce(t *testing.T) {
	rnd := portsmocks.NewMockRandomSource(t)
	rnd.EXPECT().Float64().Return(0.05).Once()
	svc := newAppService(t, WithRandomSource(rnd))
	app := createApp(t, svc, "Once", domain.StageDevelopment)

	res, err := svc.RunTests(context.Background(), app.ID)

	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Nil(t, res.App.TestInfo.Coverage)
}

func TestSimulations_StageGated(t *testing.T) {
	tests := []struct {
		name  string
		stage domain.DevStage
		run   func(svc *AppService, id string) error
	}{
		{"tests in planning", domain.StagePlanning, func(s *AppService, id string) error {
			_, err := s.RunTests(context.Background(), id)
			return err
		}},
		{"tests in deployed", domain.StageDeployed, func(s *AppService, id string) error {
			_, err := s.RunTests(context.Background(), id)
			return err
		}},
		{"build in development", domain.StageDevelopment, func(s *AppService, id string) error {
			_, err := s.Build(context.Background(), id)
			return err
		}},
		{"deploy in planning", domain.StagePlanning, func(s *AppService, id string) error {
			_, err := s.Deploy(context.Background(), id)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newAppService(t)
			app := createApp(t, svc, "Gated", tt.stage)

			err := tt.run(svc, app.ID)

			assert.ErrorIs(t, err, domain.ErrActionNotAllowed)
			got, _ := svc.Get(app.ID)
			assert.Len(t, got.Logs, 1, "a refused action must not log")
		})
	}
}

func TestBuild_Outcomes(t *testing.T) {
	tests := []struct {
		draw    float64
		success bool
	}{
		{0.11, true},
		{0.10, false},
		{0.0, false},
		{0.99, true},
	}

	for _, tt := range tests {
		svc := newAppService(t, WithRandomSource(random.NewFixed(tt.draw)))
		app := createApp(t, svc, "Builder", domain.StageDeployed)

		res, err := svc.Build(context.Background(), app.ID)

		require.NoError(t, err)
		assert.Equal(t, tt.success, res.Success, "draw %v", tt.draw)
		assert.Equal(t, tt.success, *res.App.DeploymentInfo.LastBuildSuccess)
		assert.Equal(t, fixedNow, *res.App.DeploymentInfo.LastBuildTime)
		assert.Len(t, res.App.Logs, 2)
	}
}

func TestDeploy_GateAndEffects(t *testing.T) {
	svc := newAppService(t, WithRandomSource(random.NewFixed(0.9)))
	ctx := context.Background()
	app := createApp(t, svc, "Shipper", domain.StageDeployed)
	todo, _ := svc.AddTodo(ctx, app.ID, "final check")

	_, err := svc.Deploy(ctx, app.ID)
	require.ErrorIs(t, err, domain.ErrDeployNotReady)
	assert.Contains(t, err.Error(), "all todos completed")

	_, _ = svc.ToggleTodo(ctx, app.ID, todo.ID)
	_, err = svc.Build(ctx, app.ID)
	require.NoError(t, err)

	_, err = svc.Deploy(ctx, app.ID)
	require.ErrorIs(t, err, domain.ErrDeployNotReady, "release notes still empty")

	notes := "v1 fixes"
	_, err = svc.UpdateDeploymentInfo(ctx, app.ID, domain.DeploymentInfoPatch{ReleaseNotes: &notes})
	require.NoError(t, err)

	readiness, err := svc.Readiness(app.ID)
	require.NoError(t, err)
	assert.True(t, readiness.CanDeploy())

	deployed, err := svc.Deploy(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, *deployed.DeploymentInfo.LastDeploymentTime)
	assert.Equal(t, domain.StageDeployed, deployed.DevStage)
	assert.Equal(t, domain.StatusStopped, deployed.Status)
	assert.Contains(t, deployed.Logs[len(deployed.Logs)-1], "version: v0.1.0")
}

func TestMutation_WriteFailureLeavesStateUnchanged(t *testing.T) {
	store := portsmocks.NewMockCollectionStore(t)
	store.EXPECT().Get(mock.Anything, domain.CollectionApps).Return(nil, 0, domain.ErrCollectionNotFound)
	store.EXPECT().Put(mock.Anything, domain.CollectionApps, mock.Anything, domain.SchemaVersion).
		Return(errors.New("disk full"))

	svc := NewAppService(store, testOptions()...)
	svc.Load(context.Background())
	before := svc.List()
	require.NotEmpty(t, before)

	_, err := svc.Start(context.Background(), before[0].ID)

	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, before, svc.List())
}

func TestAppService_RoundTripThroughStore(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()
	svc := NewAppService(store, testOptions()...)
	svc.Load(ctx)

	app := createApp(t, svc, "Persisted", domain.StageDevelopment)
	_, _ = svc.AddTodo(ctx, app.ID, "t")
	_, _ = svc.AddBug(ctx, app.ID, "b", domain.PriorityHigh)
	_, _ = svc.RunTests(ctx, app.ID)

	reloaded := NewAppService(store, testOptions()...)
	apps := reloaded.Load(ctx)

	assert.Equal(t, svc.List(), apps)
	assert.Len(t, apps, 4, "three seed apps plus the new one")
}

func TestLoad_SeedsWhenEmpty(t *testing.T) {
	svc := NewAppService(newMemoryStore(), testOptions()...)

	apps := svc.Load(context.Background())

	require.Len(t, apps, 3)
	for _, a := range apps {
		assert.NotNil(t, a.Todos)
		assert.NotNil(t, a.Links)
	}
}

package services

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/logging"
	"github.com/renato0307/appdeck/internal/ports"
)

// Messages appended to an app's log
const (
	logAppCreated   = "INFO: application created."
	logAppStarted   = "INFO: application started by user."
	logAppStopped   = "INFO: application stopped by user."
	logBuildResult  = "INFO: starting build... result: %s"
	logDeployed     = "INFO: simulated production deployment (version: %s)."
	logStageChanged = "INFO: dev stage changed from %s to %s."
	logTestResult   = "INFO: running tests... result: %s"
)

// Simulation thresholds: a run succeeds when the draw is strictly above them
const (
	buildSuccessThreshold = 0.10
	testSuccessThreshold  = 0.15
	minCoverage           = 70
	coverageSpan          = 29 // coverage lands in [70, 98]
)

// AppService owns the app collection and every mutation on it.
// Each successful mutation writes the whole collection before returning.
type AppService struct {
	mu    sync.Mutex
	apps  []domain.App
	opts  options
	store ports.CollectionStore
}

// NewAppService creates a new AppService; call Load before use
func NewAppService(store ports.CollectionStore, opts ...Option) *AppService {
	return &AppService{
		apps:  []domain.App{},
		opts:  buildOptions(opts),
		store: store,
	}
}

// Load reads the apps collection, falling back to the seed apps
func (s *AppService) Load(ctx context.Context) []domain.App {
	fallback := func() []domain.App {
		if !s.opts.seed {
			return []domain.App{}
		}
		return domain.SeedApps()
	}

	apps := LoadCollection(ctx, s.store, domain.CollectionApps, fallback, domain.App.Validate)
	for i := range apps {
		apps[i].Normalize()
	}

	s.mu.Lock()
	s.apps = apps
	s.mu.Unlock()

	logging.Logger.Info("Apps loaded", "count", len(apps))
	return slices.Clone(apps)
}

// List returns the apps, newest first
func (s *AppService) List() []domain.App {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.apps)
}

// Get returns the app with the given id
func (s *AppService) Get(id string) (*domain.App, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	app, ok := domain.Find(s.apps, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAppNotFound, id)
	}
	return &app, nil
}

// Logs returns the app's log lines in chronological order
func (s *AppService) Logs(id string) ([]string, error) {
	app, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(app.Logs), nil
}

// Readiness evaluates the deploy checklist of an app
func (s *AppService) Readiness(id string) (domain.DeployReadiness, error) {
	app, err := s.Get(id)
	if err != nil {
		return domain.DeployReadiness{}, err
	}
	return domain.CheckDeployReadiness(*app), nil
}

// CreateApp adds a new app at the front of the list.
// A blank name is ignored and yields a nil app without error.
func (s *AppService) CreateApp(ctx context.Context, params CreateAppParams) (*domain.App, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		logging.Logger.Debug("Ignoring app creation without a name")
		return nil, nil
	}

	stage := params.DevStage
	if stage == "" {
		stage = domain.StagePlanning
	}
	if !stage.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStage, stage)
	}

	links := []domain.LinkItem{}
	for _, l := range params.Links {
		link, ok := cleanLink(l)
		if !ok {
			continue
		}
		var err error
		if links, err = domain.AddLink(links, link); err != nil {
			return nil, err
		}
	}

	now := s.opts.now()
	app := domain.App{
		Blockers:      []domain.BlockerItem{},
		Bugs:          []domain.BugItem{},
		Command:       strings.TrimSpace(params.Command),
		Description:   strings.TrimSpace(params.Description),
		DevStage:      stage,
		Documentation: domain.DefaultDocumentation(name),
		DeploymentInfo: domain.DeploymentInfo{
			Version: domain.DefaultVersion,
		},
		ID:        s.opts.newID(""),
		Links:     links,
		Logs:      []string{domain.FormatLogLine(now, logAppCreated)},
		Metrics:   domain.Metrics{},
		Name:      name,
		Path:      strings.TrimSpace(params.Path),
		Status:    domain.StatusStopped,
		TechStack: domain.NormalizeTechStack(params.TechStack...),
		TestInfo:  domain.TestInfo{TestCommand: s.opts.defaultTestCommand},
		Todos:     []domain.TodoItem{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if domain.Contains(s.apps, app.ID) {
		return nil, fmt.Errorf("app id %s already in use", app.ID)
	}

	if err := s.commit(ctx, domain.Prepend(s.apps, app)); err != nil {
		return nil, err
	}

	logging.Logger.Info("App created", "app_id", app.ID, "name", app.Name, "stage", app.DevStage)
	return &app, nil
}

// UpdateApp shallow-merges the patch into the app. Nested structs in the patch
// replace the previous value whole; see UpdateDeploymentInfo, UpdateTestInfo and
// UpdateMetrics for field-level merges. A blank name in the patch is ignored.
func (s *AppService) UpdateApp(ctx context.Context, id string, patch domain.AppPatch) (*domain.App, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			patch.Name = nil
		} else {
			patch.Name = &name
		}
	}

	return s.mutate(ctx, id, func(app *domain.App) error {
		if patch.IsEmpty() {
			return nil
		}
		updated := domain.ApplyAppPatch(*app, patch)
		updated.Normalize()
		if err := updated.Validate(); err != nil {
			return err
		}
		*app = updated
		return nil
	})
}

// DeleteApp removes the app after the confirmer agrees.
// Returns false without touching state when the user declines.
func (s *AppService) DeleteApp(ctx context.Context, id string, confirmer ports.Confirmer) (bool, error) {
	app, err := s.Get(id)
	if err != nil {
		return false, err
	}

	prompt := fmt.Sprintf("Delete app %q? This cannot be undone.", app.Name)
	if confirmer == nil || !confirmer.Confirm(prompt) {
		logging.Logger.Info("App deletion declined", "app_id", id)
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !domain.Contains(s.apps, id) {
		return false, fmt.Errorf("%w: %s", domain.ErrAppNotFound, id)
	}
	if err := s.commit(ctx, domain.Remove(s.apps, id)); err != nil {
		return false, err
	}

	logging.Logger.Info("App deleted", "app_id", id)
	return true, nil
}

// SetStatus changes the run status and records message in the log in the same write
func (s *AppService) SetStatus(ctx context.Context, id string, status domain.AppStatus, message string) (*domain.App, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	return s.mutate(ctx, id, func(app *domain.App) error {
		app.Status = status
		if strings.TrimSpace(message) != "" {
			s.appendLog(app, message)
		}
		return nil
	})
}

// Start marks the app as running
func (s *AppService) Start(ctx context.Context, id string) (*domain.App, error) {
	return s.SetStatus(ctx, id, domain.StatusRunning, logAppStarted)
}

// Stop marks the app as stopped
func (s *AppService) Stop(ctx context.Context, id string) (*domain.App, error) {
	return s.SetStatus(ctx, id, domain.StatusStopped, logAppStopped)
}

// SetDevStage moves the app to any stage, forward or backward.
// No data is cleared; the move is recorded in the log.
func (s *AppService) SetDevStage(ctx context.Context, id string, stage domain.DevStage) (*domain.App, error) {
	if !stage.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStage, stage)
	}

	return s.mutate(ctx, id, func(app *domain.App) error {
		if app.DevStage == stage {
			return nil
		}
		s.appendLog(app, fmt.Sprintf(logStageChanged, app.DevStage, stage))
		logging.Logger.Info("Dev stage changed", "app_id", app.ID, "from", app.DevStage, "to", stage)
		app.DevStage = stage
		return nil
	})
}

// SetIdeas replaces the free-text planning ideas
func (s *AppService) SetIdeas(ctx context.Context, id, ideas string) (*domain.App, error) {
	return s.mutate(ctx, id, func(app *domain.App) error {
		app.Ideas = ideas
		return nil
	})
}

// SetDocumentation replaces the markdown documentation
func (s *AppService) SetDocumentation(ctx context.Context, id, doc string) (*domain.App, error) {
	return s.mutate(ctx, id, func(app *domain.App) error {
		app.Documentation = doc
		return nil
	})
}

// UpdateDeploymentInfo merges the set fields into the current deployment info
func (s *AppService) UpdateDeploymentInfo(ctx context.Context, id string, patch domain.DeploymentInfoPatch) (*domain.App, error) {
	return s.mutate(ctx, id, func(app *domain.App) error {
		app.DeploymentInfo = patch.Apply(app.DeploymentInfo)
		return nil
	})
}

// UpdateTestInfo merges the set fields into the current test info
func (s *AppService) UpdateTestInfo(ctx context.Context, id string, patch domain.TestInfoPatch) (*domain.App, error) {
	if c := patch.Coverage; c != nil && (*c < 0 || *c > 100) {
		return nil, fmt.Errorf("coverage %d outside [0,100]", *c)
	}

	return s.mutate(ctx, id, func(app *domain.App) error {
		app.TestInfo = patch.Apply(app.TestInfo)
		return nil
	})
}

// UpdateMetrics merges the set counters, clamping negatives to zero
func (s *AppService) UpdateMetrics(ctx context.Context, id string, patch domain.MetricsPatch) (*domain.App, error) {
	return s.mutate(ctx, id, func(app *domain.App) error {
		app.Metrics = patch.Apply(app.Metrics)
		return nil
	})
}

// RunTests simulates a test run. Only offered during Development.
func (s *AppService) RunTests(ctx context.Context, id string) (*SimulationResult, error) {
	var success bool
	app, err := s.mutate(ctx, id, func(app *domain.App) error {
		if !domain.IsActionAllowed(app.DevStage, domain.ActionRunTests) {
			return fmt.Errorf("%w: run tests in %s", domain.ErrActionNotAllowed, app.DevStage)
		}

		now := s.opts.now()
		success = s.opts.random.Float64() > testSuccessThreshold
		patch := domain.TestInfoPatch{LastTestSuccess: &success, LastTestTime: &now}
		if success {
			coverage := minCoverage + int(math.Floor(s.opts.random.Float64()*coverageSpan))
			patch.Coverage = &coverage
		}

		app.TestInfo = patch.Apply(app.TestInfo)
		s.appendLog(app, fmt.Sprintf(logTestResult, outcome(success)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Tests simulated", "app_id", id, "success", success)
	return &SimulationResult{App: app, Success: success}, nil
}

// Build simulates a build. Only offered once Deployed.
func (s *AppService) Build(ctx context.Context, id string) (*SimulationResult, error) {
	var success bool
	app, err := s.mutate(ctx, id, func(app *domain.App) error {
		if !domain.IsActionAllowed(app.DevStage, domain.ActionBuild) {
			return fmt.Errorf("%w: build in %s", domain.ErrActionNotAllowed, app.DevStage)
		}

		now := s.opts.now()
		success = s.opts.random.Float64() > buildSuccessThreshold
		app.DeploymentInfo = domain.DeploymentInfoPatch{
			LastBuildSuccess: &success,
			LastBuildTime:    &now,
		}.Apply(app.DeploymentInfo)
		s.appendLog(app, fmt.Sprintf(logBuildResult, outcome(success)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Build simulated", "app_id", id, "success", success)
	return &SimulationResult{App: app, Success: success}, nil
}

// Deploy simulates a production deploy. It refuses unless the readiness
// checklist is fully met. Dev stage and run status are left alone.
func (s *AppService) Deploy(ctx context.Context, id string) (*domain.App, error) {
	app, err := s.mutate(ctx, id, func(app *domain.App) error {
		if !domain.IsActionAllowed(app.DevStage, domain.ActionDeploy) {
			return fmt.Errorf("%w: deploy in %s", domain.ErrActionNotAllowed, app.DevStage)
		}

		readiness := domain.CheckDeployReadiness(*app)
		if !readiness.CanDeploy() {
			return fmt.Errorf("%w: missing %s", domain.ErrDeployNotReady, strings.Join(readiness.Missing(), ", "))
		}

		now := s.opts.now()
		app.DeploymentInfo.LastDeploymentTime = &now
		s.appendLog(app, fmt.Sprintf(logDeployed, app.DeploymentInfo.Version))
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Deploy simulated", "app_id", id, "version", app.DeploymentInfo.Version)
	return app, nil
}

// mutate applies fn to a copy of the app and commits the new collection.
// Nothing changes in memory when fn or the write fails.
func (s *AppService) mutate(ctx context.Context, id string, fn func(app *domain.App) error) (*domain.App, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.apps, func(a domain.App) bool { return a.ID == id })
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrAppNotFound, id)
	}

	app := s.apps[idx]
	if err := fn(&app); err != nil {
		return nil, err
	}

	next := slices.Clone(s.apps)
	next[idx] = app
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return &app, nil
}

// commit persists apps and swaps them in. Caller holds s.mu.
func (s *AppService) commit(ctx context.Context, apps []domain.App) error {
	if err := SaveCollection(ctx, s.store, domain.CollectionApps, apps); err != nil {
		return err
	}
	s.apps = apps
	return nil
}

func (s *AppService) appendLog(app *domain.App, message string) {
	app.Logs = append(slices.Clip(app.Logs), domain.FormatLogLine(s.opts.now(), message))
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

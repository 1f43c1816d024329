package domain

import "time"

// Collection keys in the persistence substrate
const (
	CollectionApps      = "apps"
	CollectionMainTodos = "mainTodos"
	CollectionIdeas     = "shortsIdeas"
)

// SchemaVersion is the shape version written next to every stored collection.
// Bump it when a stored field changes meaning.
const SchemaVersion = 1

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func timePtr(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

// SeedApps returns the demo apps shown on first start
func SeedApps() []App {
	return []App{
		{
			ID:          "1",
			Name:        "AI Doc Writer",
			Description: "React app that generates README files from source code using Gemini.",
			Status:      StatusRunning,
			DevStage:    StageDevelopment,
			Path:        "/apps/ai-doc-writer",
			Command:     "npm run start",
			TechStack:   []string{"React", "Gemini API", "TypeScript", "TailwindCSS", "Vite"},
			Logs: []string{
				"INFO: starting development server...",
				"OK: compiled successfully.",
				"API: connected to Gemini API.",
				"EVENT: user generated a new document.",
			},
			Links: []LinkItem{
				{Label: "GitHub repository", URL: "https://github.com/example/ai-doc-writer", Icon: "github"},
			},
			Todos: []TodoItem{
				{ID: "t1-1", Text: "Stream Gemini responses", Completed: true},
				{ID: "t1-2", Text: "Add user authentication"},
				{ID: "t1-3", Text: "Export documents (PDF, MD)"},
			},
			Blockers: []BlockerItem{
				{ID: "b1-1", Text: "Gemini calls fail intermittently because of API quota"},
			},
			Bugs: []BugItem{
				{ID: "bug1-1", Text: "import statements misparsed in TypeScript projects", Priority: PriorityHigh},
				{ID: "bug1-2", Text: "Tables in generated markdown are broken", Priority: PriorityMedium, Resolved: true},
			},
			Documentation: "# AI Doc Writer\n\n## Features\n- **Input**: git repository URL\n- **Output**: README in markdown\n\n## API\n- `POST /api/generate`\n",
			TestInfo: TestInfo{
				TestCommand:     "npm test",
				LastTestTime:    timePtr("2023-10-27T09:00:00Z"),
				LastTestSuccess: boolPtr(true),
				Coverage:        intPtr(88),
			},
			Metrics: Metrics{},
			DeploymentInfo: DeploymentInfo{
				Version: DefaultVersion,
			},
		},
		{
			ID:          "2",
			Name:        "Docker Manager UI",
			Description: "Web dashboard for managing Docker containers, built with Flask and plain JS.",
			Status:      StatusStopped,
			DevStage:    StageDeployed,
			Path:        "/apps/docker-manager",
			Command:     "docker-compose up -d",
			TechStack:   []string{"Flask", "Docker", "JavaScript", "Nginx"},
			Logs: []string{
				"INFO: shutting down server...",
				"OK: docker containers stopped.",
			},
			Links: []LinkItem{
				{Label: "GitHub repository", URL: "https://github.com/example/docker-manager", Icon: "github"},
			},
			Todos:   []TodoItem{{ID: "t2-1", Text: "Volume management", Completed: true}},
			Metrics: Metrics{DBCalls: 1204, APIUsage: 8900},
			DeploymentInfo: DeploymentInfo{
				BuildCommand:       "docker-compose build",
				BuildOutputPath:    "./",
				DeploymentTarget:   "DockerHub",
				DeploymentCommand:  "docker-compose push",
				Version:            "v1.1.2",
				GitCommitHash:      "a1b2c3d",
				LastBuildTime:      timePtr("2023-10-27T10:00:00Z"),
				LastBuildSuccess:   boolPtr(true),
				ReleaseNotes:       "First release with basic container management.",
				LastDeploymentTime: timePtr("2023-10-27T10:05:00Z"),
			},
			TestInfo:      TestInfo{TestCommand: DefaultTestCommand},
			Documentation: DefaultDocumentation("Docker Manager UI"),
		},
		{
			ID:          "3",
			Name:        "ImageGen Service",
			Description: "Image generation service on top of Imagen 3 with a small API.",
			Status:      StatusStopped,
			DevStage:    StagePlanning,
			Path:        "/apps/imagegen-service",
			Command:     "node server.js",
			TechStack:   []string{"Node.js", "Imagen 3 API", "Express"},
			Logs:        []string{"INFO: server stopped by user."},
			Links: []LinkItem{
				{Label: "GitHub repository", URL: "https://github.com/example/imagegen", Icon: "github"},
			},
			Ideas:          "Gallery of generated images.\n- Daily generation limit.\n- Optional watermark.",
			TestInfo:       TestInfo{TestCommand: DefaultTestCommand},
			DeploymentInfo: DeploymentInfo{Version: DefaultVersion},
			Documentation:  DefaultDocumentation("ImageGen Service"),
		},
	}
}

// SeedMainTodos returns the demo dashboard todos shown on first start
func SeedMainTodos() []TodoItem {
	return []TodoItem{
		{ID: "m-1", Text: "Review monitoring of all apps"},
		{ID: "m-2", Text: "Check that the backup script ran", Completed: true},
	}
}

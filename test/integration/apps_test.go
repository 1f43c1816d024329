package integration_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/appdeck/test/integration/harness"
)

func TestAppsList(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, env *harness.TestEnvironment)
		args        []string
		wantFailure bool
		validate    func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "fresh home shows seed apps",
			args: []string{"apps", "list"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "AI Doc Writer")
				harness.AssertStdoutContains(t, result, "Docker Manager UI")
				harness.AssertStdoutContains(t, result, "ImageGen Service")
				harness.AssertTotal(t, result, 3, "apps")
			},
		},
		{
			name: "added app survives the process",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				result := harness.RunCommand(t, env, "apps", "add", "Rocket", "-t", "Go,SQLite")
				harness.AssertSuccess(t, result)
				harness.AssertStdoutContains(t, result, "App 'Rocket' added")
			},
			args: []string{"apps", "list"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Rocket")
				harness.AssertTotal(t, result, 4, "apps")
			},
		},
		{
			name: "json format",
			args: []string{"apps", "list", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				apps := harness.RequireJSONList(t, result, 3)
				assert.Equal(t, "AI Doc Writer", apps[0]["name"])
			},
		},
		{
			name:        "invalid format is rejected",
			args:        []string{"apps", "list", "--format", "xml"},
			wantFailure: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantFailure {
				harness.AssertFailure(t, result)
			} else {
				harness.AssertSuccess(t, result)
			}
			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestAppsLifecycle(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "apps", "start", "ImageGen Service")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "ImageGen Service is Running")

	result = harness.RunCommand(t, env, "apps", "logs", "3")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "1  ")

	result = harness.RunCommand(t, env, "apps", "test", "3")
	harness.AssertCommandError(t, result, "not available in current dev stage")

	result = harness.RunCommand(t, env, "apps", "stage", "3")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Development")

	result = harness.RunCommand(t, env, "--seed", "7", "apps", "test", "3")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Running")
}

func TestAppsDeployRefused(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "apps", "stage", "3", "deployed"))

	result := harness.RunCommand(t, env, "apps", "deploy", "3")
	harness.AssertCommandError(t, result, "not ready to deploy")
	harness.AssertStdoutContains(t, result, "Not ready to deploy")

	apps := env.StoredCollection(t, "apps")
	for _, app := range apps {
		if app["id"] == "3" {
			deployment, _ := app["deploymentInfo"].(map[string]any)
			assert.NotContains(t, deployment, "lastDeploymentTime")
		}
	}
}

func TestAppsView(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "apps", "view", "2")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Docker Manager UI")
	harness.AssertStdoutContains(t, result, "Deploy checklist")

	harness.AssertJSONContains(t, harness.RunCommand(t, env, "apps", "view", "2", "--format", "json"),
		"devStage", "Deployed")

	result = harness.RunCommand(t, env, "apps", "view", "nope")
	harness.AssertCommandError(t, result, "app not found")
	assert.Empty(t, strings.TrimSpace(result.Stdout))
}

func TestAppsDelete(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommandWithInput(t, env, "n\n", "apps", "del", "3")
	harness.AssertSuccess(t, result)
	harness.AssertTotal(t, harness.RunCommand(t, env, "apps", "list"), 3, "apps")

	result = harness.RunCommandWithInput(t, env, "y\n", "apps", "del", "3")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "apps", "list")
	harness.AssertStdoutNotContains(t, result, "ImageGen Service")
	harness.AssertTotal(t, result, 2, "apps")
	assert.Len(t, env.StoredCollection(t, "apps"), 2)
}

func TestAppsLoad_KeepsValidAppsNextToBadOnes(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteCollection(t, "apps", `[
		{"id":"a-1","name":"MyRealApp","status":"Stopped","devStage":"Development"},
		{"id":"a-2","name":"Legacy","status":"running","devStage":"Planning"}
	]`)

	result := harness.RunCommand(t, env, "apps", "start", "MyRealApp")
	harness.AssertSuccess(t, result)

	apps := env.StoredCollection(t, "apps")
	require.Len(t, apps, 1)
	assert.Equal(t, "MyRealApp", apps[0]["name"])
	assert.Equal(t, "Running", apps[0]["status"])

	var backups []string
	for _, k := range env.StoredKeys(t) {
		if strings.HasPrefix(k, "apps.backup-") {
			backups = append(backups, k)
		}
	}
	assert.Len(t, backups, 1)
}

func TestEphemeral(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--ephemeral", "apps", "add", "Scratch")
	harness.AssertSuccess(t, result)
	assert.NoFileExists(t, env.DBPath())

	result = harness.RunCommand(t, env, "apps", "list")
	harness.AssertSuccess(t, result)
	assert.False(t, strings.Contains(result.Stdout, "Scratch"))
}

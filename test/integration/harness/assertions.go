package harness

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess verifies the command exited 0
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Equal(tb, 0, result.ExitCode,
		"Expected success (exit 0), got %d.\nStdout: %s\nStderr: %s",
		result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure verifies the command exited non-zero
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode,
		"Expected failure (non-zero exit), got success.\nStdout: %s",
		result.Stdout)
}

// AssertCommandError verifies a command returned an error: main prints
// "Error: <msg>" on stderr and exits 1
func AssertCommandError(tb testing.TB, result CommandResult, msg string) {
	tb.Helper()
	assert.Equal(tb, 1, result.ExitCode, "Stdout: %s\nStderr: %s", result.Stdout, result.Stderr)
	assert.Contains(tb, result.Stderr, "Error: ")
	assert.Contains(tb, result.Stderr, msg)
}

// AssertStdoutContains verifies stdout contains the expected string
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected,
		"Expected stdout to contain %q.\nActual stdout: %s",
		expected, result.Stdout)
}

// AssertStdoutNotContains verifies stdout does not contain the string
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected,
		"Expected stdout NOT to contain %q.\nActual stdout: %s",
		unexpected, result.Stdout)
}

// AssertTotal checks the "Total: N <noun>" footer printed by the list commands
func AssertTotal(tb testing.TB, result CommandResult, n int, noun string) {
	tb.Helper()
	AssertStdoutContains(tb, result, fmt.Sprintf("Total: %d %s", n, noun))
}

// AssertValidJSON verifies stdout is valid JSON and unmarshals it into target
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	err := json.Unmarshal([]byte(result.Stdout), target)
	require.NoError(tb, err, "Expected valid JSON.\nStdout: %s", result.Stdout)
}

// RequireJSONList decodes a --format json list and checks its length
func RequireJSONList(tb testing.TB, result CommandResult, n int) []map[string]any {
	tb.Helper()
	var items []map[string]any
	AssertValidJSON(tb, result, &items)
	require.Len(tb, items, n, "Stdout: %s", result.Stdout)
	return items
}

// AssertJSONContains verifies stdout is a JSON object with key set to expected
func AssertJSONContains(tb testing.TB, result CommandResult, key string, expected any) {
	tb.Helper()
	var data map[string]any
	AssertValidJSON(tb, result, &data)
	assert.Equal(tb, expected, data[key], "JSON key %q mismatch", key)
}

package harness

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/renato0307/appdeck/internal/adapters/storage"
)

// TestEnvironment provides an isolated test environment with its own APPDECK_HOME.
type TestEnvironment struct {
	AppdeckHome string
	extraEnv    map[string]string
	tb          testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp APPDECK_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		AppdeckHome: tb.TempDir(),
		extraEnv:    make(map[string]string),
		tb:          tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out APPDECK_* variables and sets:
//   - APPDECK_HOME to the temp directory
//   - APPDECK_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "APPDECK_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"APPDECK_HOME="+e.AppdeckHome,
		"APPDECK_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.AppdeckHome, "state.db")
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.AppdeckHome, "settings.json")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// openStore opens the state.db the binary writes, read-only by convention
func (e *TestEnvironment) openStore(tb testing.TB) *storage.SQLiteStore {
	tb.Helper()
	require.FileExists(tb, e.DBPath(), "appdeck has not written state yet")
	store, err := storage.NewSQLiteStore(e.DBPath())
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = store.Close() })
	return store
}

// StoredKeys lists the collection keys present in state.db
func (e *TestEnvironment) StoredKeys(tb testing.TB) []string {
	tb.Helper()
	keys, err := e.openStore(tb).Keys(context.Background())
	require.NoError(tb, err)
	return keys
}

// StoredCollection decodes the collection saved under key in state.db
func (e *TestEnvironment) StoredCollection(tb testing.TB, key string) []map[string]any {
	tb.Helper()
	data, _, err := e.openStore(tb).Get(context.Background(), key)
	require.NoError(tb, err, "collection %s", key)

	var items []map[string]any
	require.NoError(tb, json.Unmarshal(data, &items), "collection %s: %s", key, data)
	return items
}

// WriteCollection seeds state.db with raw JSON under key before the binary runs
func (e *TestEnvironment) WriteCollection(tb testing.TB, key, data string) {
	tb.Helper()
	store, err := storage.NewSQLiteStore(e.DBPath())
	require.NoError(tb, err)
	defer store.Close()
	require.NoError(tb, store.Put(context.Background(), key, []byte(data), 1))
}

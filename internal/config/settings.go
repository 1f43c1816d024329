package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultErrorClearDelay is the number of seconds an error stays in the TUI footer
const DefaultErrorClearDelay = 10

// Settings represents the structure of ~/.appdeck/settings.json
type Settings struct {
	Debug              *bool       `json:"debug,omitempty" yaml:"debug,omitempty"`
	ErrorClearDelay    *int        `json:"error_clear_delay,omitempty" yaml:"error_clear_delay,omitempty"`
	MaxLogFiles        *int        `json:"max_log_files,omitempty" yaml:"max_log_files,omitempty"`
	SeedDemoData       *bool       `json:"seed_demo_data,omitempty" yaml:"seed_demo_data,omitempty"`
	ShowTimestamps     *bool       `json:"show_timestamps,omitempty" yaml:"show_timestamps,omitempty"`
	TechStackPresets   StringArray `json:"tech_stack_presets,omitempty" yaml:"tech_stack_presets,omitempty"`
	TestCommandDefault string      `json:"test_command_default,omitempty" yaml:"test_command_default,omitempty"`
}

// SeedEnabled reports whether empty stores get the demo apps and todos
func (s *Settings) SeedEnabled() bool {
	if s == nil || s.SeedDemoData == nil {
		return true
	}
	return *s.SeedDemoData
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $APPDECK_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.ErrorClearDelay != nil && *settings.ErrorClearDelay < 0 {
		return nil, fmt.Errorf("invalid settings.json: error_clear_delay must not be negative")
	}
	settings.TestCommandDefault = strings.TrimSpace(settings.TestCommandDefault)

	return &settings, nil
}

// SaveSettings saves settings to $APPDECK_HOME/settings.json
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(GetSettingsPath(), settings)
}

// SaveSettingsTo saves settings to an explicit path
func SaveSettingsTo(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

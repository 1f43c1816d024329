package config

import (
	"os"
	"path/filepath"
)

// DBFileName is the SQLite file inside the appdeck home directory
const DBFileName = "state.db"

// SettingsFileName is the settings file inside the appdeck home directory
const SettingsFileName = "settings.json"

// GetAppdeckHome returns APPDECK_HOME or the ~/.appdeck default
func GetAppdeckHome() string {
	home := os.Getenv("APPDECK_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".appdeck"
		}
		return filepath.Join(homeDir, ".appdeck")
	}
	return ExpandPath(home)
}

// GetDBPath returns $APPDECK_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetAppdeckHome(), DBFileName)
}

// GetSettingsPath returns $APPDECK_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetAppdeckHome(), SettingsFileName)
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

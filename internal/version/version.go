package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Tagline is shown in --help and in the TUI header
const Tagline = "appdeck: a terminal dashboard for your side projects"

// Set via -ldflags "-X github.com/renato0307/appdeck/internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Modified  bool
	Version   string
}

// readBuildInfo is swapped in tests
var readBuildInfo = debug.ReadBuildInfo

// Get returns the ldflags values, completed from the module build info when
// the binary came from a plain go build or go install
func Get() BuildInfo {
	info := BuildInfo{Commit: Commit, Date: Date, GoVersion: GoVersion, Version: Version}
	if info.GoVersion == "unknown" {
		info.GoVersion = runtime.Version()
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "unknown" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// ShortCommit returns the first 7 characters of the commit hash
func (b BuildInfo) ShortCommit() string {
	if len(b.Commit) > 7 {
		return b.Commit[:7]
	}
	return b.Commit
}

// Info returns the --version line
func Info() string {
	b := Get()
	commit := b.Commit
	if b.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("appdeck %s (commit: %s, built: %s, go: %s)",
		b.Version, commit, b.Date, b.GoVersion)
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/appdeck/internal/config"
	"github.com/renato0307/appdeck/internal/logging"
	"github.com/renato0307/appdeck/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	Ephemeral   bool             `help:"Keep state in memory only (nothing is written to disk)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Seed        uint64           `help:"Seed for simulated test and build outcomes (0 = random)" default:"0"`

	Run      RunCmd      `cmd:"" help:"Start the appdeck TUI (default)" default:"1"`
	Apps     AppsCmd     `cmd:"apps" help:"Manage apps (list, add, view, lifecycle, tracking)"`
	Todos    TodosCmd    `cmd:"todos" help:"Manage the dashboard-wide todo list"`
	Ideas    IdeasCmd    `cmd:"ideas" help:"Manage short-video ideas"`
	Export   ExportCmd   `cmd:"export" help:"Print the whole dashboard state"`
	Migrate  MigrateCmd  `cmd:"migrate" help:"Move dashboard data between APPDECK_HOME directories"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (show, meta)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
	stdin     io.Reader        `kong:"-"`
	stdout    io.Writer        `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("APPDECK_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("APPDECK_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// The GORM logger checks APPDECK_DEBUG, so export it once logging is up
	if c.Debug || c.DebugFile != "" {
		os.Setenv("APPDECK_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("APPDECK_DEBUG_FILE", logFilePath)
		}
	}

	// Create container AFTER logging is initialized so the store logs through it
	container, err := NewContainer(context.Background(), c.containerOptions())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

func (c *CLI) containerOptions() ContainerOptions {
	opts := ContainerOptions{
		Ephemeral: c.Ephemeral,
		Seed:      c.Seed,
		SeedData:  c.settings.SeedEnabled(),
	}
	if c.settings != nil {
		opts.TestCommand = c.settings.TestCommandDefault
	}
	return opts
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

func (c *CLI) out() io.Writer {
	if c.stdout != nil {
		return c.stdout
	}
	return os.Stdout
}

func (c *CLI) in() io.Reader {
	if c.stdin != nil {
		return c.stdin
	}
	return os.Stdin
}

// RunCmd starts the TUI application
type RunCmd struct {
	ErrorClearDelay int  `help:"Seconds before error messages auto-clear" default:"10"`
	ShowTimestamps  bool `help:"Show timestamps in the app log viewer" default:"false"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	if cli.settings != nil {
		if r.ErrorClearDelay == config.DefaultErrorClearDelay {
			if cli.settings.ErrorClearDelay != nil {
				r.ErrorClearDelay = *cli.settings.ErrorClearDelay
			}
		}

		if !r.ShowTimestamps {
			if _, hasEnv := os.LookupEnv("APPDECK_SHOW_TIMESTAMPS"); !hasEnv {
				if cli.settings.ShowTimestamps != nil && *cli.settings.ShowTimestamps {
					r.ShowTimestamps = true
				}
			}
		}
	}

	var presets []string
	if cli.settings != nil {
		presets = cli.settings.TechStackPresets
	}

	logging.Logger.Info("Starting appdeck TUI")

	p := tea.NewProgram(
		ui.NewModel(
			cli.Container.Dashboard,
			ui.Options{
				ErrorClearDelay:  time.Duration(r.ErrorClearDelay) * time.Second,
				ShowTimestamps:   r.ShowTimestamps,
				TechStackPresets: presets,
			},
		),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

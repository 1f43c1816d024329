package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/renato0307/appdeck/internal/config"
	"github.com/renato0307/appdeck/internal/logging"
	"github.com/renato0307/appdeck/internal/services"
)

// MigrateCmd moves collections between APPDECK_HOME directories
type MigrateCmd struct {
	Collections []string `help:"Collections to move (apps, mainTodos, shortsIdeas; default: all)" name:"collection"`
	Force       bool     `help:"Skip confirmation" short:"f"`
	From        string   `help:"Source APPDECK_HOME (default: current home)"`
	KeepSource  bool     `help:"Copy instead of move"`
	Overwrite   bool     `help:"Replace collections that already exist at the destination"`
	To          string   `help:"Destination APPDECK_HOME" required:""`
}

// Run executes the migrate command
func (m *MigrateCmd) Run(cli *CLI) error {
	from := m.From
	if from == "" {
		from = config.GetAppdeckHome()
	}
	from = config.ExpandPath(from)
	to := config.ExpandPath(m.To)

	logging.Logger.Info("Executing migrate command", "from", from, "to", to, "keep_source", m.KeepSource)

	verb := "Move"
	if m.KeepSource {
		verb = "Copy"
	}
	prompt := fmt.Sprintf("%s dashboard data from '%s' to '%s'", verb, from, to)
	if !confirmer(cli, m.Force).Confirm(prompt) {
		return nil
	}

	// The current home is held open by the container; release it first
	if err := cli.Container.Close(); err != nil {
		logging.Logger.Warn("Failed to close current store", "error", err)
	}
	cli.Container.store = nil

	result, err := cli.Container.MigrationService.MoveBetweenHomes(context.Background(), services.MoveBetweenHomesParams{
		DestHome:   to,
		Keys:       m.Collections,
		KeepSource: m.KeepSource,
		Overwrite:  m.Overwrite,
		SourceHome: from,
	})
	if err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	fmt.Fprintf(cli.out(), "Moved: %s\n", joinOrNone(result.Moved))
	fmt.Fprintf(cli.out(), "Skipped: %s\n", joinOrNone(result.Skipped))
	return nil
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

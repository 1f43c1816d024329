package cmd

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/logging"
)

// IdeasCmd manages short-video ideas
type IdeasCmd struct {
	Add    IdeasAddCmd    `cmd:"add" help:"Add an idea"`
	Board  IdeasBoardCmd  `cmd:"board" help:"Show ideas grouped by pipeline status"`
	Del    IdeasDelCmd    `cmd:"del" help:"Delete an idea"`
	Edit   IdeasEditCmd   `cmd:"edit" help:"Edit title or description"`
	List   IdeasListCmd   `cmd:"list" help:"List ideas" default:"1"`
	Note   IdeasNoteCmd   `cmd:"note" help:"Set the note of an idea for one status"`
	Status IdeasStatusCmd `cmd:"status" help:"Set the pipeline status (default: advance one step)"`
}

// IdeasListCmd lists ideas
type IdeasListCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
	Status string `help:"Only show ideas in this status"`
}

// Run executes the list command
func (i *IdeasListCmd) Run(cli *CLI) error {
	ideas := cli.Container.Dashboard.Ideas.List()
	if i.Status != "" {
		status, err := domain.ParseIdeaStatus(i.Status)
		if err != nil {
			return err
		}
		filtered := ideas[:0]
		for _, idea := range ideas {
			if idea.Status == status {
				filtered = append(filtered, idea)
			}
		}
		ideas = filtered
	}

	if i.Format != "table" {
		return printStructured(cli.out(), i.Format, ideas)
	}

	w := tabwriter.NewWriter(cli.out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTITLE\tCREATED")
	for _, idea := range ideas {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", idea.ID, idea.Status, idea.Title, idea.CreatedAt.Format("2006-01-02"))
	}
	w.Flush()

	fmt.Fprintf(cli.out(), "\nTotal: %d ideas\n", len(ideas))
	return nil
}

// IdeasBoardCmd prints the pipeline board
type IdeasBoardCmd struct{}

// Run executes the board command
func (i *IdeasBoardCmd) Run(cli *CLI) error {
	ideas := cli.Container.Dashboard.Ideas.List()
	for _, status := range domain.IdeaPipeline {
		var titles []string
		for _, idea := range ideas {
			if idea.Status == status {
				titles = append(titles, fmt.Sprintf("  %s  %s", idea.ID, idea.Title))
			}
		}
		fmt.Fprintf(cli.out(), "%s (%d)\n", status, len(titles))
		if len(titles) > 0 {
			fmt.Fprintln(cli.out(), strings.Join(titles, "\n"))
		}
	}
	return nil
}

// IdeasAddCmd adds an idea
type IdeasAddCmd struct {
	Description string `help:"Description" short:"m"`
	Title       string `arg:"" help:"Title"`
}

// Run executes the add command
func (i *IdeasAddCmd) Run(cli *CLI) error {
	idea, err := cli.Container.Dashboard.Ideas.AddIdea(context.Background(), i.Title, i.Description)
	if err != nil {
		return fmt.Errorf("failed to add idea: %w", err)
	}
	if idea == nil {
		fmt.Fprintln(cli.out(), "Nothing to add: title is empty")
		return nil
	}
	fmt.Fprintf(cli.out(), "Idea %s added\n", idea.ID)
	return nil
}

// IdeasEditCmd edits an idea
type IdeasEditCmd struct {
	Description *string `help:"New description" short:"m"`
	ID          string  `arg:"" help:"Idea id"`
	Title       *string `help:"New title (blank is ignored)"`
}

// Run executes the edit command
func (i *IdeasEditCmd) Run(cli *CLI) error {
	idea, err := cli.Container.Dashboard.Ideas.UpdateIdea(context.Background(), i.ID, domain.IdeaPatch{
		Description: i.Description,
		Title:       i.Title,
	})
	if err != nil {
		return fmt.Errorf("failed to update idea: %w", err)
	}
	fmt.Fprintf(cli.out(), "Idea %s updated\n", idea.ID)
	return nil
}

// IdeasStatusCmd moves an idea through the pipeline
type IdeasStatusCmd struct {
	ID     string `arg:"" help:"Idea id"`
	Status string `arg:"" optional:"" help:"Idea, Planning, Scripting, Filming, Editing or Uploaded"`
}

// Run executes the status command
func (i *IdeasStatusCmd) Run(cli *CLI) error {
	ctx := context.Background()
	var (
		idea *domain.ShortIdea
		err  error
	)
	if i.Status == "" {
		idea, err = cli.Container.Dashboard.Ideas.Advance(ctx, i.ID)
	} else {
		var status domain.IdeaStatus
		if status, err = domain.ParseIdeaStatus(i.Status); err != nil {
			return err
		}
		idea, err = cli.Container.Dashboard.Ideas.SetStatus(ctx, i.ID, status)
	}
	if err != nil {
		return fmt.Errorf("failed to set status: %w", err)
	}

	fmt.Fprintf(cli.out(), "Idea %s is now %s\n", idea.ID, idea.Status)
	return nil
}

// IdeasNoteCmd sets a per-status note
type IdeasNoteCmd struct {
	ID     string `arg:"" help:"Idea id"`
	Status string `help:"Status the note belongs to (default: current status)" short:"s"`
	Text   string `arg:"" help:"Note text"`
}

// Run executes the note command
func (i *IdeasNoteCmd) Run(cli *CLI) error {
	idea, err := cli.Container.Dashboard.Ideas.Get(i.ID)
	if err != nil {
		return err
	}

	status := idea.Status
	if i.Status != "" {
		if status, err = domain.ParseIdeaStatus(i.Status); err != nil {
			return err
		}
	}

	if _, err := cli.Container.Dashboard.Ideas.SetStatusNote(context.Background(), idea.ID, status, i.Text); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}
	fmt.Fprintf(cli.out(), "Note for %s saved on %s\n", status, idea.ID)
	return nil
}

// IdeasDelCmd deletes an idea
type IdeasDelCmd struct {
	Force bool   `help:"Force deletion without confirmation" short:"f"`
	ID    string `arg:"" help:"Idea id"`
}

// Run executes the del command
func (i *IdeasDelCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing ideas del command", "id", i.ID, "force", i.Force)
	deleted, err := cli.Container.Dashboard.Ideas.DeleteIdea(context.Background(), i.ID, confirmer(cli, i.Force))
	if err != nil {
		return fmt.Errorf("failed to delete idea: %w", err)
	}
	if deleted {
		fmt.Fprintf(cli.out(), "Idea %s deleted successfully\n", i.ID)
	}
	return nil
}

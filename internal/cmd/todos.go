package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/renato0307/appdeck/internal/logging"
)

// TodosCmd manages the dashboard-wide todo list
type TodosCmd struct {
	Add    TodosAddCmd    `cmd:"add" help:"Add a todo"`
	Del    TodosDelCmd    `cmd:"del" help:"Delete a todo"`
	List   TodosListCmd   `cmd:"list" help:"List todos" default:"1"`
	Rename TodosRenameCmd `cmd:"rename" help:"Change the text of a todo"`
	Toggle TodosToggleCmd `cmd:"toggle" help:"Toggle a todo between open and done"`
}

// TodosListCmd lists the main todos
type TodosListCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
	Open   bool   `help:"Only show open todos" short:"o"`
}

// Run executes the list command
func (t *TodosListCmd) Run(cli *CLI) error {
	todos := cli.Container.Dashboard.Todos.List()
	if t.Open {
		open := todos[:0]
		for _, todo := range todos {
			if !todo.Completed {
				open = append(open, todo)
			}
		}
		todos = open
	}

	if t.Format != "table" {
		return printStructured(cli.out(), t.Format, todos)
	}

	w := tabwriter.NewWriter(cli.out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDONE\tTEXT")
	for _, todo := range todos {
		fmt.Fprintf(w, "%s\t%s\t%s\n", todo.ID, checkmark(todo.Completed), todo.Text)
	}
	w.Flush()

	fmt.Fprintf(cli.out(), "\nOpen: %d\n", cli.Container.Dashboard.Todos.OpenCount())
	return nil
}

// TodosAddCmd adds a main todo
type TodosAddCmd struct {
	Text string `arg:"" help:"Todo text"`
}

// Run executes the add command
func (t *TodosAddCmd) Run(cli *CLI) error {
	todo, err := cli.Container.Dashboard.Todos.Add(context.Background(), t.Text)
	if err != nil {
		return fmt.Errorf("failed to add todo: %w", err)
	}
	if todo == nil {
		fmt.Fprintln(cli.out(), "Nothing to add: text is empty")
		return nil
	}
	fmt.Fprintf(cli.out(), "Todo %s added\n", todo.ID)
	return nil
}

// TodosToggleCmd toggles a main todo
type TodosToggleCmd struct {
	ID string `arg:"" help:"Todo id"`
}

// Run executes the toggle command
func (t *TodosToggleCmd) Run(cli *CLI) error {
	todo, err := cli.Container.Dashboard.Todos.Toggle(context.Background(), t.ID)
	if err != nil {
		return fmt.Errorf("failed to toggle todo: %w", err)
	}
	fmt.Fprintf(cli.out(), "[%s] %s\n", box(todo.Completed), todo.Text)
	return nil
}

// TodosRenameCmd changes the text of a main todo
type TodosRenameCmd struct {
	ID   string `arg:"" help:"Todo id"`
	Text string `arg:"" help:"New text"`
}

// Run executes the rename command
func (t *TodosRenameCmd) Run(cli *CLI) error {
	todo, err := cli.Container.Dashboard.Todos.Rename(context.Background(), t.ID, t.Text)
	if err != nil {
		return fmt.Errorf("failed to rename todo: %w", err)
	}
	if todo == nil {
		fmt.Fprintln(cli.out(), "Nothing changed")
		return nil
	}
	fmt.Fprintf(cli.out(), "Todo %s renamed\n", todo.ID)
	return nil
}

// TodosDelCmd deletes a main todo
type TodosDelCmd struct {
	ID string `arg:"" help:"Todo id"`
}

// Run executes the del command
func (t *TodosDelCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing todos del command", "id", t.ID)
	if _, err := cli.Container.Dashboard.Todos.Delete(context.Background(), t.ID); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	fmt.Fprintf(cli.out(), "Todo %s deleted\n", t.ID)
	return nil
}

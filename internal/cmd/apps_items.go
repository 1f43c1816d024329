package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/renato0307/appdeck/internal/domain"
)

// AppsTodoCmd manages the todos of an app
type AppsTodoCmd struct {
	Add    AppItemAddCmd `cmd:"add" help:"Add a todo"`
	Del    AppItemIDCmd  `cmd:"del" help:"Delete a todo"`
	Toggle AppItemIDCmd  `cmd:"toggle" help:"Toggle a todo between open and done"`
}

// AppsBlockerCmd manages the blockers of an app
type AppsBlockerCmd struct {
	Add    AppItemAddCmd `cmd:"add" help:"Add a blocker"`
	Del    AppItemIDCmd  `cmd:"del" help:"Delete a blocker"`
	Toggle AppItemIDCmd  `cmd:"toggle" help:"Toggle a blocker between open and resolved"`
}

// AppsBugCmd manages the bugs of an app
type AppsBugCmd struct {
	Add    AppBugAddCmd `cmd:"add" help:"Add a bug"`
	Del    AppItemIDCmd `cmd:"del" help:"Delete a bug"`
	Toggle AppItemIDCmd `cmd:"toggle" help:"Toggle a bug between open and resolved"`
}

// AppItemAddCmd adds a text item to one of the tracking lists
type AppItemAddCmd struct {
	App  string `arg:"" help:"App id or name"`
	Text string `arg:"" help:"Item text"`
}

// AppItemIDCmd addresses one item of a tracking list
type AppItemIDCmd struct {
	App  string `arg:"" help:"App id or name"`
	Item string `arg:"" help:"Item id"`
}

// AppBugAddCmd adds a bug with a priority
type AppBugAddCmd struct {
	App      string `arg:"" help:"App id or name"`
	Priority string `help:"High, Medium or Low" short:"p" default:"Medium"`
	Text     string `arg:"" help:"Bug description"`
}

// trackingList maps "apps <list> <op> ..." to the tracking list it addresses
func trackingList(kctx *kong.Context) domain.TrackingList {
	switch commandWord(kctx, 1) {
	case "blocker":
		return domain.TrackBlockers
	case "bug":
		return domain.TrackBugs
	}
	return domain.TrackTodos
}

// itemOperation returns the operation word of "apps <list> <op> ..."
func itemOperation(kctx *kong.Context) string {
	return commandWord(kctx, 2)
}

func commandWord(kctx *kong.Context, i int) string {
	words := strings.Fields(kctx.Command())
	if i < len(words) {
		return words[i]
	}
	return ""
}

// Run adds the item to the tracking list selected on the command line
func (c *AppItemAddCmd) Run(cli *CLI, kctx *kong.Context) error {
	app, err := resolveApp(cli.Container.Dashboard, c.App)
	if err != nil {
		return err
	}

	ctx := context.Background()
	svc := cli.Container.Dashboard.Apps
	var id string
	switch trackingList(kctx) {
	case domain.TrackBlockers:
		item, err := svc.AddBlocker(ctx, app.ID, c.Text)
		if err != nil {
			return fmt.Errorf("failed to add blocker: %w", err)
		}
		if item != nil {
			id = item.ID
		}
	default:
		item, err := svc.AddTodo(ctx, app.ID, c.Text)
		if err != nil {
			return fmt.Errorf("failed to add todo: %w", err)
		}
		if item != nil {
			id = item.ID
		}
	}

	if id == "" {
		fmt.Fprintln(cli.out(), "Nothing to add: text is empty")
		return nil
	}
	fmt.Fprintf(cli.out(), "Added %s to '%s'\n", id, app.Name)
	return nil
}

// Run executes the bug add command
func (c *AppBugAddCmd) Run(cli *CLI) error {
	app, err := resolveApp(cli.Container.Dashboard, c.App)
	if err != nil {
		return err
	}
	priority, err := domain.ParseBugPriority(c.Priority)
	if err != nil {
		return err
	}

	bug, err := cli.Container.Dashboard.Apps.AddBug(context.Background(), app.ID, c.Text, priority)
	if err != nil {
		return fmt.Errorf("failed to add bug: %w", err)
	}
	if bug == nil {
		fmt.Fprintln(cli.out(), "Nothing to add: text is empty")
		return nil
	}
	fmt.Fprintf(cli.out(), "Added %s (%s) to '%s'\n", bug.ID, bug.Priority, app.Name)
	return nil
}

// Run dispatches toggle and del on the selected tracking list
func (c *AppItemIDCmd) Run(cli *CLI, kctx *kong.Context) error {
	app, err := resolveApp(cli.Container.Dashboard, c.App)
	if err != nil {
		return err
	}

	ctx := context.Background()
	svc := cli.Container.Dashboard.Apps
	del := itemOperation(kctx) == "del"

	switch trackingList(kctx) {
	case domain.TrackBlockers:
		if del {
			_, err = svc.DeleteBlocker(ctx, app.ID, c.Item)
		} else {
			_, err = svc.ToggleBlocker(ctx, app.ID, c.Item)
		}
	case domain.TrackBugs:
		if del {
			_, err = svc.DeleteBug(ctx, app.ID, c.Item)
		} else {
			_, err = svc.ToggleBug(ctx, app.ID, c.Item)
		}
	default:
		if del {
			_, err = svc.DeleteTodo(ctx, app.ID, c.Item)
		} else {
			_, err = svc.ToggleTodo(ctx, app.ID, c.Item)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to %s %s: %w", itemOperation(kctx), c.Item, err)
	}

	fmt.Fprintf(cli.out(), "%s %s done\n", itemOperation(kctx), c.Item)
	return nil
}

// AppsLinkCmd manages the links of an app
type AppsLinkCmd struct {
	Add    AppLinkAddCmd    `cmd:"add" help:"Add a link"`
	Del    AppLinkDelCmd    `cmd:"del" help:"Delete a link by url"`
	Update AppLinkUpdateCmd `cmd:"update" help:"Update label or icon of a link"`
}

// AppLinkAddCmd adds a link
type AppLinkAddCmd struct {
	App   string `arg:"" help:"App id or name"`
	Icon  string `help:"Icon shown next to the label"`
	Label string `help:"Label (defaults to the url)" short:"l"`
	URL   string `arg:"" help:"Link url"`
}

// Run executes the link add command
func (c *AppLinkAddCmd) Run(cli *CLI) error {
	app, err := resolveApp(cli.Container.Dashboard, c.App)
	if err != nil {
		return err
	}
	link := domain.LinkItem{Icon: c.Icon, Label: c.Label, URL: c.URL}
	if _, err := cli.Container.Dashboard.Apps.AddLink(context.Background(), app.ID, link); err != nil {
		return fmt.Errorf("failed to add link: %w", err)
	}
	fmt.Fprintf(cli.out(), "Link %s added to '%s'\n", c.URL, app.Name)
	return nil
}

// AppLinkUpdateCmd updates a link matched by url
type AppLinkUpdateCmd struct {
	App   string `arg:"" help:"App id or name"`
	Icon  string `help:"Icon shown next to the label"`
	Label string `help:"New label" short:"l"`
	URL   string `arg:"" help:"Url of the link to update"`
}

// Run executes the link update command
func (c *AppLinkUpdateCmd) Run(cli *CLI) error {
	app, err := resolveApp(cli.Container.Dashboard, c.App)
	if err != nil {
		return err
	}
	link := domain.LinkItem{Icon: c.Icon, Label: c.Label, URL: c.URL}
	if _, err := cli.Container.Dashboard.Apps.UpdateLink(context.Background(), app.ID, link); err != nil {
		return fmt.Errorf("failed to update link: %w", err)
	}
	fmt.Fprintf(cli.out(), "Link %s updated\n", c.URL)
	return nil
}

// AppLinkDelCmd deletes a link
type AppLinkDelCmd struct {
	App string `arg:"" help:"App id or name"`
	URL string `arg:"" help:"Url of the link to delete"`
}

// Run executes the link del command
func (c *AppLinkDelCmd) Run(cli *CLI) error {
	app, err := resolveApp(cli.Container.Dashboard, c.App)
	if err != nil {
		return err
	}
	if _, err := cli.Container.Dashboard.Apps.DeleteLink(context.Background(), app.ID, c.URL); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	fmt.Fprintf(cli.out(), "Link %s deleted\n", c.URL)
	return nil
}

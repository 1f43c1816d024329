package cmd

// ExportCmd prints the whole dashboard state
type ExportCmd struct {
	Format string `help:"Output format: json or yaml" enum:"json,yaml" default:"json"`
}

// Run executes the export command
func (e *ExportCmd) Run(cli *CLI) error {
	return printStructured(cli.out(), e.Format, cli.Container.Dashboard.Snapshot())
}

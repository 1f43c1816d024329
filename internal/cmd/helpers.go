package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/renato0307/appdeck/internal/domain"
	"github.com/renato0307/appdeck/internal/logging"
	"github.com/renato0307/appdeck/internal/ports"
	"github.com/renato0307/appdeck/internal/services"
)

// printStructured writes v as indented JSON or YAML
func printStructured(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}
}

// resolveApp finds an app by id, falling back to a case-insensitive name match
func resolveApp(dashboard *services.Dashboard, ref string) (*domain.App, error) {
	if app, err := dashboard.Apps.Get(ref); err == nil {
		return app, nil
	}

	ref = strings.TrimSpace(ref)
	for _, app := range dashboard.Apps.List() {
		if strings.EqualFold(app.Name, ref) {
			return &app, nil
		}
	}

	logging.Logger.Debug("App not found", "ref", ref)
	return nil, fmt.Errorf("%w: %s", domain.ErrAppNotFound, ref)
}

// promptConfirmer asks on the terminal and accepts only y or Y
type promptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *promptConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(p.out, "WARNING: %s\n", prompt)
	fmt.Fprint(p.out, "\nContinue? (y/N): ")

	response, _ := p.in.ReadString('\n')
	response = strings.TrimSpace(response)
	if response != "y" && response != "Y" {
		logging.Logger.Info("User cancelled", "prompt", prompt)
		fmt.Fprintln(p.out, "Cancelled")
		return false
	}
	logging.Logger.Info("User confirmed", "prompt", prompt)
	return true
}

// confirmer returns the confirmer for a destructive command
func confirmer(cli *CLI, force bool) ports.Confirmer {
	if force {
		return ports.ConfirmFunc(func(string) bool { return true })
	}
	return &promptConfirmer{in: bufio.NewReader(cli.in()), out: cli.out()}
}

func checkmark(b bool) string {
	if b {
		return "✓"
	}
	return ""
}

func optionalBool(b *bool) string {
	if b == nil {
		return "never"
	}
	if *b {
		return "success"
	}
	return "failed"
}

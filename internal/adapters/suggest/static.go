package suggest

import (
	"context"
	"strings"

	"github.com/renato0307/appdeck/internal/logging"
	"github.com/renato0307/appdeck/internal/ports"
)

// DefaultNames is the offline list of app name suggestions
var DefaultNames = []string{"CodeGenius", "DeployMate", "Stackify", "LaunchPad", "AppHarbor"}

// StaticSuggester implements ports.NameSuggester without any network call
type StaticSuggester struct {
	names []string
}

var _ ports.NameSuggester = (*StaticSuggester)(nil)

// NewStaticSuggester returns a suggester over DefaultNames
func NewStaticSuggester() *StaticSuggester {
	return &StaticSuggester{names: DefaultNames}
}

// Suggest returns the fixed list; the description only feeds the log
func (s *StaticSuggester) Suggest(ctx context.Context, description string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logging.Logger.Debug("Suggesting app names", "description_len", len(strings.TrimSpace(description)))
	return append([]string(nil), s.names...), nil
}

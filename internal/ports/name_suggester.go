package ports

import "context"

// NameSuggester proposes app names from a free-text description
type NameSuggester interface {
	Suggest(ctx context.Context, description string) ([]string, error)
}

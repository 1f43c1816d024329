package ui

import (
	"github.com/charmbracelet/glamour"

	"github.com/renato0307/appdeck/internal/logging"
)

// markdownCache renders documentation with glamour, reusing the last result
// while the text and width stay the same
type markdownCache struct {
	rendered string
	source   string
	width    int
}

func newMarkdownCache() *markdownCache {
	return &markdownCache{width: -1}
}

// Render returns source rendered for width; the raw text is returned when rendering fails
func (c *markdownCache) Render(source string, width int) string {
	if source == c.source && width == c.width {
		return c.rendered
	}

	wrap := max(width-4, 20)
	rendered := source
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(wrap))
	if err == nil {
		rendered, err = r.Render(source)
	}
	if err != nil {
		logging.Logger.Warn("Failed to render markdown", "error", err)
		rendered = source
	}

	c.rendered, c.source, c.width = rendered, source, width
	return rendered
}

package ui

import (
	"fmt"
	"os"

	"github.com/renato0307/appdeck/internal/theme"
	"github.com/renato0307/appdeck/internal/version"
)

// renderHeader renders the application name and tagline.
// Version details are shown when APPDECK_DEBUG is set.
func renderHeader(subtitle string) string {
	appNameLine := theme.AppNameStyle.Render("appdeck")
	if os.Getenv("APPDECK_DEBUG") == "1" {
		b := version.Get()
		appNameLine += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			b.Version, b.ShortCommit(), b.Date, b.GoVersion))
	}

	result := appNameLine + "\n"
	result += theme.TaglineStyle.Render(version.Tagline)

	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}

	result += "\n"
	return result
}

// renderDialogHeader is used by Dialog only; forms are wrapped in a Dialog instead of calling it
func renderDialogHeader(formTitle string) string {
	return renderHeader(formTitle)
}

package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// App status colors
const (
	ColorRunning Color = "2" // Green
	ColorStopped Color = "8" // Gray
)

// Dev stage colors
const (
	ColorStageDeployed    Color = "46"  // Bright green
	ColorStageDevelopment Color = "214" // Orange
	ColorStagePlanning    Color = "33"  // Blue
)

// Bug priority colors
const (
	ColorPriorityHigh   Color = "196" // Red
	ColorPriorityLow    Color = "245" // Gray
	ColorPriorityMedium Color = "226" // Yellow
)

// UI semantic colors
const (
	ColorDone      Color = "242" // Dim gray - completed items
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSelected  Color = "237" // Dark gray - selected row background
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSuccess   Color = "2"   // Green
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorTabActive Color = "205" // Pink
)

// IdeaStatusColors colors the short-video pipeline, one per step in order
var IdeaStatusColors = []Color{"245", "33", "141", "214", "226", "46"}

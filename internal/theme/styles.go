package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Background(ColorSelected).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Tab bar styles
var (
	TabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTabActive).
			Underline(true).
			Padding(0, 1)

	TabStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Padding(0, 1)
)

// Status icon styles
var (
	RunningIconStyle = lipgloss.NewStyle().
				Foreground(ColorRunning)

	StoppedIconStyle = lipgloss.NewStyle().
				Foreground(ColorStopped)
)

// Details view styles
var (
	DoneStyle = lipgloss.NewStyle().
			Foreground(ColorDone).
			Strikethrough(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(16)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Tip styles
var (
	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// StageStyle returns the style used to render a dev stage label
func StageStyle(stage string) lipgloss.Style {
	color := ColorMuted
	switch stage {
	case "Planning":
		color = ColorStagePlanning
	case "Development":
		color = ColorStageDevelopment
	case "Deployed":
		color = ColorStageDeployed
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// PriorityStyle returns the style used to render a bug priority
func PriorityStyle(priority string) lipgloss.Style {
	color := ColorPriorityMedium
	switch priority {
	case "High":
		color = ColorPriorityHigh
	case "Low":
		color = ColorPriorityLow
	}
	return lipgloss.NewStyle().Foreground(color)
}

// IdeaStatusStyle returns the style for the idea pipeline step at index
func IdeaStatusStyle(index int) lipgloss.Style {
	if index < 0 || index >= len(IdeaStatusColors) {
		return MutedStyle
	}
	return lipgloss.NewStyle().Foreground(IdeaStatusColors[index])
}

// Action palette styles
var (
	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(ColorTabActive)

	PaletteBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.Border{Top: "─", Bottom: "─"}).
				BorderForeground(ColorMuted).
				Padding(0, 1)

	PaletteItemSelectedStyle = lipgloss.NewStyle().
					Foreground(ColorHighlight).
					Background(ColorSelected).
					Bold(true)

	PaletteItemStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	PaletteShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	PaletteTitleStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)
)

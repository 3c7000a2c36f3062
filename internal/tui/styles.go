package tui

import "github.com/charmbracelet/lipgloss"

// Darkroom palette: safelight amber accents on neutral text.
var (
	textColor    = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#d9d9d9"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#6b6b6b", Dark: "#9e9e9e"}
	accentColor  = lipgloss.AdaptiveColor{Light: "#a34700", Dark: "#ffaf3d"}
	onAccent     = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#1a1a1a"}
	successColor = lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#7ee787"}
	warningColor = lipgloss.AdaptiveColor{Light: "#b58900", Dark: "#f1fa8c"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#c62828", Dark: "#ff6b6b"}
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Margin(1, 0, 2, 0).
			Align(lipgloss.Center)

	menuItemStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Margin(0, 1).
			Foreground(textColor)

	selectedMenuItemStyle = menuItemStyle.
				Foreground(onAccent).
				Background(accentColor).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Margin(2, 0, 0, 0)

	labelStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	// statsStyle frames the post-conversion counts like a contact sheet.
	statsStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(accentColor).
			PaddingLeft(1)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)

// GetAdaptiveStyles returns the title, form and help styles sized to the
// terminal width.
func GetAdaptiveStyles(width, height int) (titleStyle, formStyle, helpStyle lipgloss.Style) {
	maxWidth := width - 4

	adaptiveTitleStyle := lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true).
		Margin(1, 0, 2, 0).
		Align(lipgloss.Center).
		Width(maxWidth)

	adaptiveFormStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(1, 2).
		Margin(1, 0).
		Width(maxWidth)

	adaptiveHelpStyle := lipgloss.NewStyle().
		Foreground(mutedColor).
		Margin(2, 0, 0, 0).
		Width(maxWidth)

	return adaptiveTitleStyle, adaptiveFormStyle, adaptiveHelpStyle
}

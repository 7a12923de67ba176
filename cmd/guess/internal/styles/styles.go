package styles

import "github.com/charmbracelet/lipgloss"

// Terminal palette (ANSI 16 so the game follows the user's theme).
var (
	ColorFg      = lipgloss.Color("7")
	ColorMuted   = lipgloss.Color("8")
	ColorAccent  = lipgloss.Color("4")
	ColorError   = lipgloss.Color("1")
	ColorSuccess = lipgloss.Color("2")
	ColorWarning = lipgloss.Color("3")
)

// Centralized style definitions for the TUI.
var (
	// Title bar.
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	MenuHintStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	// Game area.
	PromptStyle   = lipgloss.NewStyle().Bold(true)
	ButtonStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	ResultStyle   = lipgloss.NewStyle().Foreground(ColorWarning)
	CorrectStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
	ScoreStyle    = lipgloss.NewStyle().Foreground(ColorFg)
	SectionMargin = lipgloss.NewStyle().MarginTop(1)

	// Input styles.
	FocusedBorder  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorSuccess)
	DisabledBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorMuted)

	// Menu styles.
	MenuBorder     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorAccent).Padding(0, 1)
	MenuTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	MenuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	MenuItemStyle  = lipgloss.NewStyle().Foreground(ColorFg)
	MenuAccelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	MenuSepStyle   = lipgloss.NewStyle().Foreground(ColorMuted)

	// Dialog styles.
	DialogBorder      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorWarning).Padding(1, 2)
	DialogErrorBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorError).Padding(1, 2)
	DialogTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorWarning)
	DialogButtonStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	// General utility styles.
	DimStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

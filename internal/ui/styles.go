package ui

import "github.com/charmbracelet/lipgloss"

// Calm deep-water palette
var (
	ColorBright  = lipgloss.Color("#9FE8E0")
	ColorPrimary = lipgloss.Color("#5FC4CF")
	ColorMid     = lipgloss.Color("#3E93A8")
	ColorDim     = lipgloss.Color("#27616F")
	ColorFaint   = lipgloss.Color("#14333D")
	ColorWarning = lipgloss.Color("#E8C170")
	ColorBarBg   = lipgloss.Color("#0B2229")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorPrimary).
			Padding(0, 1)

	StyleStatusBreathing = lipgloss.NewStyle().
				Foreground(ColorBright).
				Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleThrottling = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorDim)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBright)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorMid)

	StyleValue = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorDim)

	StylePresetActive = lipgloss.NewStyle().
				Foreground(ColorBright).
				Bold(true)

	StylePresetInactive = lipgloss.NewStyle().
				Foreground(ColorFaint)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorFaint)

	StyleSparkline = lipgloss.NewStyle().
			Foreground(ColorPrimary)
)

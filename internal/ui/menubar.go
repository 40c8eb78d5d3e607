package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"stillwave.dev/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, preset string, paused bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"Tab", " settings"},
		{"M", "otion"},
		{"Space", " pause"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := ""
	if paused {
		status = StyleStatusPaused.Render("PAUSED")
	} else {
		status = StyleStatusBreathing.Render("BREATHING")
	}

	presetInfo := StyleMenuLabel.Render(fmt.Sprintf("Quality: %s", preset))

	left := StyleMenuKey.Render(title) + menu
	right := status + "  " + presetInfo + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleMenuBar.Width(width).Render(left + padding + right)
}

package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout stacks the menu bar, body panel, and status bar.
func ComposeLayout(menuBar, body, statusBar string) string {
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, body, statusBar)
}

// RenderScenePanel wraps the scene content with a styled border and a
// caption line. The scene rendering itself happens externally to avoid
// import cycles.
func RenderScenePanel(width, height int, sceneContent, caption string) string {
	content := sceneContent + "\n" + caption
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}

// RenderCaption centers the phase caption under the orb.
func RenderCaption(width int, text string) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad < 0 {
		pad = 0
	}
	padding := ""
	for i := 0; i < pad; i++ {
		padding += " "
	}
	return padding + StyleLabel.Render(text)
}

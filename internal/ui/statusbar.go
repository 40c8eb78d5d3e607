package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"stillwave.dev/internal/quality"
)

// RenderStatusBar renders the bottom status bar: breath phase, presence
// count, and the latest performance snapshot.
func RenderStatusBar(width int, phaseName string, presence int, metrics *quality.PerformanceState, level quality.Level) string {
	phase := StyleStatusBreathing.Render(fmt.Sprintf("[%s]", phaseName))

	perf := "warming up"
	if metrics != nil {
		perf = fmt.Sprintf("%2.0f fps  q:%.0f%%", metrics.AvgFPS, metrics.Score*100)
	}

	info := fmt.Sprintf(" %s breathing with you  |  %s  |  quality: %s",
		humanCount(presence), perf, level)

	content := phase + StyleStatusBar.Foreground(ColorPrimary).Render(info)
	if metrics != nil && metrics.Throttling {
		content += " " + StyleThrottling.Render("[adjusting detail...]")
	}

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}

func humanCount(n int) string {
	if n == 1 {
		return "1 person"
	}
	return fmt.Sprintf("%d people", n)
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stillwave.dev/internal/quality"
)

// RenderSettingsPanel renders the settings overlay that replaces the scene
// area: preset selection, the live performance snapshot, and an fps history
// sparkline.
func RenderSettingsPanel(width, height int, preset quality.Preset, level quality.Level,
	metrics *quality.PerformanceState, fpsHistory []float64, reducedMotion bool) string {

	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	title := StylePanelTitle.Render("SETTINGS")
	escHint := StyleHelp.Render("[Tab]")
	titleLine := title + strings.Repeat(" ", max(0, innerW-lipgloss.Width(title)-lipgloss.Width(escHint))) + escHint

	sep := StyleSeparator.Render(strings.Repeat("-", innerW))

	lines := []string{titleLine, sep, ""}

	// Preset selector
	lines = append(lines, StyleLabel.Render("  Quality preset   ")+renderPresetRow(preset))
	lines = append(lines, StyleHelp.Render("                   [A]uto  [1]low  [2]medium  [3]high"))
	lines = append(lines, "")

	// Effective state fields
	fields := []struct{ label, value string }{
		{"Effective level", level.String()},
		{"Motion", motionLabel(reducedMotion)},
	}
	if metrics != nil {
		fields = append(fields,
			struct{ label, value string }{"Smoothed fps", fmt.Sprintf("%.1f", metrics.AvgFPS)},
			struct{ label, value string }{"Quality score", fmt.Sprintf("%.0f%%", metrics.Score*100)},
			struct{ label, value string }{"Throttling", yesNo(metrics.Throttling)},
		)
	} else {
		fields = append(fields, struct{ label, value string }{"Smoothed fps", "warming up"})
	}

	for _, f := range fields {
		lines = append(lines, StyleLabel.Render(fmt.Sprintf("  %-16s ", f.label))+StyleValue.Render(f.value))
	}

	lines = append(lines, "")

	// Rendering budgets for the effective level
	s := quality.SettingsFor(level)
	lines = append(lines, StyleLabel.Render("  Budgets          ")+
		StyleValue.Render(fmt.Sprintf("%d particles, %d rings, glow %s",
			s.ParticleCount, s.RingCount, onOff(s.GlowEnabled))))

	lines = append(lines, "")

	// FPS sparkline
	if len(fpsHistory) > 0 {
		sparkW := min(innerW-4, s.SparklineWidth)
		if sparkW < 10 {
			sparkW = 10
		}
		lines = append(lines, StyleLabel.Render("  FPS history:"))
		lines = append(lines, "  "+StyleSparkline.Render(renderSparkline(fpsHistory, sparkW)))
	}

	// Pad to fill height
	for len(lines) < height-2 {
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")
	return StylePanelActive.Width(width - 2).Height(height - 2).Render(content)
}

func renderPresetRow(active quality.Preset) string {
	parts := make([]string, 0, 4)
	for _, p := range []quality.Preset{quality.PresetAuto, quality.PresetLow, quality.PresetMedium, quality.PresetHigh} {
		if p == active {
			parts = append(parts, StylePresetActive.Render("["+string(p)+"]"))
		} else {
			parts = append(parts, StylePresetInactive.Render(" "+string(p)+" "))
		}
	}
	return strings.Join(parts, " ")
}

func renderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	chars := []byte{'_', '.', '-', '~', '^'}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	rng := maxV - minV
	if rng < 1 {
		rng = 1
	}

	start := 0
	if len(values) > width {
		start = len(values) - width
	}

	var sb strings.Builder
	for i := start; i < len(values); i++ {
		idx := int((values[i] - minV) / rng * float64(len(chars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		sb.WriteByte(chars[idx])
	}

	return sb.String()
}

func motionLabel(reduced bool) string {
	if reduced {
		return "reduced"
	}
	return "full"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

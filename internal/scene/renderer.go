package scene

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stillwave.dev/internal/breath"
	"stillwave.dev/internal/config"
	"stillwave.dev/internal/quality"
)

var (
	colorCenter   = lipgloss.Color("#9FE8E0")
	colorDimRing  = lipgloss.Color("#1B4F5E")
	colorParticle = lipgloss.Color("#3E7C8F")
	colorGlow     = lipgloss.Color("#123340")

	styleCenter = lipgloss.NewStyle().Foreground(colorCenter).Bold(true)
	styleGlow   = lipgloss.NewStyle().Foreground(colorGlow)
)

// ringColor maps a breath brightness value to the ring color ramp.
func ringColor(brightness float64) lipgloss.Color {
	switch {
	case brightness > 0.85:
		return lipgloss.Color("#9FE8E0")
	case brightness > 0.6:
		return lipgloss.Color("#5FC4CF")
	case brightness > 0.35:
		return lipgloss.Color("#3E93A8")
	case brightness > 0.12:
		return lipgloss.Color("#27616F")
	default:
		return colorDimRing
	}
}

// particleColor dims each mote by the breath brightness and its own shade.
func particleColor(brightness, shade float64) lipgloss.Color {
	v := 0.25 + 0.75*brightness*shade
	switch {
	case v > 0.7:
		return lipgloss.Color("#7FD4C8")
	case v > 0.45:
		return colorParticle
	default:
		return lipgloss.Color("#234A58")
	}
}

// Render produces the breathing scene as a styled string: a pulsing orb of
// concentric rings whose size follows the breath scale and whose brightness
// follows the breath opacity, surrounded by a drifting particle field.
// Ring count, particle count, glow, and trails come from the quality
// budgets; no branching on the quality level happens here.
//
// Everything is a pure function of (now, state, settings), so any number of
// callers can render the same instant and agree.
func Render(width, height int, now float64, state breath.State, settings quality.Settings, reducedMotion bool) string {
	if width < 10 || height < 5 {
		return ""
	}

	centerX := width / 2
	centerY := height / 2
	maxRadius := float64(min(centerX-1, int(float64(centerY-1)/config.AspectRatio)))
	if maxRadius < 3 {
		maxRadius = 3
	}

	brightness := breath.Opacity(state.PhaseIndex, state.PhaseProgress)
	scale := breath.Scale(state.PhaseIndex, state.PhaseProgress)
	if reducedMotion {
		// Hold the geometry still; only the brightness breathes.
		scale = 0.75
	}

	orbRadius := maxRadius * scale
	ringRadii := make([]float64, settings.RingCount)
	for i := range ringRadii {
		ringRadii[i] = orbRadius * float64(i+1) / float64(settings.RingCount)
	}

	cells := particleCells(now, maxRadius, settings)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			sb.WriteString(renderCell(col, row, centerX, centerY, maxRadius, orbRadius,
				ringRadii, brightness, settings.GlowEnabled, cells))
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

type particleCell struct {
	shade float64
	trail bool
}

// particleCells lays out the particle field for this frame, keyed by
// row-major offset from center packed into a map.
func particleCells(now, radius float64, settings quality.Settings) map[[2]int]particleCell {
	cells := make(map[[2]int]particleCell, settings.ParticleCount*(1+settings.TrailLength))
	for i := 0; i < settings.ParticleCount; i++ {
		p := particleAt(i)
		for _, pos := range p.trailPositions(now, radius, config.AspectRatio, settings.TrailLength) {
			if _, taken := cells[pos]; !taken {
				cells[pos] = particleCell{shade: p.shade * 0.4, trail: true}
			}
		}
		dc, dr := p.position(now, radius, config.AspectRatio)
		cells[[2]int{dc, dr}] = particleCell{shade: p.shade}
	}
	return cells
}

func renderCell(col, row, centerX, centerY int, maxRadius, orbRadius float64,
	ringRadii []float64, brightness float64, glow bool, cells map[[2]int]particleCell) string {

	dist := CellDistance(col, row, centerX, centerY)
	if dist > maxRadius+0.5 {
		return " "
	}

	if col == centerX && row == centerY {
		return styleCenter.Render("+")
	}

	angle := CellAngle(col, row, centerX, centerY)
	for i := len(ringRadii) - 1; i >= 0; i-- {
		if absDiff(dist, ringRadii[i]) < 0.8 {
			// Outer rings carry the full brightness; inner rings fade.
			ringBright := brightness * (0.4 + 0.6*float64(i+1)/float64(len(ringRadii)))
			sty := lipgloss.NewStyle().Foreground(ringColor(ringBright))
			if i == len(ringRadii)-1 && brightness > 0.85 {
				sty = sty.Bold(true)
			}
			return sty.Render(string(RingChar(angle)))
		}
	}

	if cell, ok := cells[[2]int{col - centerX, row - centerY}]; ok {
		ch := "*"
		if cell.trail {
			ch = "."
		}
		return lipgloss.NewStyle().Foreground(particleColor(brightness, cell.shade)).Render(ch)
	}

	// Soft halo just outside the orb edge while it is bright.
	if glow && brightness > 0.5 && dist > orbRadius && dist < orbRadius+2.5 {
		return styleGlow.Render("·")
	}

	return " "
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

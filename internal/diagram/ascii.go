package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gopsc/internal/prestress"
)

// DrawLossCurves plots the tendon stress along the span after friction,
// after immediate losses and after all losses.
func DrawLossCurves(table *prestress.LossTable) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  TENDON STRESS ALONG SPAN (MPa)\n")
	sb.WriteString("  ──────────────────────────────\n\n")

	graph := asciigraph.PlotMany(
		[][]float64{table.Friction, table.Immediate, table.Final},
		asciigraph.Height(14),
		asciigraph.Width(64),
		asciigraph.Precision(0),
	)
	sb.WriteString(graph)
	sb.WriteString("\n\n")
	sb.WriteString("  Curves, top to bottom: friction / immediate / final\n")
	sb.WriteString(fmt.Sprintf("  Anchorage penetration length: %.2f m\n", table.PenetrationLength))

	return sb.String()
}

// DrawCableProfile plots the tendon eccentricity along the span. The
// vertical axis is flipped so the drape reads downward like the tendon.
func DrawCableProfile(positions, eccentricity []float64) string {
	var sb strings.Builder

	flipped := make([]float64, len(eccentricity))
	for i, e := range eccentricity {
		flipped[i] = -e
	}

	sb.WriteString("\n")
	sb.WriteString("  TENDON PROFILE (eccentricity below centroid, m)\n")
	sb.WriteString("  ───────────────────────────────────────────────\n\n")
	sb.WriteString(asciigraph.Plot(flipped,
		asciigraph.Height(10),
		asciigraph.Width(64),
		asciigraph.Precision(2),
	))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("  Span: %.2f m, plotted at %d stations\n",
		positions[len(positions)-1], len(positions)))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

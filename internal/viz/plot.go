// Package viz renders concentration profiles in the terminal, both as static
// before/after plots and as a live view of a running simulation.
package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"diffsim/internal/diffusion"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// RenderProfile plots a single concentration profile.
func RenderProfile(c diffusion.Field, caption string) string {
	graph := asciigraph.Plot(c,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
	return graphStyle.Render(graph)
}

// RenderComparison overlays the initial and final profiles in one plot.
func RenderComparison(initial, final diffusion.Field, caption string) string {
	graph := asciigraph.PlotMany([][]float64{initial, final},
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
	)
	return graphStyle.Render(graph)
}

func statLine(label string, format string, args ...any) string {
	return labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf(format, args...))
}

package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// Report renders a headless run as a styled terminal panel.
func Report(cfg *Config, res *HeadlessResult) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %dx%d", cfg.Sim, cfg.Width, cfg.Height)))
	b.WriteString("\n")
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}
	row("strategy", cfg.Strategy)
	row("frames", fmt.Sprintf("%d", res.Frames))
	row("dots", fmt.Sprintf("%d", cfg.Dots))
	remaining := 0
	if n := len(res.Remaining); n > 0 {
		remaining = res.Remaining[n-1]
	}
	row("remaining", fmt.Sprintf("%d", remaining))
	row("throughput", res.Throughput.String())

	if len(res.Remaining) > 1 {
		data := make([]float64, len(res.Remaining))
		for i, v := range res.Remaining {
			data[i] = float64(v)
		}
		chart := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("remaining dots per frame"))
		b.WriteString(graphStyle.Render(chart))
	}
	return panelStyle.Render(b.String())
}

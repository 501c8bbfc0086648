package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a determinate 0-100 bar
type ProgressBar struct {
	Width       int
	Percent     float64
	FilledColor lipgloss.TerminalColor
	EmptyColor  lipgloss.TerminalColor
	ShowPercent bool
}

// NewProgressBar creates a new progress bar
func NewProgressBar(width int) *ProgressBar {
	return &ProgressBar{
		Width:       width,
		FilledColor: lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"},
		EmptyColor:  lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
		ShowPercent: true,
	}
}

// SetPercent updates the progress, clamped to 0..100
func (p *ProgressBar) SetPercent(percent float64) *ProgressBar {
	p.Percent = math.Max(0, math.Min(100, percent))
	return p
}

// SetColors sets the filled and empty colours
func (p *ProgressBar) SetColors(filled, empty lipgloss.TerminalColor) *ProgressBar {
	p.FilledColor = filled
	p.EmptyColor = empty
	return p
}

// Filled returns how many cells are drawn filled
func (p *ProgressBar) Filled() int {
	if p.Width <= 0 {
		return 0
	}
	return int(float64(p.Width) * p.Percent / 100)
}

// Render renders the progress bar
func (p *ProgressBar) Render() string {
	filledWidth := p.Filled()
	emptyWidth := max(0, p.Width-filledWidth)

	filled := lipgloss.NewStyle().Foreground(p.FilledColor).Bold(true).Render(strings.Repeat("█", filledWidth))
	empty := lipgloss.NewStyle().Foreground(p.EmptyColor).Render(strings.Repeat("░", emptyWidth))

	result := fmt.Sprintf("[%s%s]", filled, empty)
	if p.ShowPercent {
		result += fmt.Sprintf(" %3d%%", int(math.Round(p.Percent)))
	}
	return result
}

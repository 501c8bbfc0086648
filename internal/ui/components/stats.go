package components

import (
	"github.com/charmbracelet/lipgloss"
)

// StatsCard represents a statistics card component
type StatsCard struct {
	Title       string
	Value       string
	Description string
	Trend       string
	Icon        string
	Width       int

	ValueColor  lipgloss.TerminalColor
	TitleColor  lipgloss.TerminalColor
	MutedColor  lipgloss.TerminalColor
	BorderColor lipgloss.TerminalColor
}

// NewStatsCard creates a new stats card
func NewStatsCard(title, value, description string) *StatsCard {
	return &StatsCard{
		Title:       title,
		Value:       value,
		Description: description,
		Width:       22,
		ValueColor:  lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#06B6D4"},
		TitleColor:  lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"},
		MutedColor:  lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
		BorderColor: lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"},
	}
}

// SetIcon sets the icon for the card
func (s *StatsCard) SetIcon(icon string) *StatsCard {
	s.Icon = icon
	return s
}

// SetTrend sets the trend shown next to the description
func (s *StatsCard) SetTrend(trend string) *StatsCard {
	s.Trend = trend
	return s
}

// SetWidth sets the width of the card
func (s *StatsCard) SetWidth(width int) *StatsCard {
	s.Width = width
	return s
}

// SetValueColor sets the accent colour of the value and description
func (s *StatsCard) SetValueColor(c lipgloss.TerminalColor) *StatsCard {
	s.ValueColor = c
	return s
}

// Render renders the stats card
func (s *StatsCard) Render() string {
	title := lipgloss.NewStyle().Foreground(s.TitleColor).Bold(true).Render(s.Title)
	if s.Icon != "" {
		title = s.Icon + " " + title
	}

	value := lipgloss.NewStyle().Foreground(s.TitleColor).Bold(true).Render(s.Value)
	description := lipgloss.NewStyle().Foreground(s.ValueColor).Render(s.Description)
	if s.Trend != "" {
		description += lipgloss.NewStyle().Foreground(s.MutedColor).Render("  " + s.Trend)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, value, description)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.BorderColor).
		Padding(0, 1).
		Width(s.Width).
		Render(content)
}

// CardGrid lays cards out in rows of a fixed column count
type CardGrid struct {
	cards   []*StatsCard
	columns int
}

// NewCardGrid creates a grid with the given number of columns
func NewCardGrid(columns int) *CardGrid {
	return &CardGrid{columns: max(1, columns)}
}

// AddCard appends a card to the grid
func (g *CardGrid) AddCard(card *StatsCard) *CardGrid {
	g.cards = append(g.cards, card)
	return g
}

// Render renders the grid
func (g *CardGrid) Render() string {
	if len(g.cards) == 0 {
		return ""
	}

	rows := make([]string, 0, (len(g.cards)+g.columns-1)/g.columns)
	for i := 0; i < len(g.cards); i += g.columns {
		end := min(i+g.columns, len(g.cards))
		rendered := make([]string, 0, end-i)
		for _, card := range g.cards[i:end] {
			rendered = append(rendered, card.Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

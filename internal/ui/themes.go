package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/cardiagno/internal/health"
	"github.com/yildizm/cardiagno/internal/upload"
)

// Theme is a set of adaptive colours; each entry has a light and a dark
// terminal variant
type Theme struct {
	Name string

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	Border     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Highlight  lipgloss.AdaptiveColor
	Selected   lipgloss.AdaptiveColor

	Insight  lipgloss.AdaptiveColor
	Progress lipgloss.AdaptiveColor
}

func shade(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// themes in the order they are listed to the user
var themes = []Theme{
	{
		Name:       "default",
		Primary:    shade("#B91C1C", "#F87171"),
		Secondary:  shade("#6B7280", "#9CA3AF"),
		Success:    shade("#059669", "#10B981"),
		Warning:    shade("#D97706", "#F59E0B"),
		Error:      shade("#DC2626", "#EF4444"),
		Info:       shade("#1D4ED8", "#60A5FA"),
		Border:     shade("#D1D5DB", "#374151"),
		Foreground: shade("#111827", "#F9FAFB"),
		Muted:      shade("#6B7280", "#9CA3AF"),
		Highlight:  shade("#FEE2E2", "#3F1D1D"),
		Selected:   shade("#FECACA", "#7F1D1D"),
		Insight:    shade("#7C3AED", "#A855F7"),
		Progress:   shade("#2563EB", "#3B82F6"),
	},
	{
		Name:       "high-contrast",
		Primary:    shade("#000000", "#FFFFFF"),
		Secondary:  shade("#444444", "#DDDDDD"),
		Success:    shade("#006600", "#00FF00"),
		Warning:    shade("#994C00", "#FFAA00"),
		Error:      shade("#CC0000", "#FF4444"),
		Info:       shade("#0044AA", "#66AAFF"),
		Border:     shade("#000000", "#FFFFFF"),
		Foreground: shade("#000000", "#FFFFFF"),
		Muted:      shade("#444444", "#CCCCCC"),
		Highlight:  shade("#FFFF00", "#444444"),
		Selected:   shade("#CCCCCC", "#333333"),
		Insight:    shade("#800080", "#FF80FF"),
		Progress:   shade("#0044AA", "#66AAFF"),
	},
	{
		Name:       "minimal",
		Primary:    shade("#2D3748", "#E2E8F0"),
		Secondary:  shade("#718096", "#A0AEC0"),
		Success:    shade("#2F855A", "#68D391"),
		Warning:    shade("#C05621", "#F6AD55"),
		Error:      shade("#C53030", "#FC8181"),
		Info:       shade("#2B6CB0", "#63B3ED"),
		Border:     shade("#E2E8F0", "#2D3748"),
		Foreground: shade("#2D3748", "#F7FAFC"),
		Muted:      shade("#A0AEC0", "#718096"),
		Highlight:  shade("#F7FAFC", "#2D3748"),
		Selected:   shade("#EDF2F7", "#2D3748"),
		Insight:    shade("#553C9A", "#B794F6"),
		Progress:   shade("#4A5568", "#CBD5E0"),
	},
}

var currentTheme = themes[0]

// GetTheme returns the active theme
func GetTheme() Theme {
	return currentTheme
}

// ThemeNames lists the selectable theme names
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// SetThemeByName activates a theme. It reports false and leaves the
// active theme alone when name is unknown.
func SetThemeByName(name string) bool {
	for _, t := range themes {
		if t.Name == name {
			currentTheme = t
			return true
		}
	}
	return false
}

// ToneColor maps a semantic tone from the health data onto the theme
func (t *Theme) ToneColor(tone health.Tone) lipgloss.AdaptiveColor {
	switch tone {
	case health.ToneGreen:
		return t.Success
	case health.ToneBlue:
		return t.Info
	case health.ToneAmber:
		return t.Warning
	case health.ToneRed:
		return t.Error
	default:
		return t.Muted
	}
}

// TierColor returns the colour a score is drawn with
func (t *Theme) TierColor(score int) lipgloss.AdaptiveColor {
	return t.ToneColor(health.TierForScore(score).Tone())
}

// StatusColor returns the colour of an upload status
func (t *Theme) StatusColor(status upload.Status) lipgloss.AdaptiveColor {
	switch status {
	case upload.StatusCompleted:
		return t.Success
	case upload.StatusError:
		return t.Error
	default:
		return t.Progress
	}
}

// Styles are the lipgloss styles derived from a theme
type Styles struct {
	Theme Theme

	Header    lipgloss.Style
	Subheader lipgloss.Style
	Body      lipgloss.Style
	Muted     lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Insight lipgloss.Style

	// navigation entries
	Selected  lipgloss.Style
	Highlight lipgloss.Style

	// upload list rows
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style

	Box            lipgloss.Style
	Panel          lipgloss.Style
	Brand          lipgloss.Style
	Card           lipgloss.Style
	Chip           lipgloss.Style
	Banner         lipgloss.Style
	DropZone       lipgloss.Style
	DropZoneActive lipgloss.Style
}

// GetStyles builds the styles for the active theme
func GetStyles() *Styles {
	theme := GetTheme()
	bold := func(c lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}

	return &Styles{
		Theme: theme,

		Header:    bold(theme.Primary),
		Subheader: bold(theme.Secondary),
		Body:      lipgloss.NewStyle().Foreground(theme.Foreground),
		Muted:     lipgloss.NewStyle().Foreground(theme.Muted),

		Success: bold(theme.Success),
		Warning: bold(theme.Warning),
		Error:   bold(theme.Error),
		Info:    lipgloss.NewStyle().Foreground(theme.Info),
		Insight: bold(theme.Insight),

		Selected:  bold(theme.Primary).Background(theme.Selected),
		Highlight: lipgloss.NewStyle().Background(theme.Highlight).Foreground(theme.Primary),

		ListItem:     lipgloss.NewStyle().Padding(0, 2),
		ListSelected: bold(theme.Primary).Background(theme.Selected).Padding(0, 2),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 2),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		Brand: bold(theme.Primary),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		Chip: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Foreground).
			Padding(0, 1),
		Banner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Success).
			Foreground(theme.Success).
			Padding(0, 1),
		DropZone: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(theme.Border).
			Padding(1, 2).
			Align(lipgloss.Center),
		DropZoneActive: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(theme.Primary).
			Background(theme.Selected).
			Padding(1, 2).
			Align(lipgloss.Center),
	}
}

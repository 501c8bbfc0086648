package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/cardiagno/internal/emoji"
)

type placeholderCopy struct {
	title    string
	subtitle string
	soon     string
}

var placeholders = map[Tab]placeholderCopy{
	TabTrends: {
		"Health Trends",
		"Track your health metrics over time with interactive charts and trend analysis.",
		"Health trends visualization coming soon...",
	},
	TabHistory: {
		"Report History",
		"View and manage all your uploaded medical reports.",
		"Report history management coming soon...",
	},
	TabAlerts: {
		"Health Alerts",
		"Manage your health notifications and alert preferences.",
		"Alert management system coming soon...",
	},
	TabReports: {
		"My Reports",
		"Access and download your health analysis reports.",
		"Report generation and management coming soon...",
	},
	TabSettings: {
		"Settings",
		"Customize your CardiagnoAI experience and preferences.",
		"Settings configuration coming soon...",
	},
}

// NewPlaceholderView builds a static page for a tab that has no content yet
func NewPlaceholderView(tab Tab, keys KeyMap) View {
	text, ok := placeholders[tab]
	if !ok {
		text = placeholderCopy{string(tab), "", "Coming soon..."}
	}
	return newScrollView(tab, keys, func(width int) string {
		styles := GetStyles()
		body := styles.Box.Width(max(30, width-4)).Render(
			styles.Muted.Render(emoji.GetEmoji("soon") + " " + text.soon),
		)
		return lipgloss.JoinVertical(lipgloss.Left,
			pageHeader(text.title, text.subtitle),
			"",
			body,
		)
	})
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/cardiagno/internal/emoji"
	"github.com/yildizm/cardiagno/internal/health"
	"github.com/yildizm/cardiagno/internal/ui/components"
)

// NewOverviewView builds the dashboard page
func NewOverviewView(keys KeyMap) View {
	data := health.Overview()
	return newScrollView(TabDashboard, keys, func(width int) string {
		return renderOverview(data, width)
	})
}

func renderOverview(data *health.OverviewData, width int) string {
	styles := GetStyles()
	theme := styles.Theme

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		pageHeader(data.Title, data.Subtitle),
		"   ",
		styles.Muted.Render(emoji.GetEmoji("clock")+" Last Updated: "+data.LastUpdated),
	)

	columns := 4
	if width < 100 {
		columns = 2
	}
	cardWidth := max(18, width/columns-2)
	grid := components.NewCardGrid(columns)
	for _, m := range data.Metrics {
		card := components.NewStatsCard(m.Title, m.Value, m.Status).
			SetIcon(emoji.GetEmoji(m.Icon)).
			SetTrend(trendGlyph(m.Trend) + " " + m.Trend).
			SetValueColor(theme.ToneColor(m.Tone)).
			SetWidth(cardWidth)
		grid.AddCard(card)
	}

	alerts := make([]string, 0, len(data.Alerts))
	for _, a := range data.Alerts {
		style, icon := alertStyle(styles, a.Kind)
		alerts = append(alerts, lipgloss.JoinVertical(lipgloss.Left,
			style.Render(icon+" "+a.Title),
			styles.Body.Render("  "+a.Message),
			styles.Muted.Render("  "+a.Time),
		))
	}

	tests := make([]string, 0, len(data.Tests))
	for _, tst := range data.Tests {
		tests = append(tests, fmt.Sprintf("%s %-14s %s  %s",
			emoji.GetEmoji("calendar"),
			tst.Name,
			styles.Muted.Render(tst.Date),
			styles.Info.Render(tst.Type),
		))
	}

	half := max(30, width/2-2)
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Card.Width(half).Render(section("Recent Alerts", strings.Join(alerts, "\n\n"))),
		styles.Card.Width(half).Render(section("Upcoming Tests", strings.Join(tests, "\n"))),
	)

	insights := make([]string, 0, len(data.Insights))
	for _, in := range data.Insights {
		insights = append(insights, renderInsight(styles, in, width-6))
	}
	aiBlock := styles.Card.Width(max(30, width-4)).Render(section(
		emoji.GetEmoji("analysis")+" AI Health Insights",
		strings.Join(insights, "\n\n"),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		grid.Render(),
		"",
		middle,
		"",
		aiBlock,
	)
}

func renderInsight(styles *Styles, in health.Insight, width int) string {
	lines := []string{styles.Insight.Render(emoji.GetEmoji("insight") + " " + in.Title)}
	if in.Text != "" {
		lines = append(lines, styles.Body.Width(max(20, width)).Render(in.Text))
	}
	for _, p := range in.Points {
		lines = append(lines, styles.Body.Render("  • "+p))
	}
	return strings.Join(lines, "\n")
}

func alertStyle(styles *Styles, kind health.AlertKind) (lipgloss.Style, string) {
	switch kind {
	case health.AlertWarning:
		return styles.Warning, emoji.GetEmoji("warning")
	case health.AlertSuccess:
		return styles.Success, emoji.GetEmoji("success")
	default:
		return styles.Info, emoji.GetEmoji("info")
	}
}

func trendGlyph(trend string) string {
	if strings.HasPrefix(trend, "-") {
		return emoji.GetEmoji("trend_down")
	}
	return emoji.GetEmoji("trend_up")
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/cardiagno/internal/emoji"
	"github.com/yildizm/cardiagno/internal/health"
	"github.com/yildizm/cardiagno/internal/ui/components"
)

// NewAnalysisView builds the health analysis page
func NewAnalysisView(keys KeyMap) View {
	data := health.Assessment()
	return newScrollView(TabAnalysis, keys, func(width int) string {
		return renderAnalysis(data, width)
	})
}

func renderAnalysis(data *health.AssessmentData, width int) string {
	styles := GetStyles()
	theme := styles.Theme
	inner := max(30, width-4)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		pageHeader(data.Title, data.Subtitle),
		"   ",
		styles.Muted.Render(emoji.GetEmoji("calendar")+" Last Analysis: "+data.LastAnalysis),
	)

	scoreStyle := lipgloss.NewStyle().Foreground(theme.TierColor(data.OverallScore)).Bold(true)
	overall := styles.Card.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.Subheader.Render("Overall Health Score"),
		scoreStyle.Render(fmt.Sprintf("%d", data.OverallScore))+" "+styles.Muted.Render(data.OverallStatus),
		scoreBar(data.OverallScore, inner-12),
	))

	categories := make([]string, 0, len(data.Categories))
	for _, c := range data.Categories {
		categories = append(categories, renderCategory(styles, c, inner))
	}

	risks := renderRiskTable(styles, data.RiskFactors)

	summary := styles.Card.Width(inner).Render(section(
		emoji.GetEmoji("analysis")+" "+data.Summary.Title,
		styles.Body.Width(inner-2).Render(data.Summary.Text),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		overall,
		"",
		strings.Join(categories, "\n"),
		"",
		styles.Card.Width(inner).Render(section("Risk Factors Assessment", risks)),
		"",
		summary,
	)
}

func renderCategory(styles *Styles, c health.Category, width int) string {
	color := styles.Theme.TierColor(c.Score)
	title := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Subheader.Render(c.Name),
		"  ",
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("%d", c.Score)),
		"  ",
		styles.Muted.Render(c.Status),
	)

	findings := make([]string, 0, len(c.Findings)+1)
	findings = append(findings, styles.Body.Bold(true).Render("Key Findings"))
	for _, f := range c.Findings {
		findings = append(findings, styles.Body.Render("  • "+f))
	}

	recs := make([]string, 0, len(c.Recommendations)+1)
	recs = append(recs, styles.Body.Bold(true).Render("Recommendations"))
	for _, r := range c.Recommendations {
		recs = append(recs, styles.Body.Render("  "+emoji.GetEmoji("target")+" "+r))
	}

	return styles.Card.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		scoreBar(c.Score, width-12),
		"",
		strings.Join(findings, "\n"),
		strings.Join(recs, "\n"),
	))
}

func renderRiskTable(styles *Styles, factors []health.RiskFactor) string {
	columns := []table.Column{
		{Title: "Factor"},
		{Title: "Value"},
		{Title: "Risk"},
	}
	rows := make([]table.Row, 0, len(factors))
	for _, f := range factors {
		rows = append(rows, table.Row{f.Factor, f.Value, string(f.Risk)})
	}

	// size every column to its widest cell so nothing is truncated
	total := 0
	for i := range columns {
		w := lipgloss.Width(columns[i].Title)
		for _, r := range rows {
			w = max(w, lipgloss.Width(r[i]))
		}
		columns[i].Width = w
		total += w + 2
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
		table.WithWidth(total),
		table.WithStyles(table.Styles{
			Header:   styles.Subheader.Padding(0, 1),
			Cell:     styles.Body.Padding(0, 1),
			Selected: lipgloss.NewStyle(),
		}),
	)
	return t.View() + "\n" + riskTally(styles, factors)
}

// riskTally counts factors per risk level, coloured by level
func riskTally(styles *Styles, factors []health.RiskFactor) string {
	counts := make(map[health.RiskLevel]int)
	tones := make(map[health.RiskLevel]health.Tone)
	var order []health.RiskLevel
	for _, f := range factors {
		if _, seen := counts[f.Risk]; !seen {
			order = append(order, f.Risk)
			tones[f.Risk] = f.Tone()
		}
		counts[f.Risk]++
	}

	parts := make([]string, 0, len(order))
	for _, level := range order {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(styles.Theme.ToneColor(tones[level])).
			Bold(true).
			Render(fmt.Sprintf("%s %d", level, counts[level])))
	}
	return strings.Join(parts, styles.Muted.Render(" · "))
}

func scoreBar(score, width int) string {
	color := GetStyles().Theme.TierColor(score)
	return components.NewProgressBar(max(10, width)).
		SetPercent(float64(score)).
		SetColors(color, GetTheme().Muted).
		Render()
}

package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/yildizm/cardiagno/internal/health"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct {
	now func() time.Time
}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{now: time.Now}
}

func (f *markdownFormatter) Format(report *health.Report) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Cardiovascular Health Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", f.now().Format("2006-01-02 15:04:05"))

	f.writeTableOfContents(&b, report)

	if report.Overview != nil {
		f.writeOverview(&b, report.Overview)
	}
	if report.Assessment != nil {
		f.writeAssessment(&b, report.Assessment)
	}

	return []byte(b.String()), nil
}

func (f *markdownFormatter) writeTableOfContents(b *strings.Builder, report *health.Report) {
	b.WriteString("## Table of Contents\n")
	if report.Overview != nil {
		b.WriteString("- [Health Dashboard](#health-dashboard)\n")
	}
	if report.Assessment != nil {
		b.WriteString("- [Health Analysis](#health-analysis)\n")
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeOverview(b *strings.Builder, o *health.OverviewData) {
	fmt.Fprintf(b, "## %s\n\n%s\n\n*Last Updated: %s*\n\n", o.Title, o.Subtitle, o.LastUpdated)

	b.WriteString("### Key Metrics\n\n")
	b.WriteString("| Metric | Value | Status | Trend |\n")
	b.WriteString("|--------|-------|--------|-------|\n")
	for _, m := range o.Metrics {
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n", m.Title, m.Value, m.Status, m.Trend)
	}
	b.WriteString("\n")

	b.WriteString("### Recent Alerts\n\n")
	for _, a := range o.Alerts {
		fmt.Fprintf(b, "- **%s** (%s, %s): %s\n", a.Title, a.Kind, a.Time, a.Message)
	}
	b.WriteString("\n")

	b.WriteString("### Upcoming Tests\n\n")
	b.WriteString("| Test | Date | Type |\n")
	b.WriteString("|------|------|------|\n")
	for _, t := range o.Tests {
		fmt.Fprintf(b, "| %s | %s | %s |\n", t.Name, t.Date, t.Type)
	}
	b.WriteString("\n")

	b.WriteString("### AI Health Insights\n\n")
	for _, in := range o.Insights {
		writeMarkdownInsight(b, in)
	}
}

func (f *markdownFormatter) writeAssessment(b *strings.Builder, a *health.AssessmentData) {
	fmt.Fprintf(b, "## %s\n\n%s\n\n*Last Analysis: %s*\n\n", a.Title, a.Subtitle, a.LastAnalysis)
	fmt.Fprintf(b, "**Overall Health Score:** %d (%s)\n\n", a.OverallScore, a.OverallStatus)

	for _, c := range a.Categories {
		fmt.Fprintf(b, "### %s: %d (%s)\n\n", c.Name, c.Score, c.Status)
		b.WriteString("**Key Findings**\n\n")
		for _, finding := range c.Findings {
			fmt.Fprintf(b, "- %s\n", finding)
		}
		b.WriteString("\n**Recommendations**\n\n")
		for _, rec := range c.Recommendations {
			fmt.Fprintf(b, "- %s\n", rec)
		}
		b.WriteString("\n")
	}

	b.WriteString("### Risk Factors\n\n")
	b.WriteString("| Factor | Value | Risk |\n")
	b.WriteString("|--------|-------|------|\n")
	for _, r := range a.RiskFactors {
		fmt.Fprintf(b, "| %s | %s | %s |\n", r.Factor, r.Value, r.Risk)
	}
	b.WriteString("\n")

	writeMarkdownInsight(b, a.Summary)
}

func writeMarkdownInsight(b *strings.Builder, in health.Insight) {
	fmt.Fprintf(b, "#### %s\n\n", in.Title)
	if in.Text != "" {
		b.WriteString(in.Text + "\n\n")
	}
	for _, p := range in.Points {
		fmt.Fprintf(b, "- %s\n", p)
	}
	if len(in.Points) > 0 {
		b.WriteString("\n")
	}
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/cardiagno/internal/health"
	"github.com/yildizm/go-termfmt"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter
func NewTerminal(color, emoji bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = emoji
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(report *health.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("nothing to format")
	}

	var b strings.Builder
	if report.Overview != nil {
		f.writeOverview(&b, report.Overview)
	}
	if report.Assessment != nil {
		f.writeAssessment(&b, report.Assessment)
	}
	return []byte(b.String()), nil
}

// writeHeader writes a boxed section title
func (f *terminalFormatter) writeHeader(b *strings.Builder, header string) {
	width := len([]rune(header))
	b.WriteString("╔" + strings.Repeat("═", width+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", width+2) + "╝\n\n")
}

func (f *terminalFormatter) writeOverview(b *strings.Builder, o *health.OverviewData) {
	f.writeHeader(b, o.Title)
	fmt.Fprintf(b, "%s\nLast Updated: %s\n\n", o.Subtitle, o.LastUpdated)

	b.WriteString(termfmt.GetEmoji("statistics", f.opts) + " Key Metrics\n")
	items := make([]termfmt.TreeItem, 0, len(o.Metrics))
	for i, m := range o.Metrics {
		items = append(items, termfmt.TreeItem{
			Label: m.Title,
			Value: fmt.Sprintf("%s (%s, %s)", m.Value, m.Status, m.Trend),
			Last:  i == len(o.Metrics)-1,
		})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")

	b.WriteString(termfmt.GetEmoji("warning", f.opts) + " Recent Alerts\n")
	items = make([]termfmt.TreeItem, 0, len(o.Alerts))
	for i, a := range o.Alerts {
		items = append(items, termfmt.TreeItem{
			Label: fmt.Sprintf("%s %s", alertSymbol(a.Kind, f.opts), a.Title),
			Value: "(" + a.Time + ")",
			Children: []termfmt.TreeItem{
				{Label: a.Message, Last: true},
			},
			Last: i == len(o.Alerts)-1,
		})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")

	b.WriteString(termfmt.GetEmoji("info", f.opts) + " Upcoming Tests\n")
	items = make([]termfmt.TreeItem, 0, len(o.Tests))
	for i, t := range o.Tests {
		items = append(items, termfmt.TreeItem{
			Label: t.Name,
			Value: t.Date + " " + t.Type,
			Last:  i == len(o.Tests)-1,
		})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")

	b.WriteString(termfmt.GetEmoji("ai", f.opts) + " AI Health Insights\n")
	for _, in := range o.Insights {
		f.writeInsight(b, in)
	}
	b.WriteString("\n")
}

func (f *terminalFormatter) writeInsight(b *strings.Builder, in health.Insight) {
	b.WriteString(termfmt.GetEmoji("insight", f.opts) + " " + in.Title + "\n")
	if in.Text != "" {
		b.WriteString(in.Text + "\n")
	}
	for _, p := range in.Points {
		b.WriteString("• " + p + "\n")
	}
}

func (f *terminalFormatter) writeAssessment(b *strings.Builder, a *health.AssessmentData) {
	f.writeHeader(b, a.Title)
	fmt.Fprintf(b, "%s\nLast Analysis: %s\n\n", a.Subtitle, a.LastAnalysis)

	fmt.Fprintf(b, "%s Overall Health Score: %d (%s)\n%s\n\n",
		termfmt.GetEmoji("summary", f.opts),
		a.OverallScore, a.OverallStatus,
		termfmt.CreateConfidenceBar(float64(a.OverallScore)/100, f.opts))

	b.WriteString(termfmt.GetEmoji("pattern", f.opts) + " Categories\n")
	items := make([]termfmt.TreeItem, 0, len(a.Categories))
	for i, c := range a.Categories {
		children := make([]termfmt.TreeItem, 0, len(c.Findings)+len(c.Recommendations)+1)
		children = append(children, termfmt.TreeItem{
			Label: termfmt.CreateConfidenceBar(float64(c.Score)/100, f.opts),
			Value: "tier " + c.Tier().String(),
		})
		for _, finding := range c.Findings {
			children = append(children, termfmt.TreeItem{Label: "Finding", Value: finding})
		}
		for _, rec := range c.Recommendations {
			children = append(children, termfmt.TreeItem{Label: "Recommendation", Value: rec})
		}
		children[len(children)-1].Last = true

		items = append(items, termfmt.TreeItem{
			Label:    c.Name,
			Value:    fmt.Sprintf("%d (%s)", c.Score, c.Status),
			Children: children,
			Last:     i == len(a.Categories)-1,
		})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")

	b.WriteString(termfmt.GetEmoji("warning", f.opts) + " Risk Factors\n")
	items = make([]termfmt.TreeItem, 0, len(a.RiskFactors))
	for i, r := range a.RiskFactors {
		items = append(items, termfmt.TreeItem{
			Label: r.Factor,
			Value: fmt.Sprintf("%s [%s]", r.Value, r.Risk),
			Last:  i == len(a.RiskFactors)-1,
		})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")

	b.WriteString(termfmt.GetEmoji("ai", f.opts) + " ")
	f.writeInsight(b, a.Summary)
	b.WriteString("\n")
}

// alertSymbol returns the glyph for an alert kind using go-termfmt
func alertSymbol(kind health.AlertKind, opts *termfmt.TerminalOptions) string {
	switch kind {
	case health.AlertWarning:
		return termfmt.GetEmoji("warning", opts)
	case health.AlertSuccess:
		return termfmt.GetEmoji("insight", opts)
	default:
		return termfmt.GetEmoji("info", opts)
	}
}

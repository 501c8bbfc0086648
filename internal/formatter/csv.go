package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/yildizm/cardiagno/internal/health"
)

// csvFormatter flattens the report into section,item,value,status,detail rows
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(report *health.Report) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	if err := writer.Write([]string{"Section", "Item", "Value", "Status", "Detail"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, record := range csvRecords(report) {
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}
	return b.Bytes(), nil
}

func csvRecords(report *health.Report) [][]string {
	var rows [][]string

	if o := report.Overview; o != nil {
		for _, m := range o.Metrics {
			rows = append(rows, []string{"metric", m.Title, m.Value, m.Status, m.Trend})
		}
		for _, a := range o.Alerts {
			rows = append(rows, []string{"alert", a.Title, a.Time, string(a.Kind), escapeCSVString(a.Message)})
		}
		for _, t := range o.Tests {
			rows = append(rows, []string{"test", t.Name, t.Date, t.Type, ""})
		}
	}

	if a := report.Assessment; a != nil {
		rows = append(rows, []string{"overall", "Overall Health Score", strconv.Itoa(a.OverallScore), a.OverallStatus, ""})
		for _, c := range a.Categories {
			rows = append(rows, []string{"category", c.Name, strconv.Itoa(c.Score), c.Status, "tier " + c.Tier().String()})
		}
		for _, r := range a.RiskFactors {
			rows = append(rows, []string{"risk", r.Factor, r.Value, string(r.Risk), ""})
		}
	}
	return rows
}

// escapeCSVString flattens newlines and truncates long messages
func escapeCSVString(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")

	if len(s) > 100 {
		s = s[:97] + "..."
	}
	return s
}

package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yildizm/cardiagno/internal/health"
)

func TestNewFormatter(t *testing.T) {
	for _, name := range Formats {
		f, err := New(name, false, false)
		require.NoError(t, err, name)
		assert.NotNil(t, f)
	}

	_, err := New("xml", false, false)
	assert.Error(t, err)
}

func TestTerminalFormatter(t *testing.T) {
	out, err := NewTerminal(false, false).Format(health.FullReport())
	require.NoError(t, err)
	text := string(out)

	for _, want := range []string{
		"Health Dashboard",
		"Blood Pressure",
		"118/76",
		"Lipid Profile",
		"Health Analysis",
		"Overall Health Score: 85 (Good Health)",
		"Cardiovascular Risk",
		"Family History",
	} {
		assert.Contains(t, text, want)
	}

	_, err = NewTerminal(false, false).Format(nil)
	assert.Error(t, err)
}

func TestTerminalFormatterSingleSection(t *testing.T) {
	out, err := NewTerminal(false, false).Format(&health.Report{Assessment: health.Assessment()})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "Health Dashboard")
	assert.Contains(t, string(out), "Health Analysis")
}

func TestJSONFormatter(t *testing.T) {
	out, err := NewJSON().Format(health.FullReport())
	require.NoError(t, err)

	var decoded struct {
		HealthScore health.HealthScore     `json:"health_score"`
		Overview    *health.OverviewData   `json:"overview"`
		Analysis    *health.AssessmentData `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, 87, decoded.HealthScore.Score)
	require.NotNil(t, decoded.Overview)
	assert.Len(t, decoded.Overview.Metrics, 4)
	require.NotNil(t, decoded.Analysis)
	assert.Equal(t, 85, decoded.Analysis.OverallScore)
}

func TestMarkdownFormatter(t *testing.T) {
	out, err := NewMarkdown().Format(&health.Report{Overview: health.Overview()})
	require.NoError(t, err)
	md := string(out)

	assert.True(t, strings.HasPrefix(md, "# Cardiovascular Health Report"))
	assert.Contains(t, md, "| Blood Pressure | 118/76 | Normal | +2% |")
	assert.Contains(t, md, "| ECG | 2025-02-15 | Follow-up |")
	assert.NotContains(t, md, "#health-analysis")
}

func TestCSVFormatter(t *testing.T) {
	out, err := NewCSV().Format(health.FullReport())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"Section", "Item", "Value", "Status", "Detail"}, rows[0])

	assert.Contains(t, rows, []string{"category", "Metabolic Health", "92", "Excellent", "tier top"})
	assert.Contains(t, rows, []string{"category", "Lipid Profile", "78", "Good", "tier second"})
}

func TestEscapeCSVString(t *testing.T) {
	assert.Equal(t, "a b", escapeCSVString("a\nb"))
	long := strings.Repeat("x", 150)
	assert.Len(t, escapeCSVString(long), 100)
}

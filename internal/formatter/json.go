package formatter

import (
	"encoding/json"
	"time"

	"github.com/yildizm/cardiagno/internal/health"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct {
	now func() time.Time
}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{now: time.Now}
}

// JSONOutput wraps the report with generation metadata
type JSONOutput struct {
	GeneratedAt time.Time          `json:"generated_at"`
	HealthScore health.HealthScore `json:"health_score"`
	*health.Report
}

func (f *jsonFormatter) Format(report *health.Report) ([]byte, error) {
	output := &JSONOutput{
		GeneratedAt: f.now().UTC(),
		HealthScore: health.Score(),
		Report:      report,
	}
	return json.MarshalIndent(output, "", "  ")
}

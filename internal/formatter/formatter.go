package formatter

import (
	"fmt"

	"github.com/yildizm/cardiagno/internal/health"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(report *health.Report) ([]byte, error)
}

// Formats lists the supported output format names
var Formats = []string{"text", "json", "markdown", "csv"}

// New returns the formatter for a format name
func New(format string, color, emoji bool) (Formatter, error) {
	switch format {
	case "", "text":
		return NewTerminal(color, emoji), nil
	case "json":
		return NewJSON(), nil
	case "markdown", "md":
		return NewMarkdown(), nil
	case "csv":
		return NewCSV(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

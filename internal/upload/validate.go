package upload

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrTooLarge is returned for files above the configured size cap
	ErrTooLarge = errors.New("file exceeds maximum size")
	// ErrUnsupportedType is returned for extensions outside the allow list
	ErrUnsupportedType = errors.New("unsupported file type")
)

// DefaultMaxFileSize is the 10MB cap advertised on the upload page
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// DefaultExtensions are the formats advertised on the upload page
var DefaultExtensions = []string{".pdf", ".jpg", ".jpeg", ".png", ".doc", ".docx"}

// Validator rejects files before their simulation starts. A tracker without
// a validator accepts everything.
type Validator struct {
	MaxSize    int64
	Extensions []string
}

// NewValidator creates a validator; zero or empty arguments fall back to
// the advertised defaults.
func NewValidator(maxSize int64, extensions []string) *Validator {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}

	return &Validator{MaxSize: maxSize, Extensions: normalized}
}

// Validate checks a single file
func (v *Validator) Validate(f FileInfo) error {
	if f.Size > v.MaxSize {
		return fmt.Errorf("%w: %s is %s, limit %s", ErrTooLarge, f.Name, FormatSize(f.Size), FormatSize(v.MaxSize))
	}

	ext := strings.ToLower(filepath.Ext(f.Name))
	for _, allowed := range v.Extensions {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
}

package upload

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// Describe stats a local path and builds the FileInfo handed to Ingest
func Describe(path string) (FileInfo, error) {
	clean := filepath.Clean(strings.TrimSpace(path))
	if clean == "." || clean == "" {
		return FileInfo{}, fmt.Errorf("empty file path")
	}

	info, err := os.Stat(clean)
	if err != nil {
		return FileInfo{}, fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return FileInfo{}, fmt.Errorf("%s is a directory", clean)
	}

	return FileInfo{
		Name:     info.Name(),
		MIMEType: DetectMIMEType(info.Name()),
		Size:     info.Size(),
		Path:     clean,
	}, nil
}

// DetectMIMEType guesses the type from the extension; unknown types are
// reported as an empty string.
func DetectMIMEType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return ""
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	switch ext {
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return ""
}

// SplitPaths splits picker input on whitespace and commas. Paths wrapped in
// single or double quotes may contain spaces, which is how terminals paste
// dragged files.
func SplitPaths(input string) []string {
	var (
		paths   []string
		current strings.Builder
		quote   rune
	)

	flush := func() {
		if current.Len() > 0 {
			paths = append(paths, current.String())
			current.Reset()
		}
	}

	escaped := false
	for _, r := range input {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote == 0:
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
		case r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return paths
}

package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.cardiagno.yaml",               // Project-specific config (highest priority)
	"~/.config/cardiagno/config.yaml", // User config
	"/etc/cardiagno/config.yaml",      // System config (lowest priority)
}

// EnvPrefix prefixes every environment override
const EnvPrefix = "CARDIAGNO_"

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	warnings    io.Writer
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		warnings:    os.Stderr,
	}
}

// WithPaths replaces the search paths, mostly for tests
func (l *Loader) WithPaths(paths ...string) *Loader {
	l.configPaths = paths
	return l
}

// WithWarnings redirects warnings about unreadable config files
func (l *Loader) WithWarnings(w io.Writer) *Loader {
	l.warnings = w
	return l
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables
// 3. ./.cardiagno.yaml
// 4. ~/.config/cardiagno/config.yaml
// 5. /etc/cardiagno/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// lowest priority first so later files win
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := ExpandPath(l.configPaths[i])
			if !fileExists(expandedPath) {
				continue
			}
			if err := l.loadFromFile(config, expandedPath); err != nil {
				fmt.Fprintf(l.warnings, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
			}
		}
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile overlays a YAML file on top of config. Keys missing from the
// file keep their current value, so explicit false and zero values survive.
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() or comes from ConfigPaths
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	overlay := *config
	overlay.Upload.AllowedExtensions = append([]string(nil), config.Upload.AllowedExtensions...)
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	*config = overlay
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// UI
		"CARDIAGNO_UI_DEFAULT_TAB":   func(v string) error { config.UI.DefaultTab = v; return nil },
		"CARDIAGNO_UI_THEME":         func(v string) error { config.UI.Theme = v; return nil },
		"CARDIAGNO_UI_COLOR_MODE":    func(v string) error { config.UI.ColorMode = v; return nil },
		"CARDIAGNO_UI_NO_EMOJI":      func(v string) error { return parseBool(v, &config.UI.NoEmoji) },
		"CARDIAGNO_UI_SIDEBAR_WIDTH": func(v string) error { return parseInt(v, &config.UI.SidebarWidth) },
		"CARDIAGNO_UI_ALT_SCREEN":    func(v string) error { return parseBool(v, &config.UI.AltScreen) },

		// Upload
		"CARDIAGNO_UPLOAD_TICK_INTERVAL":  func(v string) error { return parseDuration(v, &config.Upload.TickInterval) },
		"CARDIAGNO_UPLOAD_MAX_INCREMENT":  func(v string) error { return parseFloat(v, &config.Upload.MaxIncrement) },
		"CARDIAGNO_UPLOAD_ENFORCE_LIMITS": func(v string) error { return parseBool(v, &config.Upload.EnforceLimits) },
		"CARDIAGNO_UPLOAD_MAX_FILE_SIZE":  func(v string) error { return parseInt64(v, &config.Upload.MaxFileSize) },
		"CARDIAGNO_UPLOAD_WATCH_INBOX":    func(v string) error { return parseBool(v, &config.Upload.WatchInbox) },
		"CARDIAGNO_UPLOAD_INBOX_DIR":      func(v string) error { config.Upload.InboxDir = v; return nil },
		"CARDIAGNO_UPLOAD_SETTLE_DELAY":   func(v string) error { return parseDuration(v, &config.Upload.SettleDelay) },

		// Output
		"CARDIAGNO_OUTPUT_DEFAULT_FORMAT": func(v string) error { config.Output.DefaultFormat = v; return nil },
		"CARDIAGNO_OUTPUT_VERBOSE":        func(v string) error { return parseBool(v, &config.Output.Verbose) },
		"CARDIAGNO_OUTPUT_LOG_FILE":       func(v string) error { config.Output.LogFile = v; return nil },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	// comma-separated list
	if exts := os.Getenv("CARDIAGNO_UPLOAD_ALLOWED_EXTENSIONS"); exts != "" {
		config.Upload.AllowedExtensions = config.Upload.AllowedExtensions[:0:0]
		for _, ext := range strings.Split(exts, ",") {
			if ext = strings.TrimSpace(ext); ext != "" {
				config.Upload.AllowedExtensions = append(config.Upload.AllowedExtensions, ext)
			}
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, ExpandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := ExpandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// UserConfigPath returns the per-user config file location used by config init
func UserConfigPath() string {
	return ExpandPath(ConfigPaths[1])
}

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/proc/") || strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}

// fileExists reports whether path names a regular file
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Type conversion helpers

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseInt64(s string, dst *int64) error {
	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseFloat(s string, dst *float64) error {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	val, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

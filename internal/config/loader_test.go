package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	if loader == nil {
		t.Fatal("NewLoader returned nil")
	}
	if len(loader.configPaths) != 3 {
		t.Errorf("Expected 3 config paths, got %d", len(loader.configPaths))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader().WithPaths(filepath.Join(dir, "missing.yaml"))

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}
	if cfg.UI.Theme != "default" {
		t.Errorf("Expected default theme, got %s", cfg.UI.Theme)
	}
	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected default output format text, got %s", cfg.Output.DefaultFormat)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), "test-config.yaml", `version: "1.0"
ui:
  default_tab: upload
  theme: high-contrast
  alt_screen: false
upload:
  tick_interval: 50ms
  max_increment: 35
  enforce_limits: true
  allowed_extensions: [".pdf"]
output:
  default_format: json
  verbose: true
`)

	cfg, err := NewLoader().LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config from file: %v", err)
	}

	if cfg.UI.DefaultTab != "upload" {
		t.Errorf("Expected default tab upload, got %s", cfg.UI.DefaultTab)
	}
	if cfg.UI.Theme != "high-contrast" {
		t.Errorf("Expected theme high-contrast, got %s", cfg.UI.Theme)
	}
	if cfg.UI.AltScreen {
		t.Error("Expected explicit alt_screen: false to be honoured")
	}
	if cfg.Upload.TickInterval != 50*time.Millisecond {
		t.Errorf("Expected tick interval 50ms, got %v", cfg.Upload.TickInterval)
	}
	if cfg.Upload.MaxIncrement != 35 {
		t.Errorf("Expected max increment 35, got %v", cfg.Upload.MaxIncrement)
	}
	if !cfg.Upload.EnforceLimits {
		t.Error("Expected enforce_limits to be true")
	}
	if len(cfg.Upload.AllowedExtensions) != 1 || cfg.Upload.AllowedExtensions[0] != ".pdf" {
		t.Errorf("Expected allowed extensions [.pdf], got %v", cfg.Upload.AllowedExtensions)
	}
	// keys absent from the file keep their defaults
	if cfg.Upload.MaxFileSize != 10*1024*1024 {
		t.Errorf("Expected default max file size, got %d", cfg.Upload.MaxFileSize)
	}
	if cfg.Output.DefaultFormat != "json" {
		t.Errorf("Expected output format json, got %s", cfg.Output.DefaultFormat)
	}
}

func TestLoadConfigPriority(t *testing.T) {
	dir := t.TempDir()
	project := writeConfig(t, dir, "project.yaml", "ui:\n  theme: minimal\n")
	system := writeConfig(t, dir, "system.yaml", "ui:\n  theme: high-contrast\n  default_tab: analysis\n")

	cfg, err := NewLoader().WithPaths(project, system).LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load layered config: %v", err)
	}
	if cfg.UI.Theme != "minimal" {
		t.Errorf("Expected higher-priority theme minimal, got %s", cfg.UI.Theme)
	}
	if cfg.UI.DefaultTab != "analysis" {
		t.Errorf("Expected lower-priority default tab to survive, got %s", cfg.UI.DefaultTab)
	}
}

func TestLoadConfigBrokenFileWarns(t *testing.T) {
	dir := t.TempDir()
	broken := writeConfig(t, dir, "broken.yaml", "ui: [unterminated\n")

	var warnings bytes.Buffer
	cfg, err := NewLoader().WithPaths(broken).WithWarnings(&warnings).LoadConfig("")
	if err != nil {
		t.Fatalf("Broken search-path file should only warn: %v", err)
	}
	if cfg.UI.Theme != "default" {
		t.Errorf("Expected defaults after broken file, got theme %s", cfg.UI.Theme)
	}
	if !strings.Contains(warnings.String(), "Failed to load config") {
		t.Errorf("Expected a warning, got %q", warnings.String())
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), "invalid-config.yaml", `version: "1.0"
ui:
  theme: "default
  default_tab: upload
`)

	if _, err := NewLoader().LoadConfig(configPath); err == nil {
		t.Error("Expected error loading invalid YAML config, but got none")
	}
}

func TestLoadConfigInvalidValues(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), "bad-values.yaml", "upload:\n  max_increment: 0\n")

	_, err := NewLoader().LoadConfig(configPath)
	if err == nil {
		t.Fatal("Expected validation error, got none")
	}
	if !strings.Contains(err.Error(), "max_increment") {
		t.Errorf("Expected max_increment error, got %v", err)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	envVars := map[string]string{
		"CARDIAGNO_UI_DEFAULT_TAB":            "alerts",
		"CARDIAGNO_UI_THEME":                  "minimal",
		"CARDIAGNO_UI_NO_EMOJI":               "true",
		"CARDIAGNO_UPLOAD_TICK_INTERVAL":      "250ms",
		"CARDIAGNO_UPLOAD_MAX_INCREMENT":      "12.5",
		"CARDIAGNO_UPLOAD_MAX_FILE_SIZE":      "2048",
		"CARDIAGNO_UPLOAD_ENFORCE_LIMITS":     "1",
		"CARDIAGNO_UPLOAD_ALLOWED_EXTENSIONS": ".pdf, .png ,",
		"CARDIAGNO_OUTPUT_DEFAULT_FORMAT":     "markdown",
		"CARDIAGNO_OUTPUT_LOG_FILE":           "/tmp/cardiagno.log",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg := DefaultConfig()
	if err := NewLoader().applyEnvOverrides(cfg); err != nil {
		t.Fatalf("Failed to apply env overrides: %v", err)
	}

	if cfg.UI.DefaultTab != "alerts" {
		t.Errorf("Expected default tab alerts, got %s", cfg.UI.DefaultTab)
	}
	if cfg.UI.Theme != "minimal" {
		t.Errorf("Expected theme minimal, got %s", cfg.UI.Theme)
	}
	if !cfg.UI.NoEmoji {
		t.Error("Expected no_emoji to be true")
	}
	if cfg.Upload.TickInterval != 250*time.Millisecond {
		t.Errorf("Expected tick interval 250ms, got %v", cfg.Upload.TickInterval)
	}
	if cfg.Upload.MaxIncrement != 12.5 {
		t.Errorf("Expected max increment 12.5, got %v", cfg.Upload.MaxIncrement)
	}
	if cfg.Upload.MaxFileSize != 2048 {
		t.Errorf("Expected max file size 2048, got %d", cfg.Upload.MaxFileSize)
	}
	if !cfg.Upload.EnforceLimits {
		t.Error("Expected enforce_limits to be true")
	}
	if got := cfg.Upload.AllowedExtensions; len(got) != 2 || got[0] != ".pdf" || got[1] != ".png" {
		t.Errorf("Expected extensions [.pdf .png], got %v", got)
	}
	if cfg.Output.DefaultFormat != "markdown" {
		t.Errorf("Expected output format markdown, got %s", cfg.Output.DefaultFormat)
	}
	if cfg.Output.LogFile != "/tmp/cardiagno.log" {
		t.Errorf("Expected log file, got %s", cfg.Output.LogFile)
	}
}

func TestApplyEnvOverridesInvalidValues(t *testing.T) {
	tests := []struct {
		envVar string
		value  string
	}{
		{"CARDIAGNO_UPLOAD_TICK_INTERVAL", "fast"},
		{"CARDIAGNO_UPLOAD_MAX_INCREMENT", "lots"},
		{"CARDIAGNO_UPLOAD_MAX_FILE_SIZE", "10MB"},
		{"CARDIAGNO_UI_NO_EMOJI", "maybe"},
		{"CARDIAGNO_UI_SIDEBAR_WIDTH", "wide"},
	}

	for _, tt := range tests {
		t.Run(tt.envVar, func(t *testing.T) {
			t.Setenv(tt.envVar, tt.value)

			err := NewLoader().applyEnvOverrides(DefaultConfig())
			if err == nil {
				t.Fatalf("Expected error for %s=%s", tt.envVar, tt.value)
			}
			if !strings.Contains(err.Error(), tt.envVar) {
				t.Errorf("Expected error to mention %s, got %v", tt.envVar, err)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	var d time.Duration
	if err := parseDuration("30s", &d); err != nil {
		t.Errorf("Failed to parse valid duration: %v", err)
	}
	if d != 30*time.Second {
		t.Errorf("Expected 30s, got %v", d)
	}
	if err := parseDuration("invalid", &d); err == nil {
		t.Error("Expected error for invalid duration")
	}
}

func TestParseInt(t *testing.T) {
	var i int
	if err := parseInt("42", &i); err != nil {
		t.Errorf("Failed to parse valid int: %v", err)
	}
	if i != 42 {
		t.Errorf("Expected 42, got %d", i)
	}
	if err := parseInt("invalid", &i); err == nil {
		t.Error("Expected error for invalid int")
	}
}

func TestParseFloat(t *testing.T) {
	var f float64
	if err := parseFloat("19.5", &f); err != nil {
		t.Errorf("Failed to parse valid float: %v", err)
	}
	if f != 19.5 {
		t.Errorf("Expected 19.5, got %v", f)
	}
	if err := parseFloat("x", &f); err == nil {
		t.Error("Expected error for invalid float")
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		hasError bool
	}{
		{"true", true, false},
		{"false", false, false},
		{"1", true, false},
		{"0", false, false},
		{"invalid", false, true},
	}

	for _, tt := range tests {
		var b bool
		err := parseBool(tt.input, &b)
		if tt.hasError {
			if err == nil {
				t.Errorf("Expected error for input %s", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unexpected error for input %s: %v", tt.input, err)
		}
		if b != tt.expected {
			t.Errorf("For input %s, expected %v, got %v", tt.input, tt.expected, b)
		}
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if path, found := FindConfigFile(); found && !strings.HasPrefix(path, "/etc/") {
		t.Errorf("Expected no project or user config, found %s", path)
	}

	writeConfig(t, ".", ".cardiagno.yaml", MinimalSampleConfig())
	path, found := FindConfigFile()
	if !found {
		t.Fatal("Expected to find project config")
	}
	if path != "./.cardiagno.yaml" {
		t.Errorf("Expected ./.cardiagno.yaml, got %s", path)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := writeConfig(t, dir, "exists.yaml", "version: \"1.0\"\n")

	if !fileExists(file) {
		t.Error("Expected file to exist")
	}
	if fileExists(filepath.Join(dir, "missing.yaml")) {
		t.Error("Expected missing file to not exist")
	}
	if fileExists(dir) {
		t.Error("Expected directory not to count as a config file")
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"config.yaml", false},
		{"/tmp/cardiagno.yml", false},
		{"../config.yaml", true},
		{"config.json", true},
		{"/proc/self/config.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := validateConfigPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfigPath(%s) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

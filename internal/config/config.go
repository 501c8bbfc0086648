package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version string       `yaml:"version" json:"version"`
	UI      UIConfig     `yaml:"ui" json:"ui"`
	Upload  UploadConfig `yaml:"upload" json:"upload"`
	Output  OutputConfig `yaml:"output" json:"output"`
}

// UIConfig configures the dashboard
type UIConfig struct {
	DefaultTab   string `yaml:"default_tab" json:"default_tab"`     // unknown names fall back to dashboard
	Theme        string `yaml:"theme" json:"theme"`                 // default|high-contrast|minimal
	ColorMode    string `yaml:"color_mode" json:"color_mode"`       // auto|always|never
	NoEmoji      bool   `yaml:"no_emoji" json:"no_emoji"`           // ASCII fallbacks instead of emoji
	SidebarWidth int    `yaml:"sidebar_width" json:"sidebar_width"` // navigation panel width in cells
	AltScreen    bool   `yaml:"alt_screen" json:"alt_screen"`       // run in the alternate screen buffer
}

// UploadConfig configures the upload simulation
type UploadConfig struct {
	TickInterval      time.Duration `yaml:"tick_interval" json:"tick_interval"`
	MaxIncrement      float64       `yaml:"max_increment" json:"max_increment"`
	EnforceLimits     bool          `yaml:"enforce_limits" json:"enforce_limits"` // reject files instead of only advertising limits
	MaxFileSize       int64         `yaml:"max_file_size" json:"max_file_size"`
	AllowedExtensions []string      `yaml:"allowed_extensions" json:"allowed_extensions"`
	WatchInbox        bool          `yaml:"watch_inbox" json:"watch_inbox"`
	InboxDir          string        `yaml:"inbox_dir" json:"inbox_dir"`
	SettleDelay       time.Duration `yaml:"settle_delay" json:"settle_delay"` // quiet period before an inbox file counts as dropped
}

// OutputConfig configures non-interactive output and logging
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown|csv
	Verbose       bool   `yaml:"verbose" json:"verbose"`
	LogFile       string `yaml:"log_file" json:"log_file"` // dashboard log destination, discarded when empty
}

// ValidThemes lists the theme names the dashboard knows
var ValidThemes = []string{"default", "high-contrast", "minimal"}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		UI: UIConfig{
			DefaultTab:   "dashboard",
			Theme:        "default",
			ColorMode:    "auto",
			NoEmoji:      false,
			SidebarWidth: 30,
			AltScreen:    true,
		},
		Upload: UploadConfig{
			TickInterval:      100 * time.Millisecond,
			MaxIncrement:      20,
			EnforceLimits:     false,
			MaxFileSize:       10 * 1024 * 1024,
			AllowedExtensions: []string{".pdf", ".jpg", ".jpeg", ".png", ".doc", ".docx"},
			WatchInbox:        false,
			InboxDir:          "~/CardiagnoInbox",
			SettleDelay:       250 * time.Millisecond,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			Verbose:       false,
			LogFile:       "",
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	if err := c.validateUploadConfig(); err != nil {
		return err
	}
	return c.validateOutputConfig()
}

func (c *Config) validateUIConfig() error {
	if c.UI.Theme != "" && !contains(ValidThemes, c.UI.Theme) {
		return fmt.Errorf("invalid theme: %s (must be one of: %s)", c.UI.Theme, strings.Join(ValidThemes, ", "))
	}
	if c.UI.ColorMode != "" && !contains([]string{"auto", "always", "never"}, c.UI.ColorMode) {
		return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.UI.ColorMode)
	}
	if c.UI.SidebarWidth < 0 {
		return fmt.Errorf("sidebar_width must be non-negative")
	}
	return nil
}

func (c *Config) validateUploadConfig() error {
	if c.Upload.TickInterval < 10*time.Millisecond {
		return fmt.Errorf("tick_interval must be at least 10ms")
	}
	if c.Upload.MaxIncrement <= 0 || c.Upload.MaxIncrement > 100 {
		return fmt.Errorf("max_increment must be in (0, 100]")
	}
	if c.Upload.MaxFileSize < 1 {
		return fmt.Errorf("max_file_size must be greater than 0")
	}
	if c.Upload.SettleDelay < 0 {
		return fmt.Errorf("settle_delay must be non-negative")
	}
	if c.Upload.WatchInbox && c.Upload.InboxDir == "" {
		return fmt.Errorf("inbox_dir is required when watch_inbox is enabled")
	}
	return nil
}

func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" && !contains([]string{"text", "json", "markdown", "csv"}, c.Output.DefaultFormat) {
		return fmt.Errorf("invalid output format: %s (must be one of: text, json, markdown, csv)", c.Output.DefaultFormat)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

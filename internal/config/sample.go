package config

// SampleConfig returns a fully commented configuration file
func SampleConfig() string {
	return `# Cardiagno configuration
version: "1.0"

ui:
  # dashboard | upload | analysis | trends | history | alerts | reports | settings
  default_tab: dashboard
  # default | high-contrast | minimal
  theme: default
  # auto | always | never
  color_mode: auto
  no_emoji: false
  sidebar_width: 30
  alt_screen: true

upload:
  # how often each in-flight upload advances
  tick_interval: 100ms
  # upper bound (exclusive) of the random progress step per tick
  max_increment: 20
  # reject oversized files and unsupported formats
  enforce_limits: false
  max_file_size: 10485760
  allowed_extensions: [".pdf", ".jpg", ".jpeg", ".png", ".doc", ".docx"]
  # files copied into inbox_dir are picked up by the dashboard
  watch_inbox: false
  inbox_dir: ~/CardiagnoInbox
  settle_delay: 250ms

output:
  # text | json | markdown | csv
  default_format: text
  verbose: false
  # dashboard logs go here; empty discards them
  log_file: ""
`
}

// MinimalSampleConfig returns the smallest useful configuration file
func MinimalSampleConfig() string {
	return `version: "1.0"

ui:
  default_tab: dashboard
  theme: default

upload:
  tick_interval: 100ms
`
}

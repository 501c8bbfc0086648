package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/yildizm/cardiagno/internal/config"
	"github.com/yildizm/cardiagno/internal/emoji"
	"github.com/yildizm/cardiagno/internal/logger"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	cfgFile   string
	verbose   bool
	noColor   bool
	noEmoji   bool
	outputFmt string
}

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	opts := &globalOptions{}
	dash := &dashboardFlags{}

	rootCmd := &cobra.Command{
		Use:   "cardiagno",
		Short: "Cardiovascular health dashboard for the terminal",
		Long: `Cardiagno is a terminal dashboard for cardiovascular health insights.

It shows health metrics, alerts and an AI-style risk analysis, and lets you
queue medical reports for upload. Run without arguments to open the
dashboard.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flags().Changed("no-emoji") {
				opts.noEmoji = true
			}
			emoji.SetEmojiDisabled(opts.noEmoji)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, opts, dash)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&opts.noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&opts.outputFmt, "output", "o", "text", "output format (text, json, markdown, csv)")
	dash.register(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(newDashboardCommand(opts))
	rootCmd.AddCommand(newUploadCommand(opts))
	rootCmd.AddCommand(newReportCommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cardiagno %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// loadConfig loads the layered configuration and applies flags that were set
// explicitly on the command line
func (o *globalOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.NewLoader().WithWarnings(cmd.ErrOrStderr()).LoadConfig(o.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if o.verbose {
		cfg.Output.Verbose = true
	}
	if o.noColor {
		cfg.UI.ColorMode = "never"
	}
	if o.noEmoji {
		cfg.UI.NoEmoji = true
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.DefaultFormat = o.outputFmt
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	emoji.SetEmojiDisabled(cfg.UI.NoEmoji)
	applyColorMode(cfg.UI.ColorMode)
	return cfg, nil
}

// newLogger creates the application logger
func (o *globalOptions) newLogger(cfg *config.Config, w io.Writer) *logger.Logger {
	log := logger.NewWithCallback("cardiagno", func() bool { return cfg.Output.Verbose })
	log.SetOutput(w)
	return log
}

// colorEnabled reports whether formatted output may contain ANSI colour
func colorEnabled(cfg *config.Config) bool {
	switch cfg.UI.ColorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return os.Getenv("NO_COLOR") == ""
	}
}

func applyColorMode(mode string) {
	switch mode {
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	default:
		if os.Getenv("NO_COLOR") != "" {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	}
}

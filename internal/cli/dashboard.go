package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/yildizm/cardiagno/internal/config"
	"github.com/yildizm/cardiagno/internal/inbox"
	"github.com/yildizm/cardiagno/internal/logger"
	"github.com/yildizm/cardiagno/internal/ui"
	"github.com/yildizm/cardiagno/internal/upload"
)

// dashboardFlags are accepted both by the root command and by dashboard
type dashboardFlags struct {
	tab   string
	inbox string
	theme string
}

func (d *dashboardFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&d.tab, "tab", "t", "", "tab to open first (dashboard, upload, analysis, ...)")
	cmd.Flags().StringVar(&d.inbox, "inbox", "", "watch a directory and upload files dropped into it")
	cmd.Flags().StringVar(&d.theme, "theme", "", "color theme ("+strings.Join(ui.ThemeNames(), ", ")+")")
}

func newDashboardCommand(opts *globalOptions) *cobra.Command {
	flags := &dashboardFlags{}
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive health dashboard",
		Long: `Open the interactive health dashboard.

Navigate with the arrow keys or the number keys 1-8, press tab to move
between the navigation panel and the page, and q to quit. On the upload
page press o to enter file paths, or drag files onto the terminal.`,
		Example: `  cardiagno dashboard
  cardiagno dashboard --tab upload --inbox ~/Downloads/reports
  cardiagno dashboard --theme high-contrast`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, opts, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runDashboard(cmd *cobra.Command, opts *globalOptions, flags *dashboardFlags) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}
	if flags.tab != "" {
		cfg.UI.DefaultTab = flags.tab
	}
	if flags.theme != "" {
		cfg.UI.Theme = flags.theme
	}
	if !ui.SetThemeByName(cfg.UI.Theme) {
		return fmt.Errorf("unknown theme: %s (must be one of: %s)", cfg.UI.Theme, strings.Join(ui.ThemeNames(), ", "))
	}

	logOut, closeLog, err := openLogFile(cfg.Output.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	log := opts.newLogger(cfg, logOut)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var drops <-chan upload.FileInfo
	inboxDir := flags.inbox
	if inboxDir == "" && cfg.Upload.WatchInbox {
		inboxDir = cfg.Upload.InboxDir
	}
	if inboxDir != "" {
		watcher, err := inbox.New(config.ExpandPath(inboxDir), cfg.Upload.SettleDelay, log)
		if err != nil {
			return fmt.Errorf("failed to watch inbox: %w", err)
		}
		defer watcher.Close()
		watcher.Start(ctx)
		drops = watcher.Drops()
		log.InfoWithFields("watching inbox", []logger.Field{logger.F("dir", watcher.Dir())})
	}

	shell := ui.NewShell(ui.Options{
		DefaultTab:   cfg.UI.DefaultTab,
		SidebarWidth: cfg.UI.SidebarWidth,
		Drops:        drops,
		Logger:       log,
		Upload: ui.UploadOptions{
			Interval:   cfg.Upload.TickInterval,
			Step:       upload.UniformStepper(cfg.Upload.MaxIncrement),
			NewTracker: trackerFactory(cfg, log),
		},
	})

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(shell, programOpts...).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}

// trackerFactory builds trackers configured from cfg
func trackerFactory(cfg *config.Config, log *logger.Logger) func() *upload.Tracker {
	return func() *upload.Tracker {
		opts := []upload.Option{upload.WithLogger(log.WithComponent("tracker"))}
		if cfg.Upload.EnforceLimits {
			opts = append(opts, upload.WithValidator(upload.NewValidator(cfg.Upload.MaxFileSize, cfg.Upload.AllowedExtensions)))
		}
		return upload.NewTracker(opts...)
	}
}

// openLogFile opens the dashboard log destination. Logging to the terminal
// would draw over the dashboard, so an empty path discards.
func openLogFile(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}

	path = config.ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	// #nosec G304 - path comes from the user's own configuration
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

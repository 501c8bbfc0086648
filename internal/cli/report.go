package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yildizm/cardiagno/internal/formatter"
	"github.com/yildizm/cardiagno/internal/health"
)

func newReportCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report [overview|analysis|all]",
		Short: "Print the health dashboard as a report",
		Long: `Print the dashboard and analysis pages without the interactive UI.

Use --output to choose text, json, markdown or csv.`,
		Example: `  cardiagno report
  cardiagno report analysis --output markdown > analysis.md
  cardiagno report all -o csv`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"overview", "analysis", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			section := "all"
			if len(args) == 1 {
				section = args[0]
			}
			report, err := buildReport(section)
			if err != nil {
				return err
			}

			f, err := formatter.New(cfg.Output.DefaultFormat, colorEnabled(cfg), !cfg.UI.NoEmoji)
			if err != nil {
				return err
			}
			data, err := f.Format(report)
			if err != nil {
				return fmt.Errorf("failed to format report: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func buildReport(section string) (*health.Report, error) {
	switch section {
	case "overview", "dashboard":
		return &health.Report{Overview: health.Overview()}, nil
	case "analysis":
		return &health.Report{Assessment: health.Assessment()}, nil
	case "all", "":
		return health.FullReport(), nil
	default:
		return nil, fmt.Errorf("unknown report section: %s (use overview, analysis or all)", section)
	}
}

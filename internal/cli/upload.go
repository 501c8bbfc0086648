package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/yildizm/cardiagno/internal/config"
	"github.com/yildizm/cardiagno/internal/emoji"
	"github.com/yildizm/cardiagno/internal/logger"
	"github.com/yildizm/cardiagno/internal/monitor"
	"github.com/yildizm/cardiagno/internal/upload"
	"github.com/yildizm/cardiagno/internal/ui/components"
)

func newUploadCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "upload FILE...",
		Short: "Upload medical reports without the dashboard",
		Long: `Queue one or more medical reports and show their upload progress.

Each file is tracked independently. Press Ctrl+C to cancel every upload
still in progress; the summary reports what finished.`,
		Example: `  cardiagno upload ecg.pdf blood-test.jpg
  cardiagno upload --output json ~/reports/*.pdf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			log := opts.newLogger(cfg, cmd.ErrOrStderr())

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			summary, err := runUploads(ctx, cfg, log, args, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return writeUploadSummary(cmd.OutOrStdout(), cfg.Output.DefaultFormat, summary)
		},
	}
}

// uploadSummary is the outcome of a headless upload session
type uploadSummary struct {
	Records   []upload.Record        `json:"records"`
	Skipped   []string               `json:"skipped,omitempty"`
	Stats     monitor.UploadSnapshot `json:"stats"`
	Cancelled bool                   `json:"cancelled"`
}

// runUploads simulates every readable path and blocks until all records
// have finished or ctx is cancelled
func runUploads(ctx context.Context, cfg *config.Config, log *logger.Logger, paths []string, out io.Writer) (*uploadSummary, error) {
	summary := &uploadSummary{}

	files := make([]upload.FileInfo, 0, len(paths))
	for _, p := range paths {
		f, err := upload.Describe(p)
		if err != nil {
			log.WarnWithFields("skipping path", []logger.Field{logger.F("path", p), logger.Error(err)})
			summary.Skipped = append(summary.Skipped, p)
			continue
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no readable files among %d path(s)", len(paths))
	}

	tracker := trackerFactory(cfg, log)()
	live := cfg.Output.DefaultFormat == "text"

	var mu sync.Mutex
	runner := upload.NewRunner(tracker, cfg.Upload.TickInterval, upload.UniformStepper(cfg.Upload.MaxIncrement), func(rec upload.Record) {
		if !live {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(out, progressLine(rec))
	})

	started := time.Now()
	for _, rec := range runner.Ingest(ctx, files) {
		if live && !rec.Uploading() {
			fmt.Fprintln(out, progressLine(rec))
		}
	}
	runner.Wait()

	summary.Records = tracker.Records()
	summary.Stats = tracker.Stats()
	summary.Cancelled = ctx.Err() != nil
	log.InfoWithFields("upload session finished", []logger.Field{
		logger.Count(len(summary.Records)),
		logger.Duration(time.Since(started)),
	})
	return summary, nil
}

func progressLine(rec upload.Record) string {
	switch rec.Status {
	case upload.StatusCompleted:
		return fmt.Sprintf("%s %s (%s) Complete", emoji.GetEmoji("success"), rec.Name, rec.SizeLabel)
	case upload.StatusError:
		return fmt.Sprintf("%s %s (%s) Error: %s", emoji.GetEmoji("error"), rec.Name, rec.SizeLabel, rec.Reason)
	default:
		bar := components.NewProgressBar(20).SetPercent(rec.Progress)
		return fmt.Sprintf("%s %s (%s) %s", emoji.GetEmoji("upload"), rec.Name, rec.SizeLabel, bar.Render())
	}
}

func writeUploadSummary(w io.Writer, format string, s *uploadSummary) error {
	if format == "json" {
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Fprintln(w)
	if s.Cancelled {
		fmt.Fprintf(w, "%s Upload cancelled\n", emoji.GetEmoji("warning"))
	} else if s.Stats.Completed > 0 {
		fmt.Fprintf(w, "%s Files uploaded successfully!\n", emoji.GetEmoji("success"))
	}
	for _, p := range s.Skipped {
		fmt.Fprintf(w, "%s could not read %s\n", emoji.GetEmoji("warning"), p)
	}
	fmt.Fprintf(w, "%s ingested %d · completed %d · rejected %d · still uploading %d\n",
		emoji.GetEmoji("statistic"), s.Stats.Ingested, s.Stats.Completed, s.Stats.Rejected, s.Stats.Active)
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/spread-splitter/internal/history"
	"github.com/pdiddy/spread-splitter/internal/split"
	"github.com/pdiddy/spread-splitter/pkg/types"
)

func init() {
	defaults := types.DefaultSplitConfig()

	f := rootCmd.Flags()
	f.Float64("zoom", defaults.Zoom, "render magnification (DPI = 72 * zoom)")
	f.Int("jpeg-quality", defaults.JPEGQuality, "JPEG quality for each half, 1-100")
	f.String("odd-width", string(defaults.OddWidth), "odd-width pages: preserve (right half wider) or trim (drop last column)")
	f.Bool("spill", false, "keep encoded halves in temporary files instead of memory")
	f.String("spill-dir", "", "directory for temporary files (implies --spill)")
	f.Bool("verify", false, "re-read the output and check its page count")

	_ = viper.BindPFlag("zoom", f.Lookup("zoom"))
	_ = viper.BindPFlag("jpeg_quality", f.Lookup("jpeg-quality"))
	_ = viper.BindPFlag("odd_width", f.Lookup("odd-width"))
	_ = viper.BindPFlag("spill", f.Lookup("spill"))
	_ = viper.BindPFlag("spill_dir", f.Lookup("spill-dir"))
	_ = viper.BindPFlag("verify", f.Lookup("verify"))
}

// splitConfig reads the pipeline settings from flags, environment, and the
// config file, in viper's precedence order.
func splitConfig() types.SplitConfig {
	return types.SplitConfig{
		Zoom:        viper.GetFloat64("zoom"),
		JPEGQuality: viper.GetInt("jpeg_quality"),
		OddWidth:    types.OddWidthPolicy(viper.GetString("odd_width")),
		Spill:       viper.GetBool("spill"),
		SpillDir:    viper.GetString("spill_dir"),
		Verify:      viper.GetBool("verify"),
		HistoryDB:   viper.GetString("history_db"),
	}
}

func runSplit(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	in, out := args[0], args[1]

	cfg := splitConfig()
	s, err := split.NewSplitter(cfg, split.OpenFitz, logrus.StandardLogger())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	started := time.Now()
	summary, runErr := s.Run(ctx, in, out)

	if cfg.HistoryDB != "" {
		recordRun(ctx, cfg.HistoryDB, in, out, started, summary, runErr)
	}

	if runErr != nil {
		return runErr
	}
	if summary.SkippedPages > 0 {
		logrus.WithField("pages", summary.Skipped).
			Warnf("%d of %d page(s) were skipped", summary.SkippedPages, summary.SourcePages)
	}
	return nil
}

// recordRun appends the run to the ledger. Ledger failures are logged and
// never change the run's outcome.
func recordRun(ctx context.Context, dbPath, in, out string, started time.Time, summary split.Summary, runErr error) {
	rec := types.RunRecord{
		InputPath:    in,
		OutputPath:   out,
		SourcePages:  summary.SourcePages,
		SplitPages:   summary.SplitPages,
		SkippedPages: summary.SkippedPages,
		OutputPages:  summary.OutputPages,
		StartedAt:    started,
		Duration:     summary.Duration,
		Status:       summary.Status(),
	}
	if runErr != nil {
		rec.Status = types.RunFailed
		rec.Error = runErr.Error()
	}

	store, err := history.Open(dbPath)
	if err != nil {
		logrus.WithError(err).Warn("Could not open run history")
		return
	}
	defer store.Close()

	// Record even when the run was interrupted.
	if ctx.Err() != nil {
		ctx = context.Background()
	}
	id, err := store.Record(ctx, rec)
	if err != nil {
		logrus.WithError(err).Warn("Could not record run")
		return
	}
	logrus.WithField("run", id).Debugf("Recorded run in %s", dbPath)
}

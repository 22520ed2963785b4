package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/penwyp/go-entparser/internal/analyzer"
	"github.com/penwyp/go-entparser/internal/core/model"
	"github.com/penwyp/go-entparser/internal/data/watcher"
	"github.com/penwyp/go-entparser/internal/presentation/formatter"
	"github.com/penwyp/go-entparser/internal/util"
	"github.com/spf13/cobra"
)

var watchQuiet time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Parse now and again whenever chat logs change",
	Long: `Runs a parse immediately, then watches the source directory and runs again
once .log files have been created or written and the directory has been quiet
for the debounce interval. Runs never overlap. Stop with Ctrl+C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchQuiet, "debounce", 2*time.Second,
		"Quiet period after the last change before parsing again")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := initLogging(); err != nil {
		return err
	}
	if watchQuiet <= 0 {
		return fmt.Errorf("debounce must be positive, got %s", watchQuiet)
	}

	cfg, err := prepareRun(loadSettings(cmd))
	if err != nil {
		return err
	}

	// Fail fast on configuration errors
	a, err := analyzer.New(cfg)
	if err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(cfg.SourceDir)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", cfg.SourceDir, err)
	}
	defer fw.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	out := cmd.OutOrStdout()
	if err := runOnce(out, a); err != nil {
		return err
	}
	fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", cfg.SourceDir)

	var runErr error
	watcher.Debounce(ctx, fw.Events(), watchQuiet, func(batch []watcher.FileEvent) {
		util.LogDebugf("%d file changes, parsing again", len(batch))
		if err := runOnce(out, a); err != nil {
			runErr = err
			cancel()
		}
	})
	return runErr
}

// runOnce performs one parse. Finding no events is reported but not fatal.
func runOnce(out io.Writer, a *analyzer.Analyzer) error {
	result, err := a.Run()
	if errors.Is(err, model.ErrNoEventsFound) {
		fmt.Fprintln(out, util.FormatWarning("No qualifying events found"))
		return nil
	}
	if err != nil {
		return err
	}
	return formatter.NewSummaryFormatter().Format(out, result)
}

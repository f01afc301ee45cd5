package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"cull/internal/processor"
	"cull/internal/tui"
)

var (
	rootWorkers    int
	rootVerbose    bool
	rootNoProgress bool
)

var rootCmd = &cobra.Command{
	Use:   "cull",
	Short: "cull 🧹 - flag and delete noise frames from image datasets",
	Long:  "cull 🧹 finds degenerate images in a dataset directory: single-color frames and files that fail to decode.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runBatch classifies path with the shared flag set, driving either the
// progress TUI or a verbose per-file logger.
func runBatch(path string) (processor.Summary, []processor.Result, error) {
	opts := processor.Options{Workers: rootWorkers}

	if rootVerbose {
		opts.Logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: false,
			Level:           log.DebugLevel,
		})
	}

	if rootVerbose || rootNoProgress {
		return processor.Run(context.Background(), path, opts, nil)
	}

	updates := make(chan processor.ProgressUpdate, 64)
	model := tui.NewModel(updates)
	program := tea.NewProgram(model)

	uiDone := make(chan struct{})
	go func() {
		defer close(uiDone)
		_, _ = program.Run()
		// The program can return before the batch finishes (no TTY, user
		// quit). Keep consuming so the processor's collector never blocks
		// on a full updates buffer.
		drainUpdates(updates)
	}()

	summary, results, err := processor.Run(context.Background(), path, opts, updates)
	close(updates)
	<-uiDone

	return summary, results, err
}

func drainUpdates(updates <-chan processor.ProgressUpdate) {
	for range updates {
	}
}

func init() {
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.PersistentFlags().IntVarP(&rootWorkers, "workers", "w", 0, "worker pool size (default: number of CPUs)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "log every file's verdict instead of showing progress")
	rootCmd.PersistentFlags().BoolVar(&rootNoProgress, "no-progress", false, "disable the progress display")
}

package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"cull/internal/tui"
)

var cleanDryRun bool

var cleanCmd = &cobra.Command{
	Use:   "clean [flags] <path>",
	Short: "Delete noise frames from a dataset directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, results, err := runBatch(args[0])
		if err != nil {
			return err
		}

		deleted := 0
		var freed int64
		for _, res := range results {
			if !res.Verdict.Flagged() {
				continue
			}
			if cleanDryRun {
				fmt.Fprintf(os.Stdout, "would delete %s (%s)\n", res.Name, res.Verdict)
				continue
			}
			if err := os.Remove(res.Path); err != nil {
				fmt.Fprintf(os.Stderr, "delete %s: %v\n", res.Name, err)
				continue
			}
			deleted++
			freed += res.Size
		}

		rows := []tui.SummaryRow{
			{Label: "Files scanned", Value: fmt.Sprintf("%d", summary.Processed)},
			{Label: "Uniform frames", Value: fmt.Sprintf("%d", summary.Uniform)},
			{Label: "Corrupted files", Value: fmt.Sprintf("%d", summary.Corrupted)},
			{Label: "Files deleted", Value: fmt.Sprintf("%d", deleted)},
			{Label: "Space freed", Value: humanize.Bytes(uint64(freed))},
		}
		fmt.Fprintln(os.Stdout, tui.RenderSummary(rows))

		if cleanDryRun {
			fmt.Fprintln(os.Stdout, "Dry run: no files were deleted.")
		} else {
			fmt.Fprintln(os.Stdout, cleanDoneStyle.Render("Dataset cleaned."))
		}

		return nil
	},
}

var cleanDoneStyle = lipgloss.NewStyle().Foreground(tui.ColorSuccess)

func init() {
	cleanCmd.Flags().BoolVarP(&cleanDryRun, "dry-run", "n", false, "list files that would be deleted without deleting them")

	rootCmd.AddCommand(cleanCmd)
}

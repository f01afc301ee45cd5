package cmd

import (
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"cull/internal/processor"
	"cull/internal/tui"
)

var scanCmd = &cobra.Command{
	Use:   "scan <path>",
	Short: "List noise frames without modifying files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, results, err := runBatch(args[0])
		if err != nil {
			return err
		}

		flagged := 0
		for _, res := range results {
			if !res.Verdict.Flagged() {
				continue
			}
			flagged++

			switch res.Verdict {
			case processor.VerdictUniform:
				fmt.Fprintf(os.Stdout, "%s  %s %s\n",
					scanFileStyle.Render(res.Name),
					scanUniformStyle.Render("uniform"),
					scanDimStyle.Render(formatColor(res.Color)),
				)
			case processor.VerdictCorrupted:
				fmt.Fprintf(os.Stdout, "%s  %s %s\n",
					scanFileStyle.Render(res.Name),
					scanCorruptStyle.Render("corrupted"),
					scanDimStyle.Render("("+res.Reason+")"),
				)
			}
		}

		if flagged == 0 {
			fmt.Fprintln(os.Stdout, scanDimStyle.Render("No noise found."))
		} else {
			fmt.Fprintf(os.Stdout, "\n%d of %d files flagged.\n", flagged, len(results))
		}

		return nil
	},
}

// formatColor renders the shared color of a uniform frame as an 8-bit hex
// tuple, alpha included when not fully opaque.
func formatColor(c color.Color) string {
	if c == nil {
		return ""
	}
	r, g, b, a := c.RGBA()
	if a == 0xffff {
		return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8)
}

var (
	scanFileStyle    = lipgloss.NewStyle().Bold(true).Foreground(tui.ColorAccent)
	scanUniformStyle = lipgloss.NewStyle().Foreground(tui.ColorWarn)
	scanCorruptStyle = lipgloss.NewStyle().Foreground(tui.ColorAccentAlt)
	scanDimStyle     = lipgloss.NewStyle().Foreground(tui.ColorDim)
)

func init() {
	rootCmd.AddCommand(scanCmd)
}

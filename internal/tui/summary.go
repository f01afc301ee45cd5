package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type SummaryRow struct {
	Label string
	Value string
}

// RenderSummary prints rows as a two-column table framed by rules, sized
// to the widest label and value. Padding happens before styling so ANSI
// sequences never skew the columns.
func RenderSummary(rows []SummaryRow) string {
	labelWidth, valueWidth := 0, 0
	for _, row := range rows {
		labelWidth = max(labelWidth, len(row.Label))
		valueWidth = max(valueWidth, len(row.Value))
	}

	rule := dimRuleStyle.Render(strings.Repeat("=", labelWidth+valueWidth+3))
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, rule)

	for _, row := range rows {
		label := fmt.Sprintf("%-*s", labelWidth+1, row.Label+":")
		value := fmt.Sprintf("%*s", valueWidth, row.Value)
		lines = append(lines, labelStyle.Render(label)+" "+valueStyle.Render(value))
	}

	lines = append(lines, rule)
	return strings.Join(lines, "\n")
}

var (
	valueStyle   = lipgloss.NewStyle().Foreground(ColorInk).Bold(true)
	dimRuleStyle = lipgloss.NewStyle().Foreground(ColorDim)
)

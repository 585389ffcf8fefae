package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A"))
	answerStyle = lipgloss.NewStyle().Bold(true)
	noneStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#AF5F5F"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAF5F"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F"))
	sepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#585858"))
)

// renderTable lays out headers and rows in padded columns separated by '|'.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	for i := range widths {
		widths[i] += 2
	}

	var sb strings.Builder
	line := func(cells []string, style lipgloss.Style) {
		for i, c := range cells {
			if i >= len(widths) {
				break
			}
			if i > 0 {
				sb.WriteString(sepStyle.Render("|"))
			}
			sb.WriteString(style.Padding(0, 1).Width(widths[i]).Render(c))
		}
		sb.WriteString("\n")
	}

	line(headers, headerStyle)
	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("-", total)) + "\n")
	for _, row := range rows {
		line(row, lipgloss.NewStyle())
	}

	return sb.String()
}

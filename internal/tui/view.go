package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"geosvg/internal/generator"
)

func (m Model) View() string {
	header := titleStyle.Render("geosvg") + dimStyle.Render(" ─ "+m.source)

	var status string
	switch {
	case m.err != nil:
		status = errStyle.Render("✗ " + m.err.Error())
	case m.finished:
		status = okStyle.Render("✓ " + m.status)
	default:
		status = m.spin.View() + " " + m.status
	}

	bar := m.bar.ViewAs(m.percent()) + dimStyle.Render(fmt.Sprintf("  %d/%d", m.done, m.total))

	rows := make([]string, 0, len(m.recent))
	for _, r := range m.recent {
		rows = append(rows, ResultLine(r))
	}

	left := lipgloss.JoinVertical(lipgloss.Left, status, "", bar, "", strings.Join(rows, "\n"))
	body := left
	if len(m.sketch) > 0 {
		outline := boxStyle.Render(titleStyle.Render(m.title) + "\n" + strings.Join(m.sketch, "\n"))
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", outline)
	}

	help := ""
	if !m.finished {
		help = "\n" + dimStyle.Render("q quit")
	}
	return appStyle.Render(header+"\n\n"+body+help) + "\n"
}

// ResultLine describes a written document on one line.
func ResultLine(r generator.Result) string {
	line := fmt.Sprintf("%s  %d shapes  %d bytes", r.Path, r.Shapes, r.Bytes)
	if r.Preview != "" {
		line += "  + " + r.Preview
	}
	return dimStyle.Render(line)
}

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"geosvg/internal/generator"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(60, max(10, msg.Width-8))
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case EventMsg:
		m.apply(msg.Event)
	case DoneMsg:
		m.finished = true
		m.results, m.err = msg.Results, msg.Err
		if m.err != nil {
			m.status = "failed"
		} else {
			m.status = fmt.Sprintf("wrote %d documents", len(m.results))
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) apply(e generator.Event) {
	switch e := e.(type) {
	case generator.Loaded:
		m.status = fmt.Sprintf("read %d placemarks from %s", e.Placemarks, e.Source)
	case generator.Assembled:
		m.total = e.Groups
		m.status = fmt.Sprintf("writing %d groups (%d shapes)", e.Groups, e.Shapes)
	case generator.GroupWritten:
		m.done, m.total = e.Done, e.Total
		m.status = "writing " + e.Group
		m.recent = append(m.recent, e.Result)
		if len(m.recent) > recentMax {
			m.recent = m.recent[len(m.recent)-recentMax:]
		}
		if e.Outline != nil && m.proj != nil {
			m.title = e.Group
			m.sketch = sketch(e.Outline, m.proj, sketchCols, sketchRows)
		}
	}
}

func (m Model) percent() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

// Package tui shows the progress of a run in the terminal.
package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"geosvg/internal/generator"
	"geosvg/internal/projection"
)

const (
	sketchCols = 36
	sketchRows = 9
	recentMax  = 6
)

// EventMsg carries a generator event into the program.
type EventMsg struct {
	Event generator.Event
}

// DoneMsg ends the program once the run has returned.
type DoneMsg struct {
	Results []generator.Result
	Err     error
}

type Model struct {
	width int

	source string
	proj   projection.Projector

	spin spinner.Model
	bar  progress.Model

	status string
	total  int
	done   int
	recent []generator.Result
	sketch []string
	title  string

	results  []generator.Result
	err      error
	finished bool
	aborted  bool
}

// New returns the model for a run reading source. proj draws the outline of
// each written group.
func New(source string, proj projection.Projector) Model {
	return Model{
		source: source,
		proj:   proj,
		status: "reading " + source,
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(titleStyle)),
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m Model) Init() tea.Cmd { return m.spin.Tick }

// Results returns what the run produced, once the program has exited.
func (m Model) Results() ([]generator.Result, error) { return m.results, m.err }

// Aborted reports whether the user quit before the run finished.
func (m Model) Aborted() bool { return m.aborted }

// Run starts the program and calls run in the background, forwarding its
// events. It returns when run has finished or the user quits.
func Run(m Model, run func(emit func(generator.Event)) ([]generator.Result, error)) (Model, error) {
	p := tea.NewProgram(m)
	go func() {
		res, err := run(func(e generator.Event) { p.Send(EventMsg{Event: e}) })
		p.Send(DoneMsg{Results: res, Err: err})
	}()
	final, err := p.Run()
	if err != nil {
		return m, err
	}
	return final.(Model), nil
}

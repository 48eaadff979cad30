// Package tui renders the capture's progress stages as a small bubbletea
// program when stdout is a terminal. Grounded on monitor/main.go's style
// table and tea.Model shape, trimmed from an interactive CPU/memory
// debugger down to a one-way progress log.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	titleStyle = lipgloss.NewStyle().
			Foreground(subtle).
			Padding(0, 1)

	stageStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1).
			Width(40)

	doneStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true)

	spinnerFrames = []string{"|", "/", "-", "\\"}
)

type stageMsg string
type doneMsg struct{}
type tickMsg time.Time

// Model is the bubbletea program driving the progress display. Capture's
// Progress callback sends stage names over Stages; the CLI closes Done
// once the capture goroutine returns.
type Model struct {
	Stages chan string
	Done   chan struct{}

	history []string
	spinIdx int
	quitting bool
}

// NewModel returns a Model ready to hand to tea.NewProgram.
func NewModel(stages chan string, done chan struct{}) Model {
	return Model{Stages: stages, Done: done}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForStage(m.Stages), waitForDone(m.Done), tick())
}

func waitForStage(stages chan string) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-stages
		if !ok {
			return doneMsg{}
		}
		return stageMsg(s)
	}
}

func waitForDone(done chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return doneMsg{}
	}
}

func tick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stageMsg:
		m.history = append(m.history, string(msg))
		return m, waitForStage(m.Stages)
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	case tickMsg:
		m.spinIdx = (m.spinIdx + 1) % len(spinnerFrames)
		if m.quitting {
			return m, nil
		}
		return m, tick()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	title := titleStyle.Render("c64shot capture")
	var body string
	for i, stage := range m.history {
		marker := " "
		if i == len(m.history)-1 && !m.quitting {
			marker = spinnerFrames[m.spinIdx]
		} else {
			marker = doneStyle.Render("✓")
		}
		body += fmt.Sprintf("%s %s\n", marker, stage)
	}
	if m.quitting {
		body += doneStyle.Render("capture complete")
	}
	return title + "\n" + stageStyle.Render(body)
}

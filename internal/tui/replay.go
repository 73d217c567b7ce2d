// Package tui implements the terminal trajectory replayer. It is a
// pure consumer of a recorded anneal.Trajectory: the solver core never
// depends on it, and replay timing and input handling live entirely in
// the bubbletea event loop here.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gitrdm/annealkit/pkg/anneal"
)

// BoardRenderer turns a puzzle state into a printable board. Each puzzle
// package supplies its own (tiles and queens states both implement
// fmt.Stringer, so a thin adapter suffices).
type BoardRenderer func(anneal.State) string

// Config tunes the replayer.
type Config struct {
	// Title is shown above the board.
	Title string

	// FrameDelay is the pause between steps during automatic playback.
	FrameDelay time.Duration
}

// DefaultConfig returns the replayer defaults.
func DefaultConfig() Config {
	return Config{
		Title:      "annealing replay",
		FrameDelay: 140 * time.Millisecond,
	}
}

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	Play  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:  key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/n", "next step")),
		Prev:  key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/p", "previous step")),
		First: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first step")),
		Last:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last step")),
		Play:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Play, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Play, k.Quit},
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	solvedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

type tickMsg time.Time

// Model is the bubbletea model replaying one trajectory.
type Model struct {
	cfg    Config
	traj   *anneal.Trajectory
	render BoardRenderer

	index   int
	playing bool

	keys keyMap
	help help.Model
}

// NewModel builds a replayer positioned at the first step.
func NewModel(traj *anneal.Trajectory, render BoardRenderer, cfg Config) Model {
	if cfg.FrameDelay <= 0 {
		cfg.FrameDelay = DefaultConfig().FrameDelay
	}
	return Model{
		cfg:    cfg,
		traj:   traj,
		render: render,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Index returns the current step position.
func (m Model) Index() int { return m.index }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.FrameDelay, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if !m.playing {
			return m, nil
		}
		if m.index < m.traj.Len()-1 {
			m.index++
			return m, m.tick()
		}
		m.playing = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.playing = false
			if m.index < m.traj.Len()-1 {
				m.index++
			}
		case key.Matches(msg, m.keys.Prev):
			m.playing = false
			if m.index > 0 {
				m.index--
			}
		case key.Matches(msg, m.keys.First):
			m.playing = false
			m.index = 0
		case key.Matches(msg, m.keys.Last):
			m.playing = false
			m.index = m.traj.Len() - 1
		case key.Matches(msg, m.keys.Play):
			m.playing = !m.playing
			if m.playing {
				return m, m.tick()
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	step := m.traj.At(m.index)

	status := fmt.Sprintf("step %d/%d  cost %d  T %.4g",
		m.index+1, m.traj.Len(), step.Cost, step.Temperature)
	if step.Move != nil {
		status += "  " + step.Move.String()
	}

	lines := titleStyle.Render(m.cfg.Title) + "\n" +
		boardStyle.Render(m.render(step.State)) + "\n" +
		statusStyle.Render(status) + "\n"
	if step.Cost == 0 && m.index == m.traj.Len()-1 {
		lines += solvedStyle.Render("solved") + "\n"
	}
	return lines + m.help.View(m.keys)
}

// Run replays traj in the terminal until the user quits.
func Run(traj *anneal.Trajectory, render BoardRenderer, cfg Config) error {
	p := tea.NewProgram(NewModel(traj, render, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

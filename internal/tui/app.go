// Package tui is an interactive list view over the active context.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tasklog/tasks/internal/manager"
	"github.com/tasklog/tasks/internal/ui"
	"github.com/tasklog/tasks/pkg/task"
)

const footerHeight = 1

type mode int

const (
	browsing mode = iota
	adding
	editing
)

var (
	cursorStyle = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(ui.Faded)
	errStyle    = lipgloss.NewStyle().Foreground(ui.Red)
)

const help = "j/k move · a add · e edit · x done · u undo · c cancel · b block · d delay · 0/1/2/3 priority · q quit"

type App struct {
	mgr      *manager.Manager
	viewport viewport.Model
	input    textinput.Model

	mode   mode
	tasks  []*task.Task
	cursor int
	err    error
}

func NewApp(m *manager.Manager) *App {
	i := textinput.New()
	i.Prompt = "> "
	i.CharLimit = 200
	return &App{mgr: m, input: i, tasks: m.Tasks()}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.viewport.Width = msg.Width
		a.viewport.Height = msg.Height - footerHeight
	case tea.KeyMsg:
		if a.mode != browsing {
			return a.updateInput(msg)
		}
		a.err = nil
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "j", "down":
			a.setCursor(a.cursor + 1)
		case "k", "up":
			a.setCursor(a.cursor - 1)
		case "a":
			a.mode = adding
			a.input.SetValue("")
			a.input.Focus()
			return a, textinput.Blink
		case "e":
			if t := a.atCursor(); t != nil {
				a.mode = editing
				a.input.SetValue(t.Message)
				a.input.Focus()
				return a, textinput.Blink
			}
		case "x":
			a.mutate(a.mgr.Complete)
		case "u":
			a.mutate(a.mgr.Uncomplete)
		case "c":
			a.mutate(a.mgr.Cancel)
		case "b":
			if t := a.atCursor(); t != nil {
				if t.Blocked {
					a.mutate(a.mgr.Unblock)
				} else {
					a.mutate(a.mgr.Block)
				}
			}
		case "d":
			if t := a.atCursor(); t != nil {
				if t.Delayed {
					a.mutate(a.mgr.Undelay)
				} else {
					a.mutate(a.mgr.Delay)
				}
			}
		case "1", "2", "3", "0":
			level := msg.String()
			a.mutate(func(id int) error {
				return a.mgr.SetPriority(id, level)
			})
		}
	}

	a.viewport.SetContent(a.render())
	return a, nil
}

func (a *App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = browsing
		a.input.Blur()
	case "enter":
		message := a.input.Value()
		if message != "" {
			var err error
			if a.mode == adding {
				_, err = a.mgr.Add(message, false)
			} else if t := a.atCursor(); t != nil {
				err = a.mgr.Edit(t.ID, message)
			}
			a.err = err
		}
		a.mode = browsing
		a.input.Blur()
		a.refresh()
	default:
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	a.viewport.SetContent(a.render())
	return a, nil
}

func (a *App) mutate(op func(int) error) {
	t := a.atCursor()
	if t == nil {
		return
	}
	a.err = op(t.ID)
	a.refresh()
}

func (a *App) refresh() {
	a.tasks = a.mgr.Tasks()
	a.setCursor(a.cursor)
}

func (a *App) atCursor() *task.Task {
	if a.cursor >= len(a.tasks) {
		return nil
	}
	return a.tasks[a.cursor]
}

func (a *App) setCursor(value int) {
	a.cursor = clamp(value, 0, max(len(a.tasks)-1, 0))
	// keep the cursor inside the viewport
	if a.cursor >= a.viewport.YOffset+a.viewport.Height {
		a.viewport.YOffset = a.cursor - a.viewport.Height + 1
	}
	if a.cursor < a.viewport.YOffset {
		a.viewport.YOffset = a.cursor
	}
}

func (a *App) render() string {
	s := ""
	for i, t := range a.tasks {
		prefix := "  "
		line := ui.Line(*t)
		if i == a.cursor {
			prefix = cursorStyle.Render("> ")
		}
		s += prefix + line + "\n"
	}
	return s
}

func (a *App) View() string {
	footer := helpStyle.Render(help)
	if a.mode != browsing {
		footer = a.input.View()
	}
	if a.err != nil {
		footer = errStyle.Render(a.err.Error())
	}
	return a.viewport.View() + "\n" + footer
}

func clamp(v, low, high int) int {
	return min(high, max(low, v))
}

// Package ui renders tasks for the terminal. Styling is cosmetic:
// only the plain Line form is ever persisted.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tasklog/tasks/pkg/task"
)

var (
	tag       = lipgloss.NewStyle().Foreground(Green)
	high      = lipgloss.NewStyle().Foreground(White).Background(Red).Bold(true)
	medium    = lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	low       = lipgloss.NewStyle().Foreground(White).Bold(true)
	completed = lipgloss.NewStyle().Foreground(Green).Bold(true)
	cancelled = lipgloss.NewStyle().Foreground(Purple).Bold(true)
	due       = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	blocked   = high
	delayed   = low
)

func render(s lipgloss.Style) func(string) string {
	return func(str string) string { return s.Render(str) }
}

var decorator = task.Decorator{
	Tag:       render(tag),
	High:      render(high),
	Medium:    render(medium),
	Low:       render(low),
	Completed: render(completed),
	Cancelled: render(cancelled),
	Due:       render(due),
	Blocked:   render(blocked),
	Delayed:   render(delayed),
}

// Message is the colorized form of a task message.
func Message(t task.Task) string {
	return t.Decorate(decorator)
}

// Line is the display form of a full task line.
func Line(t task.Task) string {
	return fmt.Sprintf("%d - [%s] - %s", t.ID, t.State, Message(t))
}

// Standup is the condensed status-update form: a state glyph followed
// by the colorized message.
func Standup(t task.Task) string {
	glyph := "○"
	switch t.State {
	case task.Completed:
		glyph = "●"
	case task.Cancelled:
		glyph = "⊝"
	}
	return "  " + glyph + " " + Message(t)
}

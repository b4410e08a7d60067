// Package manager wires task collections to their on-disk layout and
// implements every user-facing operation.
//
// The layout under the root directory is one subdirectory per
// context (organization), each holding a current.log, an archive.log
// and a taskid counter file, plus a top-level context file recording
// which organization is active.
package manager

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tasklog/tasks/internal/config"
	"github.com/tasklog/tasks/internal/ui"
	"github.com/tasklog/tasks/pkg/persist"
	"github.com/tasklog/tasks/pkg/task"
)

type Manager struct {
	dir     string
	context string

	current *task.Store
	archive *task.Store
	counter *persist.Counter
}

// New sets up the on-disk layout described by cfg and opens the
// active context.
func New(cfg config.Config) (*Manager, error) {
	m := &Manager{dir: cfg.Dir, context: cfg.Context}
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return nil, err
	}
	if err := m.loadContext(); err != nil {
		return nil, err
	}
	if err := m.openContext(); err != nil {
		return nil, err
	}
	return m, nil
}

// Context returns the active organization name.
func (m *Manager) Context() string {
	return m.context
}

// loadContext reads the context file, which wins over the configured
// default. A missing file is created with the default.
func (m *Manager) loadContext() error {
	path := filepath.Join(m.dir, "context")
	bs, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return os.WriteFile(path, []byte(m.context), 0o644)
	}
	if err != nil {
		return err
	}
	name, _, _ := strings.Cut(string(bs), "\n")
	if name != "" {
		m.context = name
	}
	return nil
}

// openContext creates the context directory and its files if needed,
// then loads both collections.
func (m *Manager) openContext() error {
	dir := filepath.Join(m.dir, m.context)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, f := range []string{"current.log", "archive.log"} {
		if err := touch(filepath.Join(dir, f)); err != nil {
			return err
		}
	}

	var err error
	m.current, err = task.NewStore(persist.InLines(filepath.Join(dir, "current.log")))
	if err != nil {
		return err
	}
	m.archive, err = task.NewStore(persist.InLines(filepath.Join(dir, "archive.log")))
	if err != nil {
		return err
	}
	m.counter = persist.NewCounter(filepath.Join(dir, "taskid"))
	return nil
}

func touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}

// Use switches to another organization, recording it in the context
// file and creating its directory on first use.
func (m *Manager) Use(org string) error {
	if err := os.WriteFile(filepath.Join(m.dir, "context"), []byte(org), 0o644); err != nil {
		return err
	}
	m.context = org
	return m.openContext()
}

func (m *Manager) find(id int) (*task.Task, error) {
	t, err := m.current.Find(id)
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", id, err)
	}
	return t, nil
}

// Add creates a task with the next id for this context.
func (m *Manager) Add(message string, completed bool) (*task.Task, error) {
	id, err := m.counter.Next()
	if err != nil {
		return nil, err
	}
	state := task.Incomplete
	if completed {
		state = task.Completed
	}
	t, err := task.New(id, message, state)
	if err != nil {
		return nil, err
	}
	return t, m.current.Insert(t)
}

// Edit replaces a task's message wholesale.
func (m *Manager) Edit(id int, message string) error {
	t, err := m.find(id)
	if err != nil {
		return err
	}
	if err := t.Apply(message); err != nil {
		return err
	}
	return m.current.Update(t)
}

func (m *Manager) Complete(id int) error {
	return m.mutate(id, (*task.Task).Complete)
}

func (m *Manager) Uncomplete(id int) error {
	return m.mutate(id, (*task.Task).Uncomplete)
}

func (m *Manager) Cancel(id int) error {
	return m.mutate(id, (*task.Task).Cancel)
}

func (m *Manager) Block(id int) error {
	return m.mutate(id, (*task.Task).Block)
}

func (m *Manager) Unblock(id int) error {
	return m.mutate(id, (*task.Task).Unblock)
}

func (m *Manager) Delay(id int) error {
	return m.mutate(id, (*task.Task).Delay)
}

func (m *Manager) Undelay(id int) error {
	return m.mutate(id, (*task.Task).Undelay)
}

// SetPriority forwards the level token to the task; unknown tokens
// are a no-op by contract, so no error comes back.
func (m *Manager) SetPriority(id int, level string) error {
	t, err := m.find(id)
	if err != nil {
		return err
	}
	t.SetPriority(level)
	return m.current.Update(t)
}

func (m *Manager) mutate(id int, op func(*task.Task)) error {
	t, err := m.find(id)
	if err != nil {
		return err
	}
	op(t)
	return m.current.Update(t)
}

func (m *Manager) Remove(id int) error {
	if _, err := m.find(id); err != nil {
		return err
	}
	return m.current.Remove(id)
}

// Archive moves one task from the current log to the archive log.
func (m *Manager) Archive(id int) error {
	t, err := m.find(id)
	if err != nil {
		return err
	}
	if err := m.archive.Insert(t); err != nil {
		return err
	}
	return m.current.Remove(id)
}

// Clean moves every completed or cancelled task to the archive log.
func (m *Manager) Clean() error {
	for _, t := range m.current.All() {
		if t.State == task.Incomplete {
			continue
		}
		if err := m.Archive(t.ID); err != nil {
			return err
		}
	}
	return nil
}

// Tasks returns the current context's tasks in id order.
func (m *Manager) Tasks() []*task.Task {
	return m.current.All()
}

// List writes every task in display form.
func (m *Manager) List(w io.Writer) {
	for _, t := range m.current.All() {
		fmt.Fprintln(w, ui.Line(*t))
	}
}

// Summary writes the standup view: what was finished over the last
// day, what was finished today, and what is still open and not
// delayed.
func (m *Manager) Summary(w io.Writer) {
	tasks := m.current.All()

	fmt.Fprintln(w, "*Yesterday*")
	for _, t := range tasks {
		if task.CompletedYesterday(*t) {
			fmt.Fprintln(w, ui.Standup(*t))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "*Today*")
	for _, t := range tasks {
		if task.CompletedToday(*t) {
			fmt.Fprintln(w, ui.Standup(*t))
		}
	}
	for _, t := range tasks {
		if task.IsIncomplete(*t) && task.NotDelayed(*t) {
			fmt.Fprintln(w, ui.Standup(*t))
		}
	}
}

// Package persist stores task collections as plain text log files,
// one task per line.
package persist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tasklog/tasks/pkg/task"
)

var _ task.Persistor = (*Lines)(nil)

// Lines persists a collection in the storage line format. Saves write
// a temporary file and rename it over the log, so a crash mid-write
// never truncates the log.
type Lines struct {
	file string
}

func InLines(file string) *Lines {
	return &Lines{file}
}

// Load reads and decodes every non-empty line. A missing file is an
// empty collection.
func (l Lines) Load() ([]*task.Task, error) {
	bs, err := os.ReadFile(l.file)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var tasks []*task.Task
	for _, line := range strings.Split(string(bs), "\n") {
		if line == "" {
			continue
		}
		t, err := task.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", l.file, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (l Lines) Save(tasks []*task.Task) error {
	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(t.Line())
		b.WriteString("\n")
	}
	return replace(l.file, b.String())
}

// replace atomically swaps the contents of file.
func replace(file, contents string) error {
	tmp, err := os.CreateTemp(filepath.Dir(file), "."+filepath.Base(file)+"-*")
	if err != nil {
		return err
	}
	if _, err := tmp.WriteString(contents); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), file)
}

package persist

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Counter persists the last issued task id for a context. Ids are
// never reused within a context, even after removals.
type Counter struct {
	file string
}

func NewCounter(file string) *Counter {
	return &Counter{file}
}

// Load returns the last issued id. A missing file means no id has
// been issued yet.
func (c Counter) Load() (int, error) {
	bs, err := os.ReadFile(c.file)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	first, _, _ := strings.Cut(strings.TrimSpace(string(bs)), "\n")
	n, err := strconv.Atoi(first)
	if err != nil {
		return 0, fmt.Errorf("%s: bad task id counter: %w", c.file, err)
	}
	return n, nil
}

// Next issues the next id and persists it before returning.
func (c Counter) Next() (int, error) {
	last, err := c.Load()
	if err != nil {
		return 0, err
	}
	next := last + 1
	if err := replace(c.file, strconv.Itoa(next)); err != nil {
		return 0, err
	}
	return next, nil
}

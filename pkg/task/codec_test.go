package task

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/tasklog/tasks/pkg/task/date"
)

func TestParse_RoundTrip(t *testing.T) {
	lines := []string{
		"1 - [ ] - water the plants +home",
		"2 - [x] - buy milk +errand @high @completed(2024-01-15 09:30)",
		"3 - [-] - old idea @cancelled(2023-12-01 18:00)",
		"4 - [ ] - fix boiler @due(2024-06-01 08:00) @blocked",
		"5 - [x] - water the plants +home @due(2024-06-01 08:00) @completed(2024-06-02 10:00)",
		"12 - [ ] - plain message with no metadata",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			is := is.New(t)
			tk, err := Parse(line)
			is.NoErr(err)
			is.Equal(tk.Line(), line)
		})
	}
}

func TestParse_StateChars(t *testing.T) {
	tests := []struct {
		char string
		want State
	}{
		{"x", Completed},
		{"-", Cancelled},
		{" ", Incomplete},
		{"?", Incomplete}, // lenient: unmapped chars mean incomplete
	}
	for _, tt := range tests {
		t.Run(tt.char, func(t *testing.T) {
			is := is.New(t)
			tk, err := Parse(fmt.Sprintf("1 - [%s] - something", tt.char))
			is.NoErr(err)
			is.Equal(tk.State, tt.want)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	lines := []string{
		"",
		"nonsense",
		"x - [ ] - no numeric id",
		"1 [x] missing separators",
		"1 - x - no brackets",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			is := is.New(t)
			_, err := Parse(line)
			is.True(errors.Is(err, ErrBadLine))
		})
	}
}

func TestParse_EndToEnd(t *testing.T) {
	is := is.New(t)

	tk, err := Parse("3 - [ ] - water the plants +home @due(2024-06-01 08:00)")
	is.NoErr(err)
	is.Equal(tk.ID, 3)
	is.Equal(tk.State, Incomplete)
	is.Equal(tk.Tags, []string{"home"})
	is.Equal(*tk.Due, time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local))

	tk.Complete()
	want := fmt.Sprintf(
		"3 - [x] - water the plants +home @due(2024-06-01 08:00) @completed(%s)",
		tk.Completed.Format(date.Stamp),
	)
	is.Equal(tk.Line(), want)
}

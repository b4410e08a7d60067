package task

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/tasklog/tasks/pkg/task/date"
)

var ErrBadLine = errors.New("malformed task line")

// State is the one-character completion state stored in a task line.
type State string

const (
	Completed  State = "x"
	Incomplete State = " "
	Cancelled  State = "-"
)

// ParseState maps a state character from a stored line. Anything
// unrecognized means Incomplete.
func ParseState(s string) State {
	switch s {
	case string(Completed):
		return Completed
	case string(Cancelled):
		return Cancelled
	}
	return Incomplete
}

type Priority string

const (
	NoPriority Priority = ""
	Low        Priority = "low"
	Medium     Priority = "medium"
	High       Priority = "high"
)

// Task is one line of the task log. Message is the source of truth:
// every other field is derived from, or mirrored into, the directives
// embedded in it, so mutators always end by re-synchronizing the text.
type Task struct {
	ID      int
	Message string
	State   State

	Tags      []string
	Priority  Priority
	Due       *time.Time
	Completed *time.Time
	Cancelled *time.Time
	Blocked   bool
	Delayed   bool
}

// New builds a task from scratch. An empty state means Incomplete.
func New(id int, message string, state State) (*Task, error) {
	t := &Task{ID: id, State: Incomplete}
	if state != "" {
		t.State = state
	}
	if err := t.Apply(message); err != nil {
		return nil, err
	}
	return t, nil
}

// Parse decodes a stored line of the form "id - [s] - message".
func Parse(line string) (*Task, error) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrBadLine, line)
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadLine, line)
	}
	return New(id, m[3], ParseState(m[2]))
}

// Apply replaces the message and re-derives the embedded metadata.
// Applying the same message twice yields the same fields. Unrecognized
// directive names are left in the text and mutate nothing.
func (t *Task) Apply(message string) error {
	t.Message = message
	t.Tags = Tags(message)

	for _, d := range directives(message) {
		switch d.name {
		case "high":
			t.Priority = High
		case "medium":
			t.Priority = Medium
		case "low":
			t.Priority = Low
		case "completed":
			t.State = Completed
			if d.hasParams {
				at, err := date.ParseStamp(d.params)
				if err != nil {
					return fmt.Errorf("completed directive: %w", err)
				}
				t.Completed = &at
			}
		case "due":
			if d.hasParams {
				at, err := date.Resolve(d.params)
				if err != nil {
					return fmt.Errorf("due directive: %w", err)
				}
				t.Due = &at
				t.replaceDue(d.params)
			}
		case "blocked":
			t.Blocked = true
		case "delayed":
			t.Delayed = true
		}
	}
	return nil
}

// Line renders the persisted form of the task.
func (t Task) Line() string {
	return fmt.Sprintf("%d - [%s] - %s", t.ID, t.State, t.Message)
}

// Complete marks the task done and stamps the message.
func (t *Task) Complete() {
	t.State = Completed
	t.stripState()
	now := time.Now().Truncate(time.Minute)
	t.Completed = &now
	t.Message += " @completed(" + now.Format(date.Stamp) + ")"
}

// Uncomplete reopens the task. Only the textual directive is removed;
// a previously parsed Completed stamp stays in memory.
func (t *Task) Uncomplete() {
	t.State = Incomplete
	t.stripState()
}

// Cancel marks the task cancelled and stamps the message.
func (t *Task) Cancel() {
	t.State = Cancelled
	t.stripState()
	now := time.Now().Truncate(time.Minute)
	t.Cancelled = &now
	t.Message += " @cancelled(" + now.Format(date.Stamp) + ")"
}

// SetPriority interprets a user-supplied priority token: the level
// name, its first letter, or a digit, with "none"/"n"/"0" clearing the
// priority. Unknown tokens leave the task untouched.
func (t *Task) SetPriority(level string) {
	switch strings.ToLower(level) {
	case "low", "l", "1":
		t.Priority = Low
	case "medium", "m", "2":
		t.Priority = Medium
	case "high", "h", "3":
		t.Priority = High
	case "none", "n", "0":
		t.Priority = NoPriority
		t.Message = priorityRe.ReplaceAllString(t.Message, "")
		return
	default:
		return
	}
	if priorityRe.MatchString(t.Message) {
		t.Message = priorityRe.ReplaceAllString(t.Message, "@"+string(t.Priority))
	} else {
		t.Message += " @" + string(t.Priority)
	}
}

func (t *Task) Block() {
	t.Blocked = true
	t.stripBlocked()
	t.Message += " @blocked"
}

func (t *Task) Unblock() {
	t.Blocked = false
	t.stripBlocked()
}

func (t *Task) Delay() {
	t.Delayed = true
	t.stripDelayed()
	t.Message += " @delayed"
}

func (t *Task) Undelay() {
	t.Delayed = false
	t.stripDelayed()
}

// stripState removes both terminal-state directives, whichever
// transition fired. That shared strip is what keeps @completed and
// @cancelled mutually exclusive in the text.
func (t *Task) stripState() {
	t.Message = completedRe.ReplaceAllString(t.Message, "")
	t.Message = cancelledRe.ReplaceAllString(t.Message, "")
	t.Message = strings.TrimRightFunc(t.Message, unicode.IsSpace)
	t.Message = squeezeRe.ReplaceAllString(t.Message, " ")
}

func (t *Task) stripBlocked() {
	t.Message = blockedRe.ReplaceAllString(t.Message, "")
	t.Message = strings.TrimRightFunc(t.Message, unicode.IsSpace)
}

func (t *Task) stripDelayed() {
	t.Message = delayedRe.ReplaceAllString(t.Message, "")
	t.Message = strings.TrimRightFunc(t.Message, unicode.IsSpace)
}

// replaceDue rewrites the due directive via exact substring
// substitution so its position in the message survives normalization
// and neighbouring directives are untouched.
func (t *Task) replaceDue(expr string) {
	old := "@due(" + expr + ")"
	t.Message = strings.Replace(t.Message, old, "@due("+t.Due.Format(date.Stamp)+")", 1)
}

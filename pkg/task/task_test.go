package task

import (
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/tasklog/tasks/pkg/task/date"
)

func TestApply_Idempotent(t *testing.T) {
	is := is.New(t)

	tk, err := New(1, "ship release +work @high @due(2024-06-01 08:00) @blocked", "")
	is.NoErr(err)

	once := *tk
	onceTags := append([]string(nil), tk.Tags...)

	is.NoErr(tk.Apply(tk.Message))
	is.Equal(tk.Message, once.Message)
	is.Equal(tk.Tags, onceTags)
	is.Equal(tk.Priority, once.Priority)
	is.Equal(tk.Blocked, once.Blocked)
	is.Equal(*tk.Due, *once.Due)
}

func TestApply_Fields(t *testing.T) {
	is := is.New(t)

	tk, err := New(7, "fix the boiler +home +urgent @medium @delayed", "")
	is.NoErr(err)
	is.Equal(tk.Tags, []string{"home", "urgent"})
	is.Equal(tk.Priority, Medium)
	is.True(tk.Delayed)
	is.True(!tk.Blocked)
	is.Equal(tk.State, Incomplete)
}

func TestApply_UnknownDirectiveIgnored(t *testing.T) {
	is := is.New(t)

	msg := "review notes @someday @waiting(bob)"
	tk, err := New(2, msg, "")
	is.NoErr(err)
	// unknown names mutate nothing and stay in the text
	is.Equal(tk.Message, msg)
	is.Equal(tk.Priority, NoPriority)
	is.True(!tk.Blocked)
}

func TestApply_NormalizesRelativeDue(t *testing.T) {
	is := is.New(t)

	tk, err := New(3, "call mum @due(tomorrow)", "")
	is.NoErr(err)
	is.True(tk.Due != nil)
	is.True(!strings.Contains(tk.Message, "tomorrow"))
	is.True(strings.Contains(tk.Message, "@due("+tk.Due.Format(date.Stamp)+")"))

	want := time.Now().Add(24 * time.Hour)
	diff := tk.Due.Sub(want)
	if diff < 0 {
		diff = -diff
	}
	is.True(diff < 2*time.Minute)
}

func TestApply_BadDueFails(t *testing.T) {
	is := is.New(t)

	_, err := New(4, "oops @due(not-a-date)", "")
	is.True(err != nil)
}

func TestTags_OrderAndDuplicates(t *testing.T) {
	is := is.New(t)
	is.Equal(Tags("+a do +b thing +a"), []string{"a", "b", "a"})
	is.Equal(Tags("no tags here"), []string(nil))
}

func TestComplete_RoundTripsThroughText(t *testing.T) {
	is := is.New(t)

	tk, err := New(5, "buy milk +errand @high", "")
	is.NoErr(err)

	tk.Complete()
	is.Equal(tk.State, Completed)
	is.True(tk.Completed != nil)
	is.True(strings.HasSuffix(tk.Message, "@completed("+tk.Completed.Format(date.Stamp)+")"))
	is.True(strings.Contains(tk.Message, "+errand"))
	is.True(strings.Contains(tk.Message, "@high"))

	back, err := Parse(tk.Line())
	is.NoErr(err)
	is.Equal(back.State, Completed)

	back.Uncomplete()
	is.Equal(back.State, Incomplete)
	is.Equal(back.Message, "buy milk +errand @high")
}

func TestCancel_StripsCompletedToo(t *testing.T) {
	is := is.New(t)

	tk, err := New(6, "renew passport", "")
	is.NoErr(err)

	tk.Complete()
	tk.Cancel()
	is.Equal(tk.State, Cancelled)
	is.True(!strings.Contains(tk.Message, "@completed"))
	is.True(strings.Contains(tk.Message, "@cancelled("))
	is.True(tk.Cancelled != nil)
}

func TestUncomplete_KeepsCompletedStamp(t *testing.T) {
	is := is.New(t)

	tk, err := Parse("9 - [x] - done thing @completed(2024-01-15 09:30)")
	is.NoErr(err)
	is.True(tk.Completed != nil)

	tk.Uncomplete()
	// only the textual directive goes away
	is.True(!strings.Contains(tk.Message, "@completed"))
	is.True(tk.Completed != nil)
}

func TestSetPriority_Cycle(t *testing.T) {
	is := is.New(t)

	tk, err := New(8, "write report", "")
	is.NoErr(err)

	for _, level := range []string{"low", "medium", "high"} {
		tk.SetPriority(level)
		is.Equal(tk.Priority, Priority(level))
		is.Equal(priorityRe.FindAllString(tk.Message, -1), []string{"@" + level})
	}
}

func TestSetPriority_ShortCodes(t *testing.T) {
	is := is.New(t)

	tk, err := New(8, "write report", "")
	is.NoErr(err)

	tk.SetPriority("h")
	is.Equal(tk.Priority, High)
	tk.SetPriority("2")
	is.Equal(tk.Priority, Medium)
	tk.SetPriority("L")
	is.Equal(tk.Priority, Low)
}

func TestSetPriority_Clear(t *testing.T) {
	is := is.New(t)

	tk, err := New(8, "write report", "")
	is.NoErr(err)

	tk.SetPriority("high")
	tk.SetPriority("none")
	is.Equal(tk.Priority, NoPriority)
	is.True(!strings.Contains(tk.Message, "@high"))
}

func TestSetPriority_UnknownTokenIsNoop(t *testing.T) {
	is := is.New(t)

	tk, err := New(8, "write report @high", "")
	is.NoErr(err)

	before := tk.Message
	tk.SetPriority("xyz")
	is.Equal(tk.Message, before)
	is.Equal(tk.Priority, High)
}

func TestBlockUnblock_RestoresMessage(t *testing.T) {
	is := is.New(t)

	tk, err := New(10, "pay rent +home", "")
	is.NoErr(err)

	before := tk.Message
	tk.Block()
	is.True(tk.Blocked)
	is.True(strings.HasSuffix(tk.Message, "@blocked"))

	tk.Unblock()
	is.True(!tk.Blocked)
	is.Equal(tk.Message, before)
}

func TestDelayUndelay_RestoresMessage(t *testing.T) {
	is := is.New(t)

	tk, err := New(11, "tidy garage", "")
	is.NoErr(err)

	before := tk.Message
	tk.Delay()
	is.True(tk.Delayed)
	is.True(strings.HasSuffix(tk.Message, "@delayed"))

	tk.Undelay()
	is.True(!tk.Delayed)
	is.Equal(tk.Message, before)
}

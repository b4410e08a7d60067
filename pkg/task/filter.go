package task

import "time"

// Filters consumed by the standup summary. They operate on the
// structured fields, so they expect a freshly parsed collection.

// IsIncomplete reports whether the task is still open.
func IsIncomplete(t Task) bool {
	return t.State == Incomplete
}

// NotDelayed reports whether the task is not flagged @delayed.
func NotDelayed(t Task) bool {
	return !t.Delayed
}

// CompletedYesterday reports whether the task was completed within the
// last 28 hours, the lookback window the summary calls "yesterday".
func CompletedYesterday(t Task) bool {
	if t.Completed == nil {
		return false
	}
	return !t.Completed.Add(28 * time.Hour).Before(time.Now())
}

// CompletedToday reports whether the task was completed within 12
// hours either side of now.
func CompletedToday(t Task) bool {
	if t.Completed == nil {
		return false
	}
	now := time.Now()
	return t.Completed.Before(now.Add(12*time.Hour)) && t.Completed.After(now.Add(-12*time.Hour))
}

package task

import "regexp"

// Decorator supplies the visual treatment for each directive class.
// Nil entries leave that class untouched.
type Decorator struct {
	Tag       func(string) string
	High      func(string) string
	Medium    func(string) string
	Low       func(string) string
	Completed func(string) string
	Cancelled func(string) string
	Due       func(string) string
	Blocked   func(string) string
	Delayed   func(string) string
}

// Decorate renders the message with every directive class passed
// through its decorator. The result is display-only and must never be
// written back to storage.
func (t Task) Decorate(d Decorator) string {
	msg := t.Message
	msg = decorate(msg, tagsRe, d.Tag)
	msg = decorate(msg, highRe, d.High)
	msg = decorate(msg, mediumRe, d.Medium)
	msg = decorate(msg, lowRe, d.Low)
	msg = decorate(msg, completedRe, d.Completed)
	msg = decorate(msg, cancelledRe, d.Cancelled)
	msg = decorate(msg, dueRe, d.Due)
	msg = decorate(msg, blockedRe, d.Blocked)
	msg = decorate(msg, delayedRe, d.Delayed)
	return msg
}

func decorate(s string, re *regexp.Regexp, fn func(string) string) string {
	if fn == nil {
		return s
	}
	return re.ReplaceAllStringFunc(s, fn)
}

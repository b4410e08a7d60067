// Package date resolves the due-date expressions embedded in task
// messages.
package date

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Stamp is the minute-precision format every directive parameter uses.
const Stamp = "2006-01-02 15:04"

var dayRe = regexp.MustCompile(`(\d+)d`)

// ParseStamp parses an absolute minute-precision timestamp. Stamps
// are local time, like the clock readings they are compared against.
func ParseStamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Stamp, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

// Resolve interprets a due expression. Relative forms resolve against
// the current wall clock; anything else must be an absolute stamp, the
// only branch that can fail.
func Resolve(s string) (time.Time, error) {
	switch s {
	case "today", "now":
		return time.Now(), nil
	case "tomorrow":
		return time.Now().Add(24 * time.Hour), nil
	}
	if m := dayRe.FindStringSubmatch(s); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			return time.Now().Add(time.Duration(days) * 24 * time.Hour), nil
		}
	}
	return ParseStamp(s)
}

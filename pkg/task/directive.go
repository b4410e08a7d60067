package task

import "regexp"

// grammar for the metadata embedded in task messages
var (
	squeezeRe   = regexp.MustCompile(`\s+`)
	lineRe      = regexp.MustCompile(`^(\d+)\s+-\s+\[(.)\]\s+-\s+(.*)$`)
	tagsRe      = regexp.MustCompile(`\+([\w\-_]+)`)
	directiveRe = regexp.MustCompile(`@([\w()\-_\s:]+)`)
	nameRe      = regexp.MustCompile(`\w+`)
	paramsRe    = regexp.MustCompile(`[^()]+\((.*)\)`)

	priorityRe  = regexp.MustCompile(`@(low|medium|high)`)
	highRe      = regexp.MustCompile(`@high`)
	mediumRe    = regexp.MustCompile(`@medium`)
	lowRe       = regexp.MustCompile(`@low`)
	blockedRe   = regexp.MustCompile(`@blocked`)
	delayedRe   = regexp.MustCompile(`@delayed`)
	completedRe = regexp.MustCompile(`@completed\(.*\)`)
	cancelledRe = regexp.MustCompile(`@cancelled\(.*\)`)
	dueRe       = regexp.MustCompile(`@due\(.*\)`)
)

// Tags extracts every +tag token from a message, left to right,
// duplicates preserved.
func Tags(message string) []string {
	ms := tagsRe.FindAllStringSubmatch(message, -1)
	if ms == nil {
		return nil
	}
	tags := make([]string, len(ms))
	for i, m := range ms {
		tags[i] = m[1]
	}
	return tags
}

// directive is one @name or @name(params) occurrence.
type directive struct {
	name      string
	params    string
	hasParams bool
}

// directives scans a message for every @ occurrence. Unknown names are
// reported too; the caller decides which ones carry meaning.
func directives(message string) []directive {
	var out []directive
	for _, m := range directiveRe.FindAllStringSubmatch(message, -1) {
		body := m[1]
		name := nameRe.FindString(body)
		if name == "" {
			continue
		}
		d := directive{name: name}
		if p := paramsRe.FindStringSubmatch(body); p != nil {
			d.params = p[1]
			d.hasParams = true
		}
		out = append(out, d)
	}
	return out
}

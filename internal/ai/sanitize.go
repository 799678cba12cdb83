package ai

import (
	"regexp"
	"strings"
)

var (
	inlineNote = regexp.MustCompile(`(?i)[\(\[]\s*(note|disclaimer)\s*:[^\)\]]*[\)\]]`)
	noteLine   = regexp.MustCompile(`(?i)^\**\s*(note|disclaimer)\s*:`)
	blankRuns  = regexp.MustCompile(`\n{3,}`)
)

const wrapQuotes = "\"'“”"

// SanitizeAIText strips model disclaimers such as "Note: this is a machine
// translation" and normalises blank lines.
func SanitizeAIText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = inlineNote.ReplaceAllString(s, "")

	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if noteLine.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}

	out := strings.Join(kept, "\n")
	out = blankRuns.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

// trimQuotes removes quotes wrapped around a one-line answer.
func trimQuotes(s string) string {
	s = strings.TrimSpace(s)
	if strings.ContainsRune(s, '\n') {
		return s
	}
	return strings.TrimSpace(strings.Trim(s, wrapQuotes))
}

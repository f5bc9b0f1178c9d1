// Package insights turns the model's free-text bulleted or numbered
// answer into discrete findings. Purely structural: it relies on the
// model having formatted its output as a list.
package insights

import (
	"regexp"
	"strings"
)

const (
	maxInsights   = 10
	minLineLength = 20
)

var (
	bulletPrefix = regexp.MustCompile(`^[-*•]\s+`)
	numberPrefix = regexp.MustCompile(`^\d+\.\s+`)
)

// Extract splits raw model output into lines, strips bullet and numeric
// list markers, discards lines of 20 characters or fewer, and returns
// the first 10 qualifying lines in their original order.
func Extract(raw string) []string {
	var out []string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = bulletPrefix.ReplaceAllString(line, "")
		line = numberPrefix.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)

		if len(line) <= minLineLength {
			continue
		}
		out = append(out, line)
		if len(out) == maxInsights {
			break
		}
	}

	return out
}

// Package formatter turns AI answers into the HTML fragments rendered by the
// web client.
package formatter

import (
	"regexp"
)

var (
	markerPattern = regexp.MustCompile(`[*#]`)
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	bulletPattern = regexp.MustCompile(`\* (.*?)(?:\n|$)`)
	newlineRegexp = regexp.MustCompile(`\n`)
)

// Format applies the rewrites in order. Markers are stripped before the bold
// and bullet rules run, so those two rules never match on their own input.
// Keep the order: clients already render the output produced this way.
func Format(raw string) string {
	out := markerPattern.ReplaceAllString(raw, "")
	out = boldPattern.ReplaceAllString(out, "<strong>${1}</strong>")
	out = bulletPattern.ReplaceAllString(out, `<li class="ml-4 list-disc">${1}</li>`)
	out = newlineRegexp.ReplaceAllString(out, "<br>")
	return out
}

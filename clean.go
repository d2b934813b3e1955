package filingest

import (
	"regexp"
	"strings"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	// Everything outside {alphanumerics, underscore, whitespace, period,
	// comma, hyphen, dollar, percent, parentheses} is replaced with a space.
	// Alphanumerics are Unicode (\p{L}\p{N}), not ASCII.
	disallowedRE = regexp.MustCompile(`[^\p{L}\p{N}_\s.,\-$%()]`)
	pageLabelRE  = regexp.MustCompile(`Page \d+ of \d+`)
	pageBareRE   = regexp.MustCompile(`\b\d+ of \d+\b`)
)

// Clean normalizes raw extracted text: collapses whitespace, replaces
// disallowed characters with spaces (preserving token boundaries), strips
// page-number boilerplate ("Page 3 of 10" and standalone "3 of 10"), and
// trims. Pure and idempotent: the output contains no consecutive
// whitespace, no disallowed characters, and no page-number artifacts.
func Clean(text string) string {
	text = whitespaceRE.ReplaceAllString(text, " ")
	text = disallowedRE.ReplaceAllString(text, " ")
	text = strings.Join(strings.Fields(text), " ")

	// Removing an artifact can expose a new one ("5 Page 1 of 2 of 9"
	// becomes "5 of 9"), so strip to a fixpoint.
	for {
		next := pageLabelRE.ReplaceAllString(text, " ")
		next = pageBareRE.ReplaceAllString(next, " ")
		next = strings.Join(strings.Fields(next), " ")
		if next == text {
			break
		}
		text = next
	}

	return strings.TrimSpace(text)
}

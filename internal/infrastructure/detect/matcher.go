// Package detect scans raw process output for known error signatures.
//
// Matching is regex based and case sensitive. The signature list is fixed and
// ordered; Detect reports a match as soon as any signature hits, while
// ExtractMessage applies a tiered strategy to pull a one-line summary out of
// the output. Both functions are pure and never panic.
package detect

import (
	"regexp"
	"strings"

	"github.com/watchit-dev/watchit/internal/ports"
)

// signatures covers the error-reporting conventions of the runtimes WatchIt
// monitors: Python tracebacks, generic <Identifier>Error tokens, Java thread
// exceptions and chained causes, npm failures, and JavaScript runtime errors.
var signatures = []*regexp.Regexp{
	regexp.MustCompile(`Traceback \(most recent call last\)`),
	regexp.MustCompile(`[A-Za-z]+Error:`),
	regexp.MustCompile(`Exception in thread`),
	regexp.MustCompile(`Caused by:`),
	regexp.MustCompile(`npm ERR!`),
	regexp.MustCompile(`SyntaxError:`),
	regexp.MustCompile(`ReferenceError:`),
	regexp.MustCompile(`TypeError:`),
}

// errorLine matches the first "<Identifier>Error: rest" fragment up to the
// end of its line.
var errorLine = regexp.MustCompile(`[A-Za-z]+Error:[^\n]*`)

// keywordMarkers gate the second extraction tier for outputs without a
// traceback header.
var keywordMarkers = []string{"Error:", "TypeError:", "SyntaxError:", "ReferenceError:"}

// Matcher implements ports.PatternMatcher over the fixed signature list.
type Matcher struct{}

// NewMatcher builds a pattern matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Detect reports whether raw contains any known error signature.
func (m *Matcher) Detect(raw string) bool {
	for _, sig := range signatures {
		if sig.MatchString(raw) {
			return true
		}
	}
	return false
}

// ExtractMessage returns a best-effort one-line error summary.
//
// Tiers: (a) outputs with a traceback header yield the first
// "<Identifier>Error: ..." line; (b) outputs containing a known error keyword
// yield the same extraction; (c) anything else yields the first non-empty
// line, trimmed. Worst case is an empty string.
func (m *Matcher) ExtractMessage(raw string) string {
	if strings.Contains(raw, "Traceback (most recent call last)") {
		if match := errorLine.FindString(raw); match != "" {
			return strings.TrimSpace(match)
		}
	} else if containsAny(raw, keywordMarkers) {
		if match := errorLine.FindString(raw); match != "" {
			return strings.TrimSpace(match)
		}
	}

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func containsAny(raw string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(raw, marker) {
			return true
		}
	}
	return false
}

var _ ports.PatternMatcher = (*Matcher)(nil)

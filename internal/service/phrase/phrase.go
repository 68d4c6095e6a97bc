// Package phrase suggests canned safety phrases for a typed prefix.
package phrase

import "strings"

const (
	defaultSuggestions = 6
	maxSuggestions     = 8
)

// library order is significant: it is the ranking tie-breaker.
var library = []string{
	"I feel unsafe, can you call me right now?",
	"Can you stay on call with me for a few minutes?",
	"I'm walking home, please check on me in 10 minutes.",
	"Can you meet me at a nearby public place?",
	"Someone is following me, please stay on the line.",
	"I'm sharing my live location with you.",
	"Please call me, I can't talk freely right now.",
	"I'm safe now, thanks for checking in.",
	"If I don't reply in 15 minutes, please call for help.",
}

// Library returns a copy of the phrase library.
func Library() []string {
	return append([]string(nil), library...)
}

// Suggest ranks phrases for prefix: case-insensitive prefix matches first,
// then substring-only matches, each in library order, at most eight.
// A blank prefix returns the first six phrases.
func Suggest(prefix string) []string {
	p := strings.ToLower(strings.TrimSpace(prefix))
	if p == "" {
		return append([]string(nil), library[:defaultSuggestions]...)
	}

	var starts, contains []string
	for _, phrase := range library {
		lower := strings.ToLower(phrase)
		switch {
		case strings.HasPrefix(lower, p):
			starts = append(starts, phrase)
		case strings.Contains(lower, p):
			contains = append(contains, phrase)
		}
	}

	out := append(starts, contains...)
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	if out == nil {
		out = []string{}
	}
	return out
}

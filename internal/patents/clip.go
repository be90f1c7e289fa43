package patents

import "strings"

const clipMarker = "…"

// Clip collapses internal whitespace runs to single spaces, trims the ends,
// and bounds the result to n runes without splitting a word. Text cut short
// gets a single ellipsis marker appended. Empty input stays empty.
func Clip(text string, n int) string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	cut := string(runes[:n])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + clipMarker
}

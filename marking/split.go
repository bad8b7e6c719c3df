package marking

import "strings"

// splitDiscardTrailing splits s on sep and discards empty segments produced by
// trailing or repeated delimiters at the end of the string, while preserving
// leading and interior empty segments.
//
// The policy matters: "SI---" splits like "SI", but "-TK" keeps its leading
// empty segment and "BP//GB" keeps its interior one. An all-delimiter string
// collapses to nothing, yet the empty string splits to a single empty segment.
// Misclassifying any of these silently changes the meaning of a marking, so
// every branch here is pinned by tests.
func splitDiscardTrailing(s, sep string) []string {
	if s == "" {
		return []string{""}
	}
	parts := strings.Split(s, sep)
	n := len(parts)
	for n > 0 && parts[n-1] == "" {
		n--
	}
	return parts[:n]
}

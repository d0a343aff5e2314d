package query

import "strings"

// splitSegments splits the raw argument of a compound operation into its
// top-level sub-expressions. Splitting counts parenthesis depth explicitly
// rather than pattern-matching operator spans, so nested compounds of any
// depth segment correctly and children keep their left-to-right source order.
// Commas nested inside parentheses, brackets, or quoted sections never split.
func splitSegments(raw string) []string {
	var segments []string

	depth := 0
	inQuote := false
	start := 0

	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '"':
			inQuote = !inQuote
		case '(', '[':
			if !inQuote {
				depth++
			}
		case ')', ']':
			if !inQuote {
				depth--
			}
		case ',':
			if !inQuote && depth == 0 {
				if segment := strings.TrimSpace(raw[start:i]); segment != "" {
					segments = append(segments, segment)
				}
				start = i + 1
			}
		}
	}

	if segment := strings.TrimSpace(raw[start:]); segment != "" {
		segments = append(segments, segment)
	}

	return segments
}

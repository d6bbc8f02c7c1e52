// core/textscan/dedupe.go
package textscan

import "strings"

// Dedupe returns text with every repeated character removed, keeping the
// first occurrence of each and preserving input order.
func Dedupe(text string) string {
	seen := make(map[rune]struct{}, len(text))
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		sb.WriteRune(r)
	}
	return sb.String()
}

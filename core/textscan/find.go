// core/textscan/find.go
package textscan

import (
	"strings"
	"unicode/utf8"
)

// FindPattern returns every character offset at which pattern occurs in text,
// in strictly increasing order. The scan is case-sensitive and permits
// overlaps: after a match at i the search resumes at i+1, so
// FindPattern("aaaa", "aa") yields [0 1 2].
//
// An empty pattern, empty text, or pattern longer than text yields no
// positions. This is a defined result, not an error; an empty pattern never
// matches so there is no infinite-match case to handle.
func FindPattern(text, pattern string) []int {
	if pattern == "" || text == "" {
		return nil
	}

	// ASCII fast path: bytes.Index-style jump scanning. Byte offsets equal
	// character offsets when every byte is ASCII, so positions stay exact.
	if isASCII(text) && isASCII(pattern) {
		if len(pattern) > len(text) {
			return nil
		}
		var out []int
		for i := 0; ; {
			j := strings.Index(text[i:], pattern)
			if j < 0 {
				break
			}
			pos := i + j
			out = append(out, pos)
			i = pos + 1
		}
		return out
	}

	t := []rune(text)
	p := []rune(pattern)
	if len(p) > len(t) {
		return nil
	}
	end := len(t) - len(p)
	var out []int

window:
	for pos := 0; pos <= end; pos++ {
		for j := range p {
			if t[pos+j] != p[j] {
				continue window
			}
		}
		out = append(out, pos)
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

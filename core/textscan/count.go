// core/textscan/count.go
package textscan

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrNotSingleChar is returned by CountChar when its char argument does not
// decode to exactly one character. Callers test for it with errors.Is.
var ErrNotSingleChar = errors.New("char must be exactly one character")

// CountChar counts case-sensitive occurrences of char within text.
// char must be exactly one character; an empty or multi-character argument is
// rejected so a substring is never silently counted.
func CountChar(text, char string) (int, error) {
	c, size := utf8.DecodeRuneInString(char)
	if char == "" || size != len(char) {
		return 0, fmt.Errorf("%w: got %q", ErrNotSingleChar, char)
	}
	n := 0
	for _, r := range text {
		if r == c {
			n++
		}
	}
	return n, nil
}

// CountAll returns the per-character frequency of text.
func CountAll(text string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range text {
		counts[r]++
	}
	return counts
}
